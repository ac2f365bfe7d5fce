package tui

import (
	"fmt"

	"github.com/vovakirdan/snake-ultra/internal/core"
	"github.com/vovakirdan/snake-ultra/internal/session"
)

// Each grid cell is two characters wide so the board looks square.
const cellWidth = 2

var (
	colorFrame     = core.RGB(0x40, 0x40, 0x40)
	colorDot       = core.RGB(0x26, 0x26, 0x26)
	colorLabel     = core.ColorGray
	colorPucci     = core.ColorRed
	colorHighlight = core.ColorYellow
)

// BoardSize returns the screen size needed for a grid: a HUD row, the
// framed board and a status row.
func BoardSize(grid int) (w, h int) {
	return grid*cellWidth + 2, grid + 4
}

// DrawBoard renders snap into dst. status is shown under the board; when
// empty the inverted-controls warning is shown during PUCCI mode.
func DrawBoard(dst *core.Screen, snap session.Snapshot, status string) {
	dst.Clear()
	w, _ := BoardSize(snap.GridSize)

	// HUD
	dst.DrawTextColored(0, 0, "SCORE", colorLabel)
	dst.DrawTextColored(6, 0, snap.ScoreText(), core.ColorWhite)
	if snap.Pucci {
		label := "PUCCI"
		dst.DrawTextColored(w-core.RuneLen(label), 0, label, colorPucci)
	}

	frame := core.NewRect(0, 1, w, snap.GridSize+2)
	frameColor := colorFrame
	switch {
	case snap.Status.Exploding():
		frameColor = colorHighlight
	case snap.Pucci:
		frameColor = colorPucci
	}
	dst.DrawBox(frame, frameColor)

	// Grid dots, then food, then the snake tail first so the head wins.
	for y := 0; y < snap.GridSize; y++ {
		for x := 0; x < snap.GridSize; x++ {
			sx, sy := cellOrigin(x, y)
			dst.SetColored(sx, sy, '·', colorDot)
		}
	}
	fx, fy := cellOrigin(snap.Food.X, snap.Food.Y)
	dst.DrawTextColored(fx, fy, "()", core.ColorWhite)
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		c := snap.Snake[i]
		color := core.ColorWhite
		if i < len(snap.Colors) {
			color = snap.Colors[i]
		}
		sx, sy := cellOrigin(c.X, c.Y)
		glyph := "▓▓"
		if i == 0 {
			glyph = "██"
		}
		dst.DrawTextColored(sx, sy, glyph, color)
	}

	if o, ok := snap.Overlay(); ok {
		drawOverlay(dst, frame, o)
	}

	switch {
	case status != "":
		dst.DrawTextCenteredColored(frame.Bottom(), status, core.ColorWhite)
	case snap.Pucci:
		dst.DrawTextCenteredColored(frame.Bottom(), session.InvertedText, colorPucci)
	}
}

func cellOrigin(x, y int) (int, int) {
	return 1 + x*cellWidth, 2 + y
}

// drawOverlay draws a shaded panel centered on the board frame.
func drawOverlay(dst *core.Screen, frame core.Rect, o session.Overlay) {
	inner := frame.W - 6
	lines := core.Wrap(o.Subtitle, inner-2)
	h := 4 + len(lines)
	if o.Button != "" {
		h += 2
	}
	panel := frame.Centered(inner+2, h)

	dst.DrawRect(panel, ' ')
	dst.DrawBox(panel, colorFrame)

	titleColor := core.ColorWhite
	if o.Exploding {
		titleColor = colorHighlight
	}
	y := panel.Y + 1
	for _, line := range core.Wrap(o.Title, inner-2) {
		drawCenteredIn(dst, panel, y, line, titleColor)
		y++
	}
	y++
	for _, line := range lines {
		drawCenteredIn(dst, panel, y, line, core.ColorGray)
		y++
	}
	if o.Button != "" {
		y++
		drawCenteredIn(dst, panel, y, fmt.Sprintf("[ %s ]", o.Button), colorHighlight)
	}
}

func drawCenteredIn(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	x := r.X + (r.W-core.RuneLen(text))/2
	dst.DrawTextColored(x, y, text, c)
}
