package window

import (
	"image/color"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vovakirdan/snake-ultra/internal/core"
	"github.com/vovakirdan/snake-ultra/internal/engine"
	"github.com/vovakirdan/snake-ultra/internal/session"
)

// Layout in logical pixels.
const (
	cellPx   = 20
	marginPx = 12
	hudPx    = 36
	footerPx = 32

	// basicfont.Face7x13 metrics.
	glyphW = 7
	glyphH = 13
)

var (
	colorBackground = color.RGBA{R: 0x0A, G: 0x0A, B: 0x0A, A: 0xFF}
	colorPucciTint  = color.RGBA{R: 0x1F, G: 0x06, B: 0x0C, A: 0xFF}
	colorBoard      = color.RGBA{R: 0x14, G: 0x14, B: 0x14, A: 0xFF}
	colorFrame      = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}
	colorShade      = color.RGBA{A: 0xD0}
	colorMuted      = core.ColorGray.RGBA()
	colorPucci      = core.ColorRed.RGBA()
	colorHighlight  = core.ColorYellow.RGBA()
	colorWhite      = core.ColorWhite.RGBA()
)

// logicalSize returns the screen size for a grid.
func logicalSize(grid int) (w, h int) {
	return grid*cellPx + 2*marginPx, hudPx + grid*cellPx + footerPx
}

// cellRect returns the pixel rectangle of a grid cell, inset by one pixel
// so neighbouring segments stay distinguishable.
func cellRect(c engine.Cell) (x, y, w, h float32) {
	return float32(marginPx + c.X*cellPx + 1), float32(hudPx + c.Y*cellPx + 1), cellPx - 2, cellPx - 2
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	sw, _ := logicalSize(snap.GridSize)
	boardPx := float32(snap.GridSize * cellPx)

	if snap.Pucci {
		screen.Fill(colorPucciTint)
	} else {
		screen.Fill(colorBackground)
	}

	// HUD
	g.drawText(screen, "SNAKE ULTRA", marginPx, 12, colorWhite)
	score := "SCORE " + snap.ScoreText()
	g.drawText(screen, score, float64(sw-marginPx-len(score)*glyphW), 12, colorWhite)

	frame := colorFrame
	switch {
	case snap.Status.Exploding():
		frame = colorHighlight
	case snap.Pucci:
		frame = colorPucci
	}
	vector.FillRect(screen, marginPx, hudPx, boardPx, boardPx, colorBoard, false)
	vector.StrokeRect(screen, marginPx-1, hudPx-1, boardPx+2, boardPx+2, 2, frame, false)

	fx, fy, fw, _ := cellRect(snap.Food)
	vector.FillCircle(screen, fx+fw/2, fy+fw/2, fw/2-2, colorWhite, true)

	for i := len(snap.Snake) - 1; i >= 0; i-- {
		c := core.ColorWhite
		if i < len(snap.Colors) {
			c = snap.Colors[i]
		}
		x, y, w, h := cellRect(snap.Snake[i])
		vector.FillRect(screen, x, y, w, h, c.RGBA(), false)
	}

	if o, ok := snap.Overlay(); ok {
		g.drawOverlay(screen, snap, o)
	}

	footerY := float64(hudPx + snap.GridSize*cellPx + 10)
	switch {
	case g.feedback != "":
		g.drawCentered(screen, g.feedback, float64(sw)/2, footerY, colorWhite)
	case snap.Pucci:
		g.drawCentered(screen, "!! "+session.InvertedText+" !!", float64(sw)/2, footerY, colorPucci)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image, snap session.Snapshot, o session.Overlay) {
	boardPx := float32(snap.GridSize * cellPx)
	vector.FillRect(screen, marginPx, hudPx, boardPx, boardPx, colorShade, false)

	cx := float64(marginPx) + float64(boardPx)/2
	cols := int(boardPx)/glyphW - 4
	title := core.Wrap(foldASCII(o.Title), cols)
	sub := core.Wrap(foldASCII(o.Subtitle), cols)

	lines := len(title) + len(sub) + 1
	if o.Button != "" {
		lines += 3
	}
	y := float64(hudPx) + float64(boardPx)/2 - float64(lines*(glyphH+4))/2

	titleColor := colorWhite
	if o.Exploding {
		titleColor = colorHighlight
	}
	for _, line := range title {
		g.drawCentered(screen, line, cx, y, titleColor)
		y += glyphH + 4
	}
	y += glyphH + 4
	for _, line := range sub {
		g.drawCentered(screen, line, cx, y, colorMuted)
		y += glyphH + 4
	}

	if o.Exploding {
		barW := boardPx * 0.6
		barX := float32(cx) - barW/2
		vector.StrokeRect(screen, barX, float32(y), barW, 8, 1, colorFrame, false)
		vector.FillRect(screen, barX, float32(y), barW*float32(snap.PauseProgress()), 8, colorHighlight, false)
		return
	}

	if o.Button != "" {
		y += glyphH + 4
		label := foldASCII(o.Button)
		bw := float32(len(label)*glyphW + 24)
		vector.StrokeRect(screen, float32(cx)-bw/2, float32(y)-6, bw, glyphH+12, 1, colorWhite, false)
		g.drawCentered(screen, label, cx, y, colorWhite)
	}
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, foldASCII(s), g.face, op)
}

func (g *Game) drawCentered(dst *ebiten.Image, s string, cx, y float64, clr color.Color) {
	s = foldASCII(s)
	w, _ := text.Measure(s, g.face, 0)
	g.drawText(dst, s, cx-w/2, y, clr)
}

// foldASCII strips accents and drops anything the bitmap font cannot draw.
func foldASCII(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(out), " ")
}

