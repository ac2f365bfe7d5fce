package engine

import (
	"math/rand"

	"github.com/vovakirdan/snake-ultra/internal/core"
)

// GlitchColor is used for every segment grown after score 20.
const GlitchColor = core.ColorMagenta

// InitialColor paints the starting snake.
const InitialColor = core.ColorWhite

// Grayscale returns the monochrome shade for index i: max(50, 255 - i*10).
func Grayscale(i int) core.Color {
	v := 255 - i*10
	if v < 50 {
		v = 50
	}
	if v > 255 {
		v = 255
	}
	return core.Gray(uint8(v))
}

// GrayscaleTrail returns n shades indexed by segment position.
func GrayscaleTrail(n int) []core.Color {
	out := make([]core.Color, n)
	for i := range out {
		out[i] = Grayscale(i)
	}
	return out
}

// trailColor picks the colour of a freshly grown segment from the new score.
func trailColor(score int, rng *rand.Rand) core.Color {
	switch {
	case score > 20:
		return GlitchColor
	case score > 10:
		return Grayscale(score)
	default:
		return core.Color(rng.Intn(0x1000000))
	}
}
