package core

import (
	"fmt"
	"image/color"
)

// Color is a 24-bit RGB colour packed as 0xRRGGBB.
// ColorDefault marks a cell that keeps the terminal's own foreground.
type Color uint32

// ColorDefault is outside the 24-bit range so it never collides with an RGB value.
const ColorDefault Color = 1 << 24

// Named colours used by the renderers.
const (
	ColorWhite   Color = 0xFFFFFF
	ColorMagenta Color = 0xFF00FF
	ColorYellow  Color = 0xFACC15
	ColorRed     Color = 0xEF4444
	ColorGray    Color = 0x6B7280
	ColorBlue    Color = 0x60A5FA
)

// RGB packs three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Gray returns a colour with all three channels set to v.
func Gray(v uint8) Color {
	return RGB(v, v, v)
}

// IsDefault reports whether c is the terminal default colour.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// Channels returns the red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the colour as "#RRGGBB".
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	return c.Hex()
}

// RGBA converts the colour for image-based renderers.
// The default colour maps to opaque white.
func (c Color) RGBA() color.RGBA {
	if c.IsDefault() {
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
	r, g, b := c.Channels()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
