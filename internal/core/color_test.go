package core

import "testing"

func TestColorHex(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{ColorMagenta, "#FF00FF"},
		{RGB(0x12, 0x34, 0x56), "#123456"},
		{Gray(50), "#323232"},
		{ColorDefault, ""},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.expected {
			t.Errorf("Hex(%d) = %q, expected %q", uint32(tt.c), got, tt.expected)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	got := RGB(1, 2, 3).RGBA()
	if got.R != 1 || got.G != 2 || got.B != 3 || got.A != 0xFF {
		t.Errorf("RGBA() = %+v", got)
	}
	if ColorDefault.RGBA().R != 0xFF {
		t.Error("default colour should render as white")
	}
}
