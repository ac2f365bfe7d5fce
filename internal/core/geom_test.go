package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 40, 20)
	inner := outer.Centered(10, 4)

	if inner != NewRect(15, 8, 10, 4) {
		t.Errorf("Centered = %+v", inner)
	}
}
