package core

import (
	"reflect"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"", 10, nil},
		{"one two three", 8, []string{"one two", "three"}},
		{"unbreakableword", 4, []string{"unbreakableword"}},
		{"Flèches à droite", 9, []string{"Flèches à", "droite"}},
		{"no limit here", 0, []string{"no limit here"}},
	}
	for _, tt := range tests {
		if got := Wrap(tt.text, tt.width); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}

	for _, line := range Wrap("Atteins le score 10 pour KICHTA et 20 pour PUCCI.", 20) {
		if RuneLen(line) > 20 {
			t.Errorf("line %q longer than 20 runes", line)
		}
	}
}
