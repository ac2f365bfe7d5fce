// Package flavor provides the short celebratory texts shown while the game
// pauses on a milestone. Lookups are best effort: callers always have a
// default to show and only swap it when a source answers in time.
package flavor

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoText is returned when a source answered without usable text.
var ErrNoText = errors.New("flavor: empty text")

const (
	KichtaText = "niveau Kichta atteint"
	PucciText  = "vous avez débloquer le niveau PUCCI"
)

// Source looks up the text for a milestone level.
type Source interface {
	Message(ctx context.Context, level int) (string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, level int) (string, error)

func (f SourceFunc) Message(ctx context.Context, level int) (string, error) {
	return f(ctx, level)
}

// Fallback is the generic text used when nothing better is available.
func Fallback(level int) string {
	return fmt.Sprintf("NIVEAU %d !", level)
}

// Default returns the text displayed as soon as a milestone is reached.
func Default(level int) string {
	if text, ok := fixedText(level); ok {
		return text
	}
	return Fallback(level)
}

func fixedText(level int) (string, bool) {
	switch level {
	case 10:
		return KichtaText, true
	case 20:
		return PucciText, true
	}
	return "", false
}

// Fixed answers levels 10 and 20 with their fixed texts and only consults
// next for other levels. A nil next yields the generic fallback.
func Fixed(next Source) Source {
	return SourceFunc(func(ctx context.Context, level int) (string, error) {
		if text, ok := fixedText(level); ok {
			return text, nil
		}
		if next == nil {
			return Fallback(level), nil
		}
		return next.Message(ctx, level)
	})
}

// Lookup queries src and falls back to Default on any failure.
func Lookup(ctx context.Context, src Source, level int) string {
	if src == nil {
		return Default(level)
	}
	text, err := src.Message(ctx, level)
	if err != nil {
		return Default(level)
	}
	if text = strings.TrimSpace(text); text == "" {
		return Default(level)
	}
	return text
}

// Prompt is the request sent to text generation backends.
func Prompt(level int) string {
	return fmt.Sprintf("Generate a very short hype message for level %d in a snake game.", level)
}
