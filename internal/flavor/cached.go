package flavor

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
)

// Cache persists texts returned by a remote source.
type Cache interface {
	LookupMessage(ctx context.Context, level int) (string, error)
	SaveMessage(ctx context.Context, level int, text, source string) error
}

// Cached consults the source first and remembers its answers. When the
// source fails the last remembered text for the level is used.
type Cached struct {
	Source Source
	Cache  Cache
	Name   string // recorded with saved texts
	Logger *log.Logger
}

// Message implements Source.
func (c *Cached) Message(ctx context.Context, level int) (string, error) {
	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}

	text, err := c.Source.Message(ctx, level)
	if err == nil {
		if saveErr := c.Cache.SaveMessage(ctx, level, text, c.Name); saveErr != nil {
			logger.Debug("flavor cache save failed", "level", level, "err", saveErr)
		}
		return text, nil
	}

	cached, cacheErr := c.Cache.LookupMessage(ctx, level)
	if cacheErr != nil {
		logger.Debug("flavor lookup failed", "level", level, "err", err)
		return "", errors.Join(err, cacheErr)
	}
	logger.Debug("flavor served from cache", "level", level, "err", err)
	return cached, nil
}
