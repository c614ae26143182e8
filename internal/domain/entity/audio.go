package entity

import (
	"os"
	"sync"

	"whatwashere/internal/errors"
)

// AudioClip is a playable narration tied to the place and exact text it was
// generated from. The audio lives in a transient file until Release.
type AudioClip struct {
	PlaceID     string
	Text        string
	ContentType string
	Path        string
	Size        int64

	releaseOnce sync.Once
	releaseErr  error
}

// Release removes the transient file. Safe to call more than once.
func (c *AudioClip) Release() error {
	if c == nil {
		return nil
	}
	c.releaseOnce.Do(func() {
		if c.Path == "" {
			return
		}
		if err := os.Remove(c.Path); err != nil && !os.IsNotExist(err) {
			c.releaseErr = errors.Wrap(err, "remove narration audio")
		}
	})

	return c.releaseErr
}
