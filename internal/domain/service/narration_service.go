package service

import (
	"context"
	"fmt"

	"whatwashere/internal/domain/entity"
)

// SynthesizedSpeech is audio produced by a text-to-speech provider.
type SynthesizedSpeech struct {
	ContentType string
	Audio       []byte
}

// SpeechSynthesizer converts text to audio on the server side.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) (*SynthesizedSpeech, error)
}

// Narrator produces a playable clip for a place on the client side.
type Narrator interface {
	// Narrate returns a clip for the exact text. The caller owns the clip and must Release it.
	Narrate(ctx context.Context, placeID, text string) (*entity.AudioClip, error)
}

// UpstreamError reports a non-success response from an external provider.
type UpstreamError struct {
	Provider string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s responded with status %d", e.Provider, e.Status)
}
