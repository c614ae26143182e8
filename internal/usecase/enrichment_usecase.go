package usecase

import (
	"context"

	"whatwashere/internal/domain/service"
)

// EnrichmentUsecase wraps the external story and speech providers.
type EnrichmentUsecase interface {
	// ExpandStory returns the expanded story, or the trimmed original on any failure.
	ExpandStory(ctx context.Context, req service.ExpandStoryRequest) string

	// SummarizeStory returns a summary, or a two-sentence excerpt on any failure.
	SummarizeStory(ctx context.Context, story string) string

	// Narrate synthesizes speech for text.
	Narrate(ctx context.Context, text string) (*service.SynthesizedSpeech, error)
}
