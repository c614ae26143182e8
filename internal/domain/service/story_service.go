package service

import (
	"context"
)

// ExpandStoryRequest is the place summary sent to the story expander.
type ExpandStoryRequest struct {
	Name        string   `json:"name"`
	City        string   `json:"city,omitempty"`
	Years       string   `json:"years,omitempty"`
	Reason      string   `json:"reason,omitempty"`
	Communities []string `json:"communities,omitempty"`
	Story       string   `json:"story"`
}

// StoryExpander turns a short place story into a longer narrative.
type StoryExpander interface {
	// ExpandStory returns the expanded text. An empty result means no expansion.
	ExpandStory(ctx context.Context, req ExpandStoryRequest) (string, error)
}

// StorySummarizer condenses a long story into a short one.
type StorySummarizer interface {
	SummarizeStory(ctx context.Context, story string) (string, error)
}
