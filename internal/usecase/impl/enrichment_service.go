package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	domainerrors "whatwashere/internal/domain/errors"
	"whatwashere/internal/domain/service"
	"whatwashere/internal/errors"
	"whatwashere/internal/usecase"
	"whatwashere/internal/util"
)

// Stories shorter than this are returned as their own summary.
const minSummaryLength = 200

type enrichmentService struct {
	expander    service.StoryExpander
	summarizer  service.StorySummarizer
	synthesizer service.SpeechSynthesizer
	logger      *slog.Logger
}

// NewEnrichmentService creates the server-side enrichment service. Any
// provider may be nil when it is not configured.
func NewEnrichmentService(
	expander service.StoryExpander,
	summarizer service.StorySummarizer,
	synthesizer service.SpeechSynthesizer,
	logger *slog.Logger,
) usecase.EnrichmentUsecase {
	return &enrichmentService{
		expander:    expander,
		summarizer:  summarizer,
		synthesizer: synthesizer,
		logger:      logger,
	}
}

func (s *enrichmentService) ExpandStory(ctx context.Context, req service.ExpandStoryRequest) string {
	story := strings.TrimSpace(req.Story)
	if story == "" {
		return ""
	}
	if s.expander == nil {
		s.logger.DebugContext(ctx, "No story expander configured, returning original story")

		return story
	}

	req.Story = story
	text, err := s.expander.ExpandStory(ctx, req)
	if err != nil {
		s.logger.WarnContext(ctx, "Story expansion failed, returning original story",
			slog.String("place", req.Name),
			slog.Any("error", err),
		)

		return story
	}

	if text = strings.TrimSpace(text); text == "" {
		return story
	}

	return text
}

func (s *enrichmentService) SummarizeStory(ctx context.Context, story string) string {
	story = strings.TrimSpace(story)
	if utf8.RuneCountInString(story) < minSummaryLength {
		return story
	}

	if s.summarizer != nil {
		text, err := s.summarizer.SummarizeStory(ctx, story)
		if err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		}
		if err != nil {
			s.logger.WarnContext(ctx, "Story summary failed, using excerpt", slog.Any("error", err))
		}
	}

	return util.FirstSentences(story, 2)
}

func (s *enrichmentService) Narrate(ctx context.Context, text string) (*service.SynthesizedSpeech, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("text is required")
	}
	if s.synthesizer == nil {
		return nil, domainerrors.ErrNarrationUnavailable
	}

	speech, err := s.synthesizer.Synthesize(ctx, text)
	if err != nil {
		s.logger.WarnContext(ctx, "Narration failed", slog.Any("error", err))

		var upstream *service.UpstreamError
		if errors.As(err, &upstream) {
			return nil, domainerrors.NewNarrationFailedError(upstream.Status, upstream.Body)
		}

		return nil, domainerrors.NewNarrationFailedError(http.StatusBadGateway, err.Error())
	}
	if speech == nil || len(speech.Audio) == 0 {
		return nil, domainerrors.NewNarrationFailedError(http.StatusBadGateway, "empty audio")
	}

	return speech, nil
}
