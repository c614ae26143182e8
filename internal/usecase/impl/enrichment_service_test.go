package impl

import (
	"context"
	"net/http"
	"strings"
	"testing"

	domainerrors "whatwashere/internal/domain/errors"
	"whatwashere/internal/domain/service"
	"whatwashere/internal/errors"
	mockSvc "whatwashere/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// enrichmentServiceFixtures holds all test dependencies for enrichment service tests.
type enrichmentServiceFixtures struct {
	expander    *mockSvc.MockStoryExpander
	summarizer  *mockSvc.MockStorySummarizer
	synthesizer *mockSvc.MockSpeechSynthesizer
}

func createTestEnrichmentService(t *testing.T) (enrichmentServiceFixtures, *enrichmentService) {
	fx := enrichmentServiceFixtures{
		expander:    mockSvc.NewMockStoryExpander(t),
		summarizer:  mockSvc.NewMockStorySummarizer(t),
		synthesizer: mockSvc.NewMockSpeechSynthesizer(t),
	}
	svc := NewEnrichmentService(fx.expander, fx.summarizer, fx.synthesizer, newTestLogger()).(*enrichmentService)

	return fx, svc
}

func TestEnrichmentService_ExpandStory(t *testing.T) {
	ctx := context.Background()
	req := service.ExpandStoryRequest{Name: "The Stud", Story: "  A bar.  "}

	t.Run("expanded text", func(t *testing.T) {
		fx, svc := createTestEnrichmentService(t)
		fx.expander.EXPECT().
			ExpandStory(ctx, mock.MatchedBy(func(r service.ExpandStoryRequest) bool { return r.Story == "A bar." })).
			Return(" Extended narrative... ", nil)

		assert.Equal(t, "Extended narrative...", svc.ExpandStory(ctx, req))
	})

	t.Run("gateway failure keeps story", func(t *testing.T) {
		fx, svc := createTestEnrichmentService(t)
		fx.expander.EXPECT().ExpandStory(ctx, mock.Anything).Return("", errors.New("quota"))

		assert.Equal(t, "A bar.", svc.ExpandStory(ctx, req))
	})

	t.Run("empty result keeps story", func(t *testing.T) {
		fx, svc := createTestEnrichmentService(t)
		fx.expander.EXPECT().ExpandStory(ctx, mock.Anything).Return("   ", nil)

		assert.Equal(t, "A bar.", svc.ExpandStory(ctx, req))
	})

	t.Run("empty story skips gateway", func(t *testing.T) {
		_, svc := createTestEnrichmentService(t)

		assert.Equal(t, "", svc.ExpandStory(ctx, service.ExpandStoryRequest{Name: "x", Story: " "}))
	})

	t.Run("unconfigured gateway", func(t *testing.T) {
		svc := NewEnrichmentService(nil, nil, nil, newTestLogger())

		assert.Equal(t, "A bar.", svc.ExpandStory(ctx, req))
	})
}

func TestEnrichmentService_SummarizeStory(t *testing.T) {
	ctx := context.Background()
	long := "First sentence here. Second one follows! Third is dropped? " + strings.Repeat("Filler words. ", 20)

	t.Run("short story unchanged", func(t *testing.T) {
		_, svc := createTestEnrichmentService(t)

		assert.Equal(t, "Short story.", svc.SummarizeStory(ctx, " Short story. "))
	})

	t.Run("summary from gateway", func(t *testing.T) {
		fx, svc := createTestEnrichmentService(t)
		fx.summarizer.EXPECT().SummarizeStory(ctx, strings.TrimSpace(long)).Return("A summary.", nil)

		assert.Equal(t, "A summary.", svc.SummarizeStory(ctx, long))
	})

	t.Run("fallback to two sentences", func(t *testing.T) {
		fx, svc := createTestEnrichmentService(t)
		fx.summarizer.EXPECT().SummarizeStory(ctx, mock.Anything).Return("", errors.New("unavailable"))

		assert.Equal(t, "First sentence here. Second one follows!", svc.SummarizeStory(ctx, long))
	})
}

func TestEnrichmentService_Narrate(t *testing.T) {
	ctx := context.Background()

	t.Run("audio", func(t *testing.T) {
		fx, svc := createTestEnrichmentService(t)
		speech := &service.SynthesizedSpeech{ContentType: "audio/mpeg", Audio: []byte{0xff, 0xfb}}
		fx.synthesizer.EXPECT().Synthesize(ctx, "Hello there").Return(speech, nil)

		got, err := svc.Narrate(ctx, " Hello there ")
		require.NoError(t, err)
		assert.Equal(t, speech, got)
	})

	t.Run("empty text", func(t *testing.T) {
		_, svc := createTestEnrichmentService(t)

		_, err := svc.Narrate(ctx, "  ")
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("not configured", func(t *testing.T) {
		svc := NewEnrichmentService(nil, nil, nil, newTestLogger())

		_, err := svc.Narrate(ctx, "Hello")
		assert.True(t, errors.Is(err, domainerrors.ErrNarrationUnavailable))
	})

	t.Run("upstream status relayed", func(t *testing.T) {
		fx, svc := createTestEnrichmentService(t)
		fx.synthesizer.EXPECT().
			Synthesize(ctx, "Hello").
			Return(nil, errors.WithStack(&service.UpstreamError{Provider: "elevenlabs", Status: http.StatusUnauthorized, Body: "invalid key"}))

		_, err := svc.Narrate(ctx, "Hello")

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
		assert.Equal(t, "NARRATION_FAILED", appErr.ErrorCode())
		assert.Equal(t, "invalid key", appErr.Details())
	})

	t.Run("transport failure is bad gateway", func(t *testing.T) {
		fx, svc := createTestEnrichmentService(t)
		fx.synthesizer.EXPECT().Synthesize(ctx, "Hello").Return(nil, errors.New("dial tcp: refused"))

		_, err := svc.Narrate(ctx, "Hello")

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
	})
}
