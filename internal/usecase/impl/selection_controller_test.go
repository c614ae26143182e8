package impl

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"whatwashere/internal/domain/entity"
	"whatwashere/internal/domain/service"
	"whatwashere/internal/errors"
	mockSvc "whatwashere/internal/mocks/service"
	"whatwashere/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// selectionFixtures holds all test dependencies for selection controller tests.
type selectionFixtures struct {
	controller *SelectionController
	expander   *mockSvc.MockStoryExpander
	narrator   *mockSvc.MockNarrator
}

func createTestSelectionController(t *testing.T, opts ...SelectionOption) selectionFixtures {
	expander := mockSvc.NewMockStoryExpander(t)
	narrator := mockSvc.NewMockNarrator(t)
	controller := NewSelectionController(expander, narrator, time.Second, newTestLogger(), opts...)
	t.Cleanup(controller.Close)

	return selectionFixtures{
		controller: controller,
		expander:   expander,
		narrator:   narrator,
	}
}

func theStud() *entity.Place {
	return &entity.Place{
		ID:     "the-stud",
		Name:   "The Stud",
		City:   "San Francisco, CA",
		Status: entity.PlaceStatusActive,
		Years:  "1966–present",
		Story:  "One of the oldest queer bars in San Francisco.",
		Source: entity.PlaceSourceSeed,
	}
}

func laEsquina() *entity.Place {
	return &entity.Place{
		ID:     "la-esquina",
		Name:   "La Esquina",
		Status: entity.PlaceStatusErased,
		Story:  "A corner grocery that anchored the block.",
		Source: entity.PlaceSourceSeed,
	}
}

// newClip writes a transient audio file the way the narrator does.
func newClip(t *testing.T, placeID, text string) *entity.AudioClip {
	path := filepath.Join(t.TempDir(), placeID+".mp3")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfb}, 0o600))

	return &entity.AudioClip{PlaceID: placeID, Text: text, ContentType: "audio/mpeg", Path: path, Size: 2}
}

func TestSelectionController_SelectExpandsStory(t *testing.T) {
	fx := createTestSelectionController(t)
	ctx := context.Background()

	release := make(chan struct{})
	fx.expander.EXPECT().
		ExpandStory(mock.Anything, mock.MatchedBy(func(r service.ExpandStoryRequest) bool {
			return r.Name == "The Stud" && r.Years == "1966–present"
		})).
		RunAndReturn(func(context.Context, service.ExpandStoryRequest) (string, error) {
			<-release

			return "Extended narrative...", nil
		})

	fx.controller.SelectPlace(ctx, theStud())

	snap := fx.controller.Snapshot()
	assert.Equal(t, "the-stud", snap.Place.ID)
	assert.Equal(t, theStud().Story, snap.DisplayText)
	assert.Equal(t, entity.ExpansionExpanding, snap.Expansion)
	assert.Equal(t, entity.NarrationNotRequested, snap.Narration)

	close(release)
	fx.controller.Wait()

	snap = fx.controller.Snapshot()
	assert.Equal(t, "Extended narrative...", snap.DisplayText)
	assert.Equal(t, entity.ExpansionExpanded, snap.Expansion)
}

func TestSelectionController_ExpansionFallbacks(t *testing.T) {
	tests := []struct {
		name string
		text string
		err  error
	}{
		{name: "gateway error", err: errors.New("boom")},
		{name: "empty text", text: "  "},
		{name: "timeout", err: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSelectionController(t)
			fx.expander.EXPECT().ExpandStory(mock.Anything, mock.Anything).Return(tt.text, tt.err)

			fx.controller.SelectPlace(context.Background(), theStud())
			fx.controller.Wait()

			snap := fx.controller.Snapshot()
			assert.Equal(t, theStud().Story, snap.DisplayText)
			assert.Equal(t, entity.ExpansionExpanded, snap.Expansion)
		})
	}
}

func TestSelectionController_ExpansionBoundedByTimeout(t *testing.T) {
	expander := mockSvc.NewMockStoryExpander(t)
	controller := NewSelectionController(expander, nil, 20*time.Millisecond, newTestLogger())
	t.Cleanup(controller.Close)

	expander.EXPECT().
		ExpandStory(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ service.ExpandStoryRequest) (string, error) {
			<-ctx.Done()

			return "", ctx.Err()
		})

	controller.SelectPlace(context.Background(), theStud())
	controller.Wait()

	snap := controller.Snapshot()
	assert.Equal(t, entity.ExpansionExpanded, snap.Expansion)
	assert.Equal(t, theStud().Story, snap.DisplayText)
}

func TestSelectionController_StaleExpansionDiscarded(t *testing.T) {
	fx := createTestSelectionController(t)
	ctx := context.Background()

	releaseFirst := make(chan struct{})
	releaseSecond := make(chan struct{})
	firstReturned := make(chan struct{})
	fx.expander.EXPECT().
		ExpandStory(mock.Anything, mock.MatchedBy(func(r service.ExpandStoryRequest) bool { return r.Name == "The Stud" })).
		RunAndReturn(func(context.Context, service.ExpandStoryRequest) (string, error) {
			defer close(firstReturned)
			<-releaseFirst

			return "Stale narrative about the first place.", nil
		})
	fx.expander.EXPECT().
		ExpandStory(mock.Anything, mock.MatchedBy(func(r service.ExpandStoryRequest) bool { return r.Name == "La Esquina" })).
		RunAndReturn(func(context.Context, service.ExpandStoryRequest) (string, error) {
			<-releaseSecond

			return "Fresh narrative about the corner.", nil
		})

	fx.controller.SelectPlace(ctx, theStud())
	fx.controller.SelectPlace(ctx, laEsquina())

	// the second selection finishes first
	close(releaseSecond)
	require.Eventually(t, func() bool {
		return fx.controller.Snapshot().Expansion == entity.ExpansionExpanded
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Fresh narrative about the corner.", fx.controller.Snapshot().DisplayText)

	// then the first selection's response arrives late
	close(releaseFirst)
	<-firstReturned
	fx.controller.Wait()

	snap := fx.controller.Snapshot()
	assert.Equal(t, "la-esquina", snap.Place.ID)
	assert.Equal(t, "Fresh narrative about the corner.", snap.DisplayText)
	assert.Equal(t, entity.ExpansionExpanded, snap.Expansion)
}

func TestSelectionController_Deselect(t *testing.T) {
	fx := createTestSelectionController(t)
	fx.expander.EXPECT().ExpandStory(mock.Anything, mock.Anything).Return("Longer.", nil)

	fx.controller.SelectPlace(context.Background(), theStud())
	fx.controller.Wait()
	fx.controller.SelectPlace(context.Background(), nil)

	snap := fx.controller.Snapshot()
	assert.Nil(t, snap.Place)
	assert.Empty(t, snap.DisplayText)
	assert.Equal(t, entity.ExpansionIdle, snap.Expansion)
	assert.Equal(t, entity.NarrationNotRequested, snap.Narration)
}

func TestSelectionController_RequestNarration(t *testing.T) {
	fx := createTestSelectionController(t)
	ctx := context.Background()

	fx.expander.EXPECT().ExpandStory(mock.Anything, mock.Anything).Return("Extended narrative...", nil)
	clip := newClip(t, "the-stud", "Extended narrative...")
	fx.narrator.EXPECT().Narrate(mock.Anything, "the-stud", "Extended narrative...").Return(clip, nil)

	assert.False(t, fx.controller.RequestNarration(ctx), "no selection yet")

	fx.controller.SelectPlace(ctx, theStud())
	fx.controller.Wait()

	require.True(t, fx.controller.RequestNarration(ctx))
	fx.controller.Wait()

	snap := fx.controller.Snapshot()
	assert.Equal(t, entity.NarrationNarrated, snap.Narration)
	require.NotNil(t, snap.Audio)
	assert.Equal(t, "Extended narrative...", snap.Audio.Text)
}

func TestSelectionController_NarrationFailureResets(t *testing.T) {
	fx := createTestSelectionController(t)
	ctx := context.Background()

	fx.expander.EXPECT().ExpandStory(mock.Anything, mock.Anything).Return("", nil)
	fx.narrator.EXPECT().Narrate(mock.Anything, "the-stud", theStud().Story).Return(nil, errors.New("502"))

	fx.controller.SelectPlace(ctx, theStud())
	fx.controller.Wait()
	require.True(t, fx.controller.RequestNarration(ctx))
	fx.controller.Wait()

	snap := fx.controller.Snapshot()
	assert.Equal(t, entity.NarrationNotRequested, snap.Narration)
	assert.Nil(t, snap.Audio)
}

func TestSelectionController_SupersededClipReleased(t *testing.T) {
	fx := createTestSelectionController(t)
	ctx := context.Background()

	fx.expander.EXPECT().ExpandStory(mock.Anything, mock.Anything).Return("", nil)

	stale := newClip(t, "the-stud", theStud().Story)
	releaseNarration := make(chan struct{})
	fx.narrator.EXPECT().
		Narrate(mock.Anything, "the-stud", mock.Anything).
		RunAndReturn(func(context.Context, string, string) (*entity.AudioClip, error) {
			<-releaseNarration

			return stale, nil
		})

	fx.controller.SelectPlace(ctx, theStud())
	fx.controller.Wait()
	require.True(t, fx.controller.RequestNarration(ctx))
	assert.Equal(t, entity.NarrationNarrating, fx.controller.Snapshot().Narration)

	fx.controller.SelectPlace(ctx, laEsquina())
	close(releaseNarration)
	fx.controller.Wait()

	snap := fx.controller.Snapshot()
	assert.Equal(t, "la-esquina", snap.Place.ID)
	assert.Equal(t, entity.NarrationNotRequested, snap.Narration)
	assert.Nil(t, snap.Audio)

	_, err := os.Stat(stale.Path)
	assert.True(t, os.IsNotExist(err), "superseded clip must be released")
}

func TestSelectionController_NewSelectionReleasesAudio(t *testing.T) {
	fx := createTestSelectionController(t)
	ctx := context.Background()

	fx.expander.EXPECT().ExpandStory(mock.Anything, mock.Anything).Return("", nil)
	clip := newClip(t, "the-stud", theStud().Story)
	fx.narrator.EXPECT().Narrate(mock.Anything, "the-stud", theStud().Story).Return(clip, nil)

	fx.controller.SelectPlace(ctx, theStud())
	fx.controller.Wait()
	require.True(t, fx.controller.RequestNarration(ctx))
	fx.controller.Wait()
	require.Equal(t, entity.NarrationNarrated, fx.controller.Snapshot().Narration)

	fx.controller.SelectPlace(ctx, laEsquina())
	fx.controller.Wait()

	_, err := os.Stat(clip.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestSelectionController_OnChangeInOrder(t *testing.T) {
	var (
		mu    sync.Mutex
		seen  []entity.ExpansionState
		texts []string
	)
	fx := createTestSelectionController(t, WithOnChange(func(s usecase.SelectionSnapshot) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, s.Expansion)
		texts = append(texts, s.DisplayText)
	}))

	fx.expander.EXPECT().ExpandStory(mock.Anything, mock.Anything).Return("Extended narrative...", nil)

	fx.controller.SelectPlace(context.Background(), theStud())
	fx.controller.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []entity.ExpansionState{entity.ExpansionExpanding, entity.ExpansionExpanded}, seen)
	assert.Equal(t, "Extended narrative...", texts[len(texts)-1])
}

func TestSelectionController_SnapshotIsACopy(t *testing.T) {
	fx := createTestSelectionController(t)
	fx.expander.EXPECT().ExpandStory(mock.Anything, mock.Anything).Return("", nil)

	fx.controller.SelectPlace(context.Background(), theStud())
	fx.controller.Wait()

	snap := fx.controller.Snapshot()
	snap.Place.Name = "changed"

	assert.Equal(t, "The Stud", fx.controller.Snapshot().Place.Name)
}
