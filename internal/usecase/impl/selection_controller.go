package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"whatwashere/internal/domain/entity"
	"whatwashere/internal/domain/lifecycle"
	"whatwashere/internal/domain/service"
	"whatwashere/internal/usecase"
)

// SelectionOption configures a SelectionController.
type SelectionOption func(*SelectionController)

// WithOnChange registers a callback that receives every state change in order.
func WithOnChange(fn func(usecase.SelectionSnapshot)) SelectionOption {
	return func(c *SelectionController) {
		c.onChange = fn
	}
}

// SelectionController owns the selected place, its expansion and its
// narration. Results of requests issued for an earlier selection or an
// earlier narration are discarded.
type SelectionController struct {
	expander service.StoryExpander
	narrator service.Narrator
	timeout  time.Duration
	logger   *slog.Logger
	onChange func(usecase.SelectionSnapshot)

	mu         sync.Mutex
	generation uint64
	narration  uint64
	state      usecase.SelectionSnapshot
	version    uint64

	notifyMu  sync.Mutex
	delivered uint64

	wg sync.WaitGroup
}

var _ usecase.SelectionUsecase = (*SelectionController)(nil)

// NewSelectionController creates a controller. Either gateway may be nil;
// a missing expander keeps the base story and a missing narrator refuses
// narration requests.
func NewSelectionController(
	expander service.StoryExpander,
	narrator service.Narrator,
	timeout time.Duration,
	logger *slog.Logger,
	opts ...SelectionOption,
) *SelectionController {
	if timeout <= 0 {
		timeout = lifecycle.DefaultTimeout
	}

	c := &SelectionController{
		expander: expander,
		narrator: narrator,
		timeout:  timeout,
		logger:   logger,
		state: usecase.SelectionSnapshot{
			Expansion: entity.ExpansionIdle,
			Narration: entity.NarrationNotRequested,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *SelectionController) SelectPlace(ctx context.Context, place *entity.Place) {
	c.mu.Lock()
	c.generation++
	c.narration++
	gen := c.generation
	previous := c.state.Audio

	if place == nil {
		c.state = usecase.SelectionSnapshot{
			Expansion: entity.ExpansionIdle,
			Narration: entity.NarrationNotRequested,
		}
	} else {
		place = place.Clone()
		c.state = usecase.SelectionSnapshot{
			Place:       place,
			DisplayText: place.Story,
			Expansion:   entity.ExpansionExpanding,
			Narration:   entity.NarrationNotRequested,
		}
	}
	snap, version := c.snapshotLocked()
	c.mu.Unlock()

	c.release(ctx, previous)
	c.notify(snap, version)

	if place == nil {
		return
	}

	c.wg.Add(1)
	go c.expand(context.WithoutCancel(ctx), gen, place)
}

func (c *SelectionController) expand(ctx context.Context, gen uint64, place *entity.Place) {
	defer c.wg.Done()

	text := c.fetchExpansion(ctx, place)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		c.logger.DebugContext(ctx, "Discarding expansion for superseded selection", slog.String("place_id", place.ID))

		return
	}
	if text != "" {
		c.state.DisplayText = text
	}
	c.state.Expansion = entity.ExpansionExpanded
	snap, version := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap, version)
}

func (c *SelectionController) fetchExpansion(ctx context.Context, place *entity.Place) string {
	if c.expander == nil || strings.TrimSpace(place.Story) == "" {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.expander.ExpandStory(ctx, service.ExpandStoryRequest{
		Name:        place.Name,
		City:        place.City,
		Years:       place.YearsLabel(),
		Reason:      place.Reason,
		Communities: place.Communities,
		Story:       place.Story,
	})
	if err != nil {
		c.logger.WarnContext(ctx, "Story expansion failed, keeping base story",
			slog.String("place_id", place.ID),
			slog.Any("error", err),
		)

		return ""
	}

	return strings.TrimSpace(text)
}

func (c *SelectionController) RequestNarration(ctx context.Context) bool {
	c.mu.Lock()
	if c.state.Place == nil || strings.TrimSpace(c.state.DisplayText) == "" || c.narrator == nil {
		c.mu.Unlock()

		return false
	}

	c.narration++
	gen, seq := c.generation, c.narration
	placeID, text := c.state.Place.ID, c.state.DisplayText
	previous := c.state.Audio
	c.state.Audio = nil
	c.state.Narration = entity.NarrationNarrating
	snap, version := c.snapshotLocked()
	c.mu.Unlock()

	c.release(ctx, previous)
	c.notify(snap, version)

	c.wg.Add(1)
	go c.narrate(context.WithoutCancel(ctx), gen, seq, placeID, text)

	return true
}

func (c *SelectionController) narrate(ctx context.Context, gen, seq uint64, placeID, text string) {
	defer c.wg.Done()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	clip, err := c.narrator.Narrate(callCtx, placeID, text)
	cancel()
	if err != nil {
		c.logger.WarnContext(ctx, "Narration failed", slog.String("place_id", placeID), slog.Any("error", err))
	}

	c.mu.Lock()
	if gen != c.generation || seq != c.narration {
		c.mu.Unlock()
		c.logger.DebugContext(ctx, "Discarding superseded narration", slog.String("place_id", placeID))
		c.release(ctx, clip)

		return
	}
	if err != nil || clip == nil {
		c.state.Narration = entity.NarrationNotRequested
	} else {
		c.state.Audio = clip
		c.state.Narration = entity.NarrationNarrated
	}
	snap, version := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap, version)
}

func (c *SelectionController) Snapshot() usecase.SelectionSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, _ := c.snapshotLocked()

	return snap
}

func (c *SelectionController) Wait() {
	c.wg.Wait()
}

func (c *SelectionController) Close() {
	c.SelectPlace(context.Background(), nil)
	c.wg.Wait()
}

// snapshotLocked copies the state and bumps the change version. c.mu must be held.
func (c *SelectionController) snapshotLocked() (usecase.SelectionSnapshot, uint64) {
	c.version++
	snap := c.state
	if snap.Place != nil {
		snap.Place = snap.Place.Clone()
	}

	return snap, c.version
}

func (c *SelectionController) notify(snap usecase.SelectionSnapshot, version uint64) {
	if c.onChange == nil {
		return
	}

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	// A newer snapshot was already delivered.
	if version <= c.delivered {
		return
	}
	c.delivered = version
	c.onChange(snap)
}

func (c *SelectionController) release(ctx context.Context, clip *entity.AudioClip) {
	if clip == nil {
		return
	}
	if err := clip.Release(); err != nil {
		c.logger.WarnContext(ctx, "Failed to release narration audio", slog.Any("error", err))
	}
}
