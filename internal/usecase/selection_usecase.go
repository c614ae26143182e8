package usecase

import (
	"context"

	"whatwashere/internal/domain/entity"
)

// SelectionSnapshot is the observable state of the selected place.
type SelectionSnapshot struct {
	Place       *entity.Place
	DisplayText string
	Expansion   entity.ExpansionState
	Narration   entity.NarrationState
	Audio       *entity.AudioClip
}

// SelectionUsecase owns the selected place and its in-flight enrichment.
type SelectionUsecase interface {
	// SelectPlace replaces the selection. A nil place deselects.
	SelectPlace(ctx context.Context, place *entity.Place)

	// RequestNarration narrates the current display text and reports whether a request was issued.
	RequestNarration(ctx context.Context) bool

	// Snapshot returns a copy of the current state.
	Snapshot() SelectionSnapshot

	// Wait blocks until in-flight requests have finished.
	Wait()

	// Close deselects and waits.
	Close()
}
