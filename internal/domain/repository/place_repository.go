package repository

import (
	"context"

	"whatwashere/internal/domain/entity"
)

// UserPlaceRepository persists places contributed by the user.
type UserPlaceRepository interface {
	// List returns user places in insertion order.
	List(ctx context.Context) ([]*entity.Place, error)

	// Save inserts the place, or replaces a stored place with the same ID.
	Save(ctx context.Context, place *entity.Place) error
}
