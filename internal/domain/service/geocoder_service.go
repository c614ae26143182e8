package service

import (
	"context"

	"whatwashere/internal/domain/entity"
	"whatwashere/internal/errors"
)

// ErrNoMatch is returned when the geocoder finds nothing for an address.
var ErrNoMatch = errors.New("no geocoding match")

// Geocoder resolves a free-form address to coordinates.
type Geocoder interface {
	// Geocode returns the first match, or ErrNoMatch.
	Geocode(ctx context.Context, address string) (*entity.GeocodeResult, error)
}
