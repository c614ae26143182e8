package usecase

import (
	"context"

	"whatwashere/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// AddPlaceInput is what a user submits to add a place by address.
type AddPlaceInput struct {
	Name        string             `json:"name" validate:"notblank,max=200"`
	Address     string             `json:"address" validate:"notblank,max=500"`
	Story       string             `json:"story" validate:"notblank"`
	StartDate   string             `json:"startDate" validate:"notblank"`
	EndDate     string             `json:"endDate"`
	Status      entity.PlaceStatus `json:"status" validate:"required,oneof=active threatened erased"`
	Quote       string             `json:"quote"`
	City        string             `json:"city"`
	Reason      string             `json:"reason"`
	Communities []string           `json:"communities"`
}

// CatalogUsecase defines the combined seed and user place catalog.
type CatalogUsecase interface {
	// AllPlaces returns seed places followed by user places in insertion order.
	AllPlaces(ctx context.Context) []*entity.Place

	// GetPlaceByID looks in seed places first, then user places.
	GetPlaceByID(ctx context.Context, id string) (*entity.Place, error)

	// AddUserPlace geocodes the address and persists a new user place.
	AddUserPlace(ctx context.Context, input *AddPlaceInput) (*entity.Place, error)

	// PlacesInBound returns catalog places inside the viewport.
	PlacesInBound(ctx context.Context, bound orb.Bound) []*entity.Place

	// FeatureCollection renders the catalog as GeoJSON points.
	FeatureCollection(ctx context.Context) *geojson.FeatureCollection
}
