package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"whatwashere/internal/domain/entity"
	domainerrors "whatwashere/internal/domain/errors"
	"whatwashere/internal/domain/repository"
	"whatwashere/internal/domain/service"
	"whatwashere/internal/errors"
	"whatwashere/internal/usecase"
	"whatwashere/internal/validator"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type catalogService struct {
	seed       []*entity.Place
	seedIndex  map[string]*entity.Place
	userPlaces repository.UserPlaceRepository
	geocoder   service.Geocoder
	validate   *validator.Validator
	logger     *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewCatalogService creates the catalog over the seed places and the user place store.
func NewCatalogService(
	seed []*entity.Place,
	userPlaces repository.UserPlaceRepository,
	geocoder service.Geocoder,
	validate *validator.Validator,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	index := make(map[string]*entity.Place, len(seed))
	for _, p := range seed {
		index[p.ID] = p
	}

	return &catalogService{
		seed:       seed,
		seedIndex:  index,
		userPlaces: userPlaces,
		geocoder:   geocoder,
		validate:   validate,
		logger:     logger,
		now:        time.Now,
		newID: func() string {
			return entity.UserPlaceIDPrefix + uuid.NewString()
		},
	}
}

// AllPlaces returns seed places then user places. User places that collide
// with a seed ID are skipped.
func (s *catalogService) AllPlaces(ctx context.Context) []*entity.Place {
	out := make([]*entity.Place, 0, len(s.seed))
	for _, p := range s.seed {
		out = append(out, p.Clone())
	}

	return append(out, s.loadUserPlaces(ctx)...)
}

// GetPlaceByID looks in the seed catalog first, then in user places.
func (s *catalogService) GetPlaceByID(ctx context.Context, id string) (*entity.Place, error) {
	if p, ok := s.seedIndex[id]; ok {
		return p.Clone(), nil
	}

	for _, p := range s.loadUserPlaces(ctx) {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, domainerrors.ErrPlaceNotFound.WithDetails(id)
}

// AddUserPlace geocodes the address and stores the new place.
func (s *catalogService) AddUserPlace(ctx context.Context, input *usecase.AddPlaceInput) (*entity.Place, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("place input is required")
	}
	if err := s.validate.Validate(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	match, err := s.geocoder.Geocode(ctx, input.Address)
	if errors.Is(err, service.ErrNoMatch) {
		return nil, domainerrors.ErrGeocodeNotFound.WithDetails(strings.TrimSpace(input.Address))
	}
	if err != nil {
		s.logger.WarnContext(ctx, "Geocoding failed", slog.Any("error", err))

		return nil, domainerrors.ErrGeocodeUnavailable
	}

	id := s.newID()
	if s.idTaken(ctx, id) {
		return nil, domainerrors.ErrPlaceIDConflict.WithDetails(id)
	}

	createdAt := s.now().UTC()
	place := &entity.Place{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Latitude:    match.Latitude,
		Longitude:   match.Longitude,
		City:        strings.TrimSpace(input.City),
		Status:      input.Status,
		StartDate:   strings.TrimSpace(input.StartDate),
		EndDate:     strings.TrimSpace(input.EndDate),
		Reason:      strings.TrimSpace(input.Reason),
		Communities: input.Communities,
		Story:       strings.TrimSpace(input.Story),
		Quote:       strings.TrimSpace(input.Quote),
		FullAddress: match.FullAddress,
		Source:      entity.PlaceSourceUser,
		CreatedAt:   &createdAt,
	}
	if err := place.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := s.userPlaces.Save(ctx, place); err != nil {
		return nil, errors.Wrap(err, "failed to save user place")
	}

	s.logger.InfoContext(ctx, "User place added",
		slog.String("place_id", place.ID),
		slog.String("name", place.Name),
	)

	return place.Clone(), nil
}

// PlacesInBound returns catalog places whose coordinate lies inside bound.
func (s *catalogService) PlacesInBound(ctx context.Context, bound orb.Bound) []*entity.Place {
	var out []*entity.Place
	for _, p := range s.AllPlaces(ctx) {
		if bound.Contains(p.Point()) {
			out = append(out, p)
		}
	}

	return out
}

// FeatureCollection renders the catalog as GeoJSON point features.
func (s *catalogService) FeatureCollection(ctx context.Context) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, p := range s.AllPlaces(ctx) {
		f := geojson.NewFeature(p.Point())
		f.ID = p.ID
		f.Properties["name"] = p.Name
		f.Properties["status"] = string(p.Status)
		f.Properties["source"] = string(p.Source)
		if p.City != "" {
			f.Properties["city"] = p.City
		}
		if years := p.YearsLabel(); years != "" {
			f.Properties["years"] = years
		}
		fc.Append(f)
	}

	return fc
}

// loadUserPlaces returns valid user places that do not shadow a seed place.
// Storage failures degrade to no user places.
func (s *catalogService) loadUserPlaces(ctx context.Context) []*entity.Place {
	places, err := s.userPlaces.List(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to load user places", slog.Any("error", err))

		return nil
	}

	out := make([]*entity.Place, 0, len(places))
	for _, p := range places {
		if p == nil {
			continue
		}
		if _, collides := s.seedIndex[p.ID]; collides {
			s.logger.WarnContext(ctx, "Skipping user place that collides with a seed place", slog.String("place_id", p.ID))

			continue
		}
		out = append(out, p.Clone())
	}

	return out
}

func (s *catalogService) idTaken(ctx context.Context, id string) bool {
	if _, ok := s.seedIndex[id]; ok {
		return true
	}
	for _, p := range s.loadUserPlaces(ctx) {
		if p.ID == id {
			return true
		}
	}

	return false
}
