package impl

import (
	"context"
	"testing"
	"time"

	"whatwashere/internal/domain/entity"
	domainerrors "whatwashere/internal/domain/errors"
	"whatwashere/internal/domain/service"
	"whatwashere/internal/errors"
	mockRepo "whatwashere/internal/mocks/repository"
	mockSvc "whatwashere/internal/mocks/service"
	"whatwashere/internal/usecase"
	"whatwashere/internal/validator"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service    *catalogService
	userPlaces *mockRepo.MockUserPlaceRepository
	geocoder   *mockSvc.MockGeocoder
}

func seedPlacesForTest() []*entity.Place {
	return []*entity.Place{
		{
			ID:        "the-stud",
			Name:      "The Stud",
			Latitude:  37.7726,
			Longitude: -122.4099,
			City:      "San Francisco, CA",
			Status:    entity.PlaceStatusActive,
			Years:     "1966–present",
			Story:     "One of the oldest queer bars in San Francisco.",
			Source:    entity.PlaceSourceSeed,
		},
		{
			ID:        "la-esquina",
			Name:      "La Esquina",
			Latitude:  34.0407,
			Longitude: -118.2468,
			City:      "Los Angeles, CA",
			Status:    entity.PlaceStatusErased,
			Story:     "A corner grocery that anchored the block.",
			Source:    entity.PlaceSourceSeed,
		},
	}
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	userPlaces := mockRepo.NewMockUserPlaceRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)

	svc := NewCatalogService(seedPlacesForTest(), userPlaces, geocoder, validator.New(), newTestLogger()).(*catalogService)
	svc.now = func() time.Time { return fixedNow }
	svc.newID = func() string { return "user-0001" }

	return catalogServiceFixtures{
		service:    svc,
		userPlaces: userPlaces,
		geocoder:   geocoder,
	}
}

func validAddPlaceInput() *usecase.AddPlaceInput {
	return &usecase.AddPlaceInput{
		Name:      "The Center",
		Address:   "123 Main St, Springfield, IL",
		Story:     "A community center that hosted potlucks every Sunday.",
		StartDate: "1978",
		Status:    entity.PlaceStatusActive,
	}
}

func TestCatalogService_AllPlaces_SeedThenUser(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	userPlace := &entity.Place{ID: "user-a", Name: "Kitchen", Status: entity.PlaceStatusActive, Source: entity.PlaceSourceUser}
	fx.userPlaces.EXPECT().List(ctx).Return([]*entity.Place{userPlace}, nil)

	places := fx.service.AllPlaces(ctx)

	require.Len(t, places, 3)
	assert.Equal(t, "the-stud", places[0].ID)
	assert.Equal(t, "la-esquina", places[1].ID)
	assert.Equal(t, "user-a", places[2].ID)
}

func TestCatalogService_AllPlaces_SkipsSeedCollisions(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.userPlaces.EXPECT().List(ctx).Return([]*entity.Place{
		{ID: "the-stud", Name: "Impostor", Status: entity.PlaceStatusActive, Source: entity.PlaceSourceUser},
		nil,
	}, nil)

	places := fx.service.AllPlaces(ctx)

	require.Len(t, places, 2)
	assert.Equal(t, "The Stud", places[0].Name)
}

func TestCatalogService_AllPlaces_StorageFailureKeepsSeed(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.userPlaces.EXPECT().List(ctx).Return(nil, errors.New("disk gone"))

	assert.Len(t, fx.service.AllPlaces(ctx), 2)
}

func TestCatalogService_AllPlaces_ReturnsCopies(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.userPlaces.EXPECT().List(ctx).Return(nil, nil).Times(2)

	first := fx.service.AllPlaces(ctx)
	first[0].Name = "mutated"

	assert.Equal(t, "The Stud", fx.service.AllPlaces(ctx)[0].Name)
}

func TestCatalogService_GetPlaceByID(t *testing.T) {
	ctx := context.Background()

	t.Run("seed place without touching storage", func(t *testing.T) {
		fx := createTestCatalogService(t)

		place, err := fx.service.GetPlaceByID(ctx, "la-esquina")
		require.NoError(t, err)
		assert.Equal(t, "La Esquina", place.Name)
	})

	t.Run("user place", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.userPlaces.EXPECT().List(ctx).Return([]*entity.Place{
			{ID: "user-b", Name: "Bookshop", Status: entity.PlaceStatusThreatened, Source: entity.PlaceSourceUser},
		}, nil)

		place, err := fx.service.GetPlaceByID(ctx, "user-b")
		require.NoError(t, err)
		assert.Equal(t, "Bookshop", place.Name)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.userPlaces.EXPECT().List(ctx).Return(nil, nil)

		place, err := fx.service.GetPlaceByID(ctx, "missing")
		assert.Nil(t, place)
		assert.True(t, errors.Is(err, domainerrors.ErrPlaceNotFound))
	})
}

func TestCatalogService_AddUserPlace_GeocodesAndPersists(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	input := validAddPlaceInput()

	var stored []*entity.Place
	fx.geocoder.EXPECT().
		Geocode(ctx, input.Address).
		Return(&entity.GeocodeResult{Latitude: 39.1, Longitude: -89.6, FullAddress: "123 Main St, Springfield, IL"}, nil)
	fx.userPlaces.EXPECT().
		List(ctx).
		RunAndReturn(func(context.Context) ([]*entity.Place, error) { return stored, nil })
	fx.userPlaces.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Place")).
		RunAndReturn(func(_ context.Context, p *entity.Place) error {
			stored = append(stored, p.Clone())

			return nil
		})

	place, err := fx.service.AddUserPlace(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, "user-0001", place.ID)
	assert.Equal(t, entity.PlaceSourceUser, place.Source)
	assert.InDelta(t, 39.1, place.Latitude, 1e-9)
	assert.InDelta(t, -89.6, place.Longitude, 1e-9)
	assert.Equal(t, "123 Main St, Springfield, IL", place.FullAddress)
	require.NotNil(t, place.CreatedAt)
	assert.Equal(t, fixedNow, *place.CreatedAt)

	all := fx.service.AllPlaces(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, "The Center", all[2].Name)
}

func TestCatalogService_AddUserPlace_GeocodeMissLeavesCatalogUnchanged(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	input := validAddPlaceInput()
	input.Address = "nowhere at all"

	fx.geocoder.EXPECT().Geocode(ctx, input.Address).Return(nil, service.ErrNoMatch)
	fx.userPlaces.EXPECT().List(ctx).Return(nil, nil)

	place, err := fx.service.AddUserPlace(ctx, input)
	assert.Nil(t, place)
	assert.True(t, errors.Is(err, domainerrors.ErrGeocodeNotFound))

	fx.userPlaces.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	assert.Len(t, fx.service.AllPlaces(ctx), 2)
}

func TestCatalogService_AddUserPlace_GeocoderFailure(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	input := validAddPlaceInput()

	fx.geocoder.EXPECT().Geocode(ctx, input.Address).Return(nil, errors.New("connection reset"))

	_, err := fx.service.AddUserPlace(ctx, input)
	assert.True(t, errors.Is(err, domainerrors.ErrGeocodeUnavailable))
}

func TestCatalogService_AddUserPlace_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.AddPlaceInput)
	}{
		{name: "blank name", mutate: func(in *usecase.AddPlaceInput) { in.Name = "   " }},
		{name: "missing address", mutate: func(in *usecase.AddPlaceInput) { in.Address = "" }},
		{name: "missing story", mutate: func(in *usecase.AddPlaceInput) { in.Story = "" }},
		{name: "missing start date", mutate: func(in *usecase.AddPlaceInput) { in.StartDate = "" }},
		{name: "unknown status", mutate: func(in *usecase.AddPlaceInput) { in.Status = "demolished" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			input := validAddPlaceInput()
			tt.mutate(input)

			_, err := fx.service.AddUserPlace(context.Background(), input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCatalogService_AddUserPlace_IDConflict(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	input := validAddPlaceInput()

	fx.geocoder.EXPECT().
		Geocode(ctx, input.Address).
		Return(&entity.GeocodeResult{Latitude: 1, Longitude: 2, FullAddress: "Somewhere"}, nil)
	fx.userPlaces.EXPECT().List(ctx).Return([]*entity.Place{
		{ID: "user-0001", Name: "Existing", Status: entity.PlaceStatusActive, Source: entity.PlaceSourceUser},
	}, nil)

	_, err := fx.service.AddUserPlace(ctx, input)
	assert.True(t, errors.Is(err, domainerrors.ErrPlaceIDConflict))
}

func TestCatalogService_PlacesInBound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.userPlaces.EXPECT().List(ctx).Return(nil, nil)

	bayArea := orb.Bound{Min: orb.Point{-123, 37}, Max: orb.Point{-122, 38}}
	places := fx.service.PlacesInBound(ctx, bayArea)

	require.Len(t, places, 1)
	assert.Equal(t, "the-stud", places[0].ID)
}

func TestCatalogService_FeatureCollection(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.userPlaces.EXPECT().List(ctx).Return(nil, nil)

	fc := fx.service.FeatureCollection(ctx)

	require.Len(t, fc.Features, 2)
	first := fc.Features[0]
	assert.Equal(t, "the-stud", first.ID)
	assert.Equal(t, orb.Point{-122.4099, 37.7726}, first.Geometry)
	assert.Equal(t, "The Stud", first.Properties["name"])
	assert.Equal(t, "active", first.Properties["status"])
	assert.Equal(t, "1966–present", first.Properties["years"])
}
