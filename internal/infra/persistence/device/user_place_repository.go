package device

import (
	"context"
	"encoding/json"
	"sync"

	"whatwashere/internal/domain/constants"
	"whatwashere/internal/domain/entity"
	"whatwashere/internal/domain/repository"
	"whatwashere/internal/errors"
)

type userPlaceRepository struct {
	storage repository.DeviceStorage
	mu      sync.Mutex
}

// NewUserPlaceRepository keeps user places as one JSON list on the device.
func NewUserPlaceRepository(storage repository.DeviceStorage) repository.UserPlaceRepository {
	return &userPlaceRepository{storage: storage}
}

func (r *userPlaceRepository) List(ctx context.Context) ([]*entity.Place, error) {
	raw, ok, err := r.storage.GetItem(ctx, constants.UserPlacesStorageKey)
	if err != nil || !ok {
		return nil, err
	}

	var places []*entity.Place
	if err := json.Unmarshal([]byte(raw), &places); err != nil {
		return nil, errors.Wrap(repository.ErrMalformedDocument, err.Error())
	}

	return places, nil
}

func (r *userPlaceRepository) Save(ctx context.Context, place *entity.Place) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	places, err := r.List(ctx)
	if err != nil && !errors.Is(err, repository.ErrMalformedDocument) {
		return err
	}

	replaced := false
	for i, p := range places {
		if p != nil && p.ID == place.ID {
			places[i] = place
			replaced = true

			break
		}
	}
	if !replaced {
		places = append(places, place)
	}

	data, err := json.Marshal(places)
	if err != nil {
		return errors.WithStack(err)
	}

	return r.storage.SetItem(ctx, constants.UserPlacesStorageKey, string(data))
}
