package tier

import (
	"context"
	"encoding/json"

	"whatwashere/internal/domain/constants"
	"whatwashere/internal/domain/entity"
	"whatwashere/internal/domain/repository"
	"whatwashere/internal/errors"
)

type deviceTier struct {
	storage repository.DeviceStorage
}

// NewDeviceTier keeps the document in device storage under the memories key.
func NewDeviceTier(storage repository.DeviceStorage) repository.MemoryTier {
	return &deviceTier{storage: storage}
}

func (t *deviceTier) Name() string {
	return "device"
}

func (t *deviceTier) Load(ctx context.Context) (entity.MemoryMap, error) {
	raw, ok, err := t.storage.GetItem(ctx, constants.MemoriesStorageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return entity.MemoryMap{}, nil
	}

	return entity.DecodeMemoryMap([]byte(raw))
}

func (t *deviceTier) Save(ctx context.Context, memories entity.MemoryMap) error {
	data, err := json.Marshal(memories)
	if err != nil {
		return errors.WithStack(err)
	}

	return t.storage.SetItem(ctx, constants.MemoriesStorageKey, string(data))
}
