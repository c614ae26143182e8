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

type quoteRepository struct {
	storage repository.DeviceStorage
	mu      sync.Mutex
}

// legacyQuote is the older per-place entry shape.
type legacyQuote struct {
	MonthYear string `json:"monthYear"`
	Memory    string `json:"memory"`
}

// NewQuoteRepository stores every quote in one mapping keyed by place ID.
// Entries written under the older per-place keys are still readable.
func NewQuoteRepository(storage repository.DeviceStorage) repository.QuoteRepository {
	return &quoteRepository{storage: storage}
}

func (r *quoteRepository) Get(ctx context.Context, placeID string) (*entity.QuoteMemory, error) {
	quotes, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	if q, ok := quotes[placeID]; ok {
		return &q, nil
	}

	return r.getLegacy(ctx, placeID)
}

func (r *quoteRepository) Set(ctx context.Context, placeID string, quote entity.QuoteMemory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	quotes, err := r.readAll(ctx)
	switch {
	case errors.Is(err, repository.ErrMalformedDocument):
		// a corrupt mapping is replaced rather than blocking every future save
		quotes = make(map[string]entity.QuoteMemory)
	case err != nil:
		return err
	}
	quotes[placeID] = quote

	data, err := json.Marshal(quotes)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := r.storage.SetItem(ctx, constants.QuotesStorageKey, string(data)); err != nil {
		return err
	}

	// the mapping now shadows the legacy entry
	_ = r.storage.RemoveItem(ctx, constants.LegacyQuoteKeyPrefix+placeID)

	return nil
}

func (r *quoteRepository) readAll(ctx context.Context) (map[string]entity.QuoteMemory, error) {
	raw, ok, err := r.storage.GetItem(ctx, constants.QuotesStorageKey)
	if err != nil {
		return nil, err
	}

	quotes := make(map[string]entity.QuoteMemory)
	if !ok {
		return quotes, nil
	}
	if err := json.Unmarshal([]byte(raw), &quotes); err != nil {
		return nil, errors.Wrap(repository.ErrMalformedDocument, err.Error())
	}
	if quotes == nil {
		quotes = make(map[string]entity.QuoteMemory)
	}

	return quotes, nil
}

func (r *quoteRepository) getLegacy(ctx context.Context, placeID string) (*entity.QuoteMemory, error) {
	raw, ok, err := r.storage.GetItem(ctx, constants.LegacyQuoteKeyPrefix+placeID)
	if err != nil || !ok {
		return nil, err
	}

	var legacy legacyQuote
	if err := json.Unmarshal([]byte(raw), &legacy); err != nil {
		return nil, errors.Wrap(repository.ErrMalformedDocument, err.Error())
	}
	if legacy.Memory == "" {
		return nil, nil
	}

	return &entity.QuoteMemory{Memory: legacy.Memory, MonthYear: legacy.MonthYear}, nil
}
