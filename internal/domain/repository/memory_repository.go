// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"whatwashere/internal/domain/entity"
	"whatwashere/internal/errors"
)

// Domain-specific errors for memory persistence.
var (
	// ErrQuotaExceeded is returned when a device value exceeds the storage quota.
	ErrQuotaExceeded = errors.New("device storage quota exceeded")
	// ErrMalformedDocument is returned when a stored memory document is not an object of lists.
	ErrMalformedDocument = errors.New("malformed memory document")
)

// MemoryTier is one place the photo memory document can live.
// Every save replaces the whole document.
type MemoryTier interface {
	// Name identifies the tier in logs.
	Name() string

	// Load reads the whole document.
	Load(ctx context.Context) (entity.MemoryMap, error)

	// Save replaces the whole document.
	Save(ctx context.Context, memories entity.MemoryMap) error
}

// DeviceStorage is a string key/value store scoped to one user's device.
type DeviceStorage interface {
	// GetItem returns the stored value and whether the key exists.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem stores value under key, returning ErrQuotaExceeded when it is too large.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes the key. Missing keys are not an error.
	RemoveItem(ctx context.Context, key string) error
}

// QuoteRepository keeps at most one quote memory per place.
type QuoteRepository interface {
	// Get returns the quote for placeID, or nil when none was saved.
	Get(ctx context.Context, placeID string) (*entity.QuoteMemory, error)

	// Set replaces the quote for placeID.
	Set(ctx context.Context, placeID string, quote entity.QuoteMemory) error
}

// MemoryDocumentRepository stores the server-side copy of the memory document.
type MemoryDocumentRepository interface {
	// Read returns the stored document, or an empty map when none exists.
	Read(ctx context.Context) (entity.MemoryMap, error)

	// Replace overwrites the stored document.
	Replace(ctx context.Context, memories entity.MemoryMap) error
}
