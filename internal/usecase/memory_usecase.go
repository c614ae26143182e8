package usecase

import (
	"context"

	"whatwashere/internal/domain/entity"
)

// PhotoMemoryInput is a photo memory before it is stamped and stored.
type PhotoMemoryInput struct {
	ImageBase64 string `json:"imageBase64" validate:"required"`
	Caption     string `json:"caption" validate:"notblank"`
	Year        int    `json:"year" validate:"required,gte=1900"`
	Month       int    `json:"month" validate:"required,min=1,max=12"`
}

// MemoryUsecase manages a user's personal memories on the device.
type MemoryUsecase interface {
	// LoadMemories returns the whole document, empty when nothing is readable.
	LoadMemories(ctx context.Context) entity.MemoryMap

	// SaveMemories persists the whole document. Failures are logged, never returned.
	SaveMemories(ctx context.Context, memories entity.MemoryMap)

	// AddPhotoMemory validates, stamps and appends a memory. Only validation errors are returned.
	AddPhotoMemory(ctx context.Context, placeID string, input *PhotoMemoryInput) (*entity.PhotoMemory, error)

	// Timeline returns the memories of a place in display order.
	Timeline(ctx context.Context, placeID string) []entity.PhotoMemory

	// GetQuoteMemory returns the quote for a place, or nil.
	GetQuoteMemory(ctx context.Context, placeID string) *entity.QuoteMemory

	// SetQuoteMemory replaces the quote for a place. Storage failures are ignored.
	SetQuoteMemory(ctx context.Context, placeID, text, monthYear string)

	// ExportQuote renders a quote as a plain-text keepsake.
	ExportQuote(place *entity.Place, quote *entity.QuoteMemory) string
}

// MemoryDocumentUsecase serves the memory document held by the backing service.
type MemoryDocumentUsecase interface {
	// GetDocument returns the stored document, empty when missing or unreadable.
	GetDocument(ctx context.Context) entity.MemoryMap

	// ReplaceDocument overwrites the stored document.
	ReplaceDocument(ctx context.Context, memories entity.MemoryMap) error
}
