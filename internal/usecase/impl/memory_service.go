package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"whatwashere/internal/domain/entity"
	domainerrors "whatwashere/internal/domain/errors"
	"whatwashere/internal/domain/repository"
	"whatwashere/internal/usecase"
	"whatwashere/internal/util"
	"whatwashere/internal/validator"

	"github.com/google/uuid"
)

type memoryService struct {
	tier     repository.MemoryTier
	quotes   repository.QuoteRepository
	validate *validator.Validator
	logger   *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewMemoryService creates the personal memory service over a memory tier
// (usually a fallback chain) and the device quote store.
func NewMemoryService(
	tier repository.MemoryTier,
	quotes repository.QuoteRepository,
	validate *validator.Validator,
	logger *slog.Logger,
) usecase.MemoryUsecase {
	return &memoryService{
		tier:     tier,
		quotes:   quotes,
		validate: validate,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (s *memoryService) LoadMemories(ctx context.Context) entity.MemoryMap {
	memories, err := s.tier.Load(ctx)
	if err != nil {
		s.logger.DebugContext(ctx, "Memories unavailable, using empty document", slog.Any("error", err))
	}
	if memories == nil {
		memories = entity.MemoryMap{}
	}

	return memories
}

func (s *memoryService) SaveMemories(ctx context.Context, memories entity.MemoryMap) {
	if err := s.tier.Save(ctx, memories); err != nil {
		s.logger.WarnContext(ctx, "Failed to save memories", slog.Any("error", err))
	}
}

func (s *memoryService) AddPhotoMemory(ctx context.Context, placeID string, input *usecase.PhotoMemoryInput) (*entity.PhotoMemory, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("placeId is required")
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("memory input is required")
	}
	if err := s.validate.Validate(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	now := s.now()
	if input.Year > now.Year()+1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("year is in the future")
	}

	memory := entity.PhotoMemory{
		ID:          s.newID(),
		PlaceID:     placeID,
		ImageBase64: input.ImageBase64,
		Caption:     util.TruncateRunes(strings.TrimSpace(input.Caption), entity.MaxCaptionLength),
		Year:        input.Year,
		Month:       input.Month,
		CreatedAt:   now.UnixMilli(),
	}

	memories := s.LoadMemories(ctx)
	memories[placeID] = append(memories[placeID], memory)
	s.SaveMemories(ctx, memories)

	return &memory, nil
}

func (s *memoryService) Timeline(ctx context.Context, placeID string) []entity.PhotoMemory {
	return entity.SortPhotoMemories(s.LoadMemories(ctx)[placeID])
}

func (s *memoryService) GetQuoteMemory(ctx context.Context, placeID string) *entity.QuoteMemory {
	quote, err := s.quotes.Get(ctx, placeID)
	if err != nil {
		s.logger.DebugContext(ctx, "Quote unreadable", slog.String("place_id", placeID), slog.Any("error", err))

		return nil
	}

	return quote
}

func (s *memoryService) SetQuoteMemory(ctx context.Context, placeID, text, monthYear string) {
	savedAt := s.now().UTC()
	quote := entity.QuoteMemory{
		Memory:    util.TruncateRunes(text, entity.MaxQuoteLength),
		MonthYear: strings.TrimSpace(monthYear),
		SavedAt:   &savedAt,
	}

	if err := s.quotes.Set(ctx, placeID, quote); err != nil {
		s.logger.DebugContext(ctx, "Quote not saved", slog.String("place_id", placeID), slog.Any("error", err))
	}
}

// ExportQuote renders the plain-text keepsake for a quote.
func (s *memoryService) ExportQuote(place *entity.Place, quote *entity.QuoteMemory) string {
	lines := []string{"What Was Here — Personal Memory", ""}

	if place != nil {
		lines = append(lines, "Place: "+place.Name)
		location := strings.TrimSpace(place.City)
		if location == "" {
			location = strings.TrimSpace(place.FullAddress)
		}
		if location != "" {
			lines = append(lines, "Location: "+location)
		}
	}
	if quote != nil && quote.MonthYear != "" {
		lines = append(lines, "When: "+quote.MonthYear)
	}

	text := ""
	if quote != nil {
		text = strings.TrimSpace(quote.Memory)
	}
	if text == "" {
		text = "(no text)"
	}

	lines = append(lines, "", "Quote:", text, "", "Saved locally on: "+s.now().Format(time.DateOnly))

	return strings.Join(lines, "\n")
}
