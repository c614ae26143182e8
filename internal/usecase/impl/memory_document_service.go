package impl

import (
	"context"
	"log/slog"

	"whatwashere/internal/domain/entity"
	domainerrors "whatwashere/internal/domain/errors"
	"whatwashere/internal/domain/repository"
	"whatwashere/internal/usecase"
)

type memoryDocumentService struct {
	repo   repository.MemoryDocumentRepository
	logger *slog.Logger
}

// NewMemoryDocumentService creates the server-side memory document service.
func NewMemoryDocumentService(repo repository.MemoryDocumentRepository, logger *slog.Logger) usecase.MemoryDocumentUsecase {
	return &memoryDocumentService{
		repo:   repo,
		logger: logger,
	}
}

func (s *memoryDocumentService) GetDocument(ctx context.Context) entity.MemoryMap {
	memories, err := s.repo.Read(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "Memory document unreadable, serving empty document", slog.Any("error", err))

		return entity.MemoryMap{}
	}

	return memories
}

func (s *memoryDocumentService) ReplaceDocument(ctx context.Context, memories entity.MemoryMap) error {
	if memories == nil {
		return domainerrors.ErrMemoryDocumentInvalid
	}

	if err := s.repo.Replace(ctx, memories); err != nil {
		s.logger.ErrorContext(ctx, "Failed to write memory document", slog.Any("error", err))

		return domainerrors.ErrMemoryDocumentWrite
	}

	return nil
}
