package tier

import (
	"context"
	"log/slog"

	"whatwashere/internal/domain/entity"
	"whatwashere/internal/domain/repository"
	"whatwashere/internal/errors"
)

// Chain tries each tier in order; the first one that succeeds wins.
type Chain struct {
	tiers  []repository.MemoryTier
	logger *slog.Logger
}

// NewChain creates a chain over tiers, highest priority first.
func NewChain(logger *slog.Logger, tiers ...repository.MemoryTier) *Chain {
	return &Chain{
		tiers:  tiers,
		logger: logger,
	}
}

// Name implements repository.MemoryTier.
func (c *Chain) Name() string {
	return "chain"
}

// Load returns the document from the first readable tier. When every tier
// fails it returns an empty map together with the joined errors.
func (c *Chain) Load(ctx context.Context) (entity.MemoryMap, error) {
	var errs []error
	for _, t := range c.tiers {
		memories, err := t.Load(ctx)
		if err == nil {
			if memories == nil {
				memories = entity.MemoryMap{}
			}

			return memories, nil
		}
		c.logger.DebugContext(ctx, "Memory tier load failed, trying next",
			slog.String("tier", t.Name()),
			slog.Any("error", err),
		)
		errs = append(errs, errors.Wrap(err, t.Name()))
	}

	return entity.MemoryMap{}, errors.Join(errs...)
}

// Save writes to the first tier that accepts the document.
func (c *Chain) Save(ctx context.Context, memories entity.MemoryMap) error {
	var errs []error
	for _, t := range c.tiers {
		err := t.Save(ctx, memories)
		if err == nil {
			return nil
		}
		c.logger.DebugContext(ctx, "Memory tier save failed, trying next",
			slog.String("tier", t.Name()),
			slog.Any("error", err),
		)
		errs = append(errs, errors.Wrap(err, t.Name()))
	}

	return errors.Join(errs...)
}
