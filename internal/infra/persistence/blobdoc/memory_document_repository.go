package blobdoc

import (
	"context"
	"encoding/json"
	"log/slog"

	"whatwashere/internal/domain/entity"
	"whatwashere/internal/domain/repository"
	"whatwashere/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

type memoryDocumentRepository struct {
	bucket *blob.Bucket
	key    string
	logger *slog.Logger
}

// NewMemoryDocumentRepository stores the memory document as one object under key.
func NewMemoryDocumentRepository(bucket *blob.Bucket, key string, logger *slog.Logger) repository.MemoryDocumentRepository {
	return &memoryDocumentRepository{
		bucket: bucket,
		key:    key,
		logger: logger,
	}
}

func (r *memoryDocumentRepository) Read(ctx context.Context) (entity.MemoryMap, error) {
	data, err := r.bucket.ReadAll(ctx, r.key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		r.logger.DebugContext(ctx, "Memory document not found, starting empty", slog.String("key", r.key))

		return entity.MemoryMap{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read memory document %s", r.key)
	}

	return entity.DecodeMemoryMap(data)
}

func (r *memoryDocumentRepository) Replace(ctx context.Context, memories entity.MemoryMap) error {
	if memories == nil {
		memories = entity.MemoryMap{}
	}

	data, err := json.MarshalIndent(memories, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	err = r.bucket.WriteAll(ctx, r.key, data, &blob.WriterOptions{ContentType: "application/json"})

	return errors.Wrapf(err, "write memory document %s", r.key)
}
