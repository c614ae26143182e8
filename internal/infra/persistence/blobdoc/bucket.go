// Package blobdoc keeps whole JSON documents in a gocloud blob bucket.
package blobdoc

import (
	"context"

	"whatwashere/config"
	"whatwashere/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob" // registers mem://
)

// OpenBucket opens the configured bucket URL, or a directory bucket under Storage.Dir.
func OpenBucket(ctx context.Context, cfg *config.StorageConfig) (*blob.Bucket, error) {
	if cfg.BucketURL != "" {
		bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
		}

		return bucket, nil
	}

	bucket, err := fileblob.OpenBucket(cfg.Dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open directory bucket %s", cfg.Dir)
	}

	return bucket, nil
}
