package minio

import (
	"context"
	"fmt"
	"time"

	"isp-dashboard/config"
	"isp-dashboard/pkg/log"
	pkgMinio "isp-dashboard/pkg/minio"
)

const (
	attemptTimeout = 5 * time.Second
	defaultRetries = 3
)

// Connect builds the attachment store and makes sure its bucket exists,
// backing off exponentially between failed attempts.
func Connect(ctx context.Context, l log.Logger, cfg config.MinIOConfig, maxRetries int) (pkgMinio.MinIO, error) {
	if maxRetries <= 0 {
		maxRetries = defaultRetries
	}

	store, err := pkgMinio.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("minio: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = ensureBucket(ctx, store)
		if lastErr == nil {
			return store, nil
		}
		if attempt == maxRetries {
			break
		}

		backoff := time.Duration(1<<(attempt-1)) * time.Second
		l.Warnf(ctx, "config.minio.Connect: attempt %d/%d to %s failed, retrying in %s: %v",
			attempt, maxRetries, cfg.Endpoint, backoff, lastErr)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("minio: bucket %s unreachable after %d attempts: %w", cfg.Bucket, maxRetries, lastErr)
}

func ensureBucket(ctx context.Context, store pkgMinio.MinIO) error {
	ctx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()
	return store.EnsureBucket(ctx)
}
