package storage

import (
	"context"
	"time"
)

// ObjectInfo represents metadata for a remote object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	LastModified time.Time
	ContentType  string
	UserMetadata map[string]string
}

// ObjectStore captures the minimal S3-compatible operations the benchmark
// driver needs.
type ObjectStore interface {
	Upload(ctx context.Context, key, path string) (int64, error)
	Download(ctx context.Context, key, path string) error
	List(ctx context.Context, query string) ([]ObjectInfo, error)
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	Remove(ctx context.Context, key string) error
}
