package storage

import (
	"context"
	"io"
	"time"
)

// ObjectStore is the object-storage collaborator: key-addressed blobs plus
// time-boxed signed URLs. The builder needs signed GET URLs that the external
// inference provider can fetch.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	List(ctx context.Context, prefix string) ([]string, error)
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	PresignPut(ctx context.Context, key string, expiry time.Duration) (string, error)
}
