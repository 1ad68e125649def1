package storage

import (
	"context"
	"errors"
	"io"
)

var ErrBlobNotFound = errors.New("blob not found")

// BlobStore keeps file bytes under opaque keys.
type BlobStore interface {
	// Save writes data under key and returns the number of bytes written.
	Save(ctx context.Context, key string, data io.Reader) (int64, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes key. Backends able to tell report a missing key as
	// ErrBlobNotFound.
	Delete(ctx context.Context, key string) error
	Copy(ctx context.Context, srcKey, dstKey string) error
}
