package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound reports a key with no stored blob. Any other error from a
// BlobStore is a backend failure.
var ErrNotFound = errors.New("blob not found")

// Object is a stored blob opened for reading. The caller owns Body and
// must close it.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// BlobStore is the gateway's view of durable object storage.
// Implementations must stream: Put consumes body without materializing
// the payload, Get hands back a reader rather than a byte slice.
type BlobStore interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Get(ctx context.Context, key string) (*Object, error)
	List(ctx context.Context) ([]string, error)
}
