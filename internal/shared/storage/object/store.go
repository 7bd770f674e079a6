package object

import (
	"context"
	"io"
)

// Store reads and writes catalog files by key.
type Store interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	SaveWithKey(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
}
