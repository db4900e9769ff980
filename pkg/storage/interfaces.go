package storage

import (
	"context"
	"io"
)

// Object describes a stored file.
type Object struct {
	Key         string
	ContentType string
	Size        int64
}

type ObjectStorage interface {
	// Put stores the reader under key. It must not overwrite an existing key.
	Put(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) error
	// List returns objects whose key starts with prefix, sorted by key.
	List(ctx context.Context, prefix string) ([]Object, error)
	// PublicURL returns the URL a browser can load key from.
	PublicURL(key string) string
}
