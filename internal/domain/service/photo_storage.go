package service

import (
	"context"

	"sakny/internal/errors"
)

// ErrObjectNotFound is returned by Delete when no object exists under the key.
var ErrObjectNotFound = errors.New("object not found")

// PhotoStorage is the gateway to the object store holding profile photos.
// The workflow layer decides object keys and validates files; the gateway
// only moves bytes and resolves URLs.
type PhotoStorage interface {
	// Upload writes the object under the given key and returns its public URL.
	Upload(ctx context.Context, data []byte, size int64, contentType, objectKey string) (string, error)

	// Delete removes the object under the given key.
	Delete(ctx context.Context, objectKey string) error

	// FileURL returns the public URL for an object key.
	FileURL(objectKey string) string

	// ObjectKeyFromURL extracts the object key from a public URL produced by
	// FileURL. It returns the empty string when the URL is empty or does not
	// contain the bucket segment.
	ObjectKeyFromURL(fileURL string) string
}
