package publish

import (
	"context"
	"errors"
	"io"
)

// ErrTooLarge is returned when a rendered page exceeds the store's size
// limit.
var ErrTooLarge = errors.New("publish: page too large")

// ErrBadKey is returned when a snapshot key would escape the store root.
var ErrBadKey = errors.New("publish: invalid key")

// Store is the destination for published snapshots.
// Implement this interface to publish to GCS, a CDN, or other storage.
type Store interface {
	// Save writes one snapshot under the given key.
	Save(ctx context.Context, key, contentType string, r io.Reader) error

	// URL returns where the snapshot is reachable, for logs and CLI
	// output.
	URL(key string) string
}
