// Package storage provides snapshot backends for the translation cache.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates that no snapshot has been written yet.
// Loading a fresh backend returns it; callers start from an empty cache.
var ErrNotFound = errors.New("storage: snapshot not found")

// Store persists an opaque snapshot blob.
type Store interface {
	// Load reads the last saved snapshot. Returns ErrNotFound when no
	// snapshot exists.
	Load(ctx context.Context) ([]byte, error)

	// Save durably writes a snapshot, replacing any previous one.
	Save(ctx context.Context, data []byte) error

	// Name identifies the backend for logging.
	Name() string
}
