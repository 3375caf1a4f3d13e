// Package metadata stores small key/value records of the local client
// database: the persisted session and user preferences.
package metadata

import (
	"context"
	"time"
)

// Entry is one stored value with the time it was last written.
type Entry struct {
	Value     []byte
	UpdatedAt time.Time
}

// Repository is a key/value store. Get and GetEntry return (nil, nil) for
// absent keys.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetEntry(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
