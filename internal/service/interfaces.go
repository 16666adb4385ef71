// Package service defines the interfaces shared between lifedash components.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/lifedash/internal/model"
)

// Revision is one past snapshot kept for recovery.
type Revision struct {
	SavedAt  time.Time
	Key      string
	Snapshot model.Snapshot
	ID       int64
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Snapshot operations
	Load(ctx context.Context, key string) (model.Snapshot, error)
	Save(ctx context.Context, key string, snap model.Snapshot) error
	Delete(ctx context.Context, key string) error

	// History
	History(ctx context.Context, key string, limit int) ([]Revision, error)
	Restore(ctx context.Context, key string, id int64) (model.Snapshot, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
