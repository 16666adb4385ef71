package storage

import (
	"context"

	"github.com/Veraticus/lifedash/internal/model"
)

type snapshotWriter interface {
	Save(ctx context.Context, key string, snap model.Snapshot) error
}

// KeySaver writes every dashboard snapshot under one fixed key.
type KeySaver struct {
	storage snapshotWriter
	key     string
}

// NewKeySaver binds storage to key.
func NewKeySaver(storage snapshotWriter, key string) *KeySaver {
	if key == "" {
		key = DefaultKey
	}
	return &KeySaver{storage: storage, key: key}
}

// Save stores snap under the bound key.
func (k *KeySaver) Save(ctx context.Context, snap model.Snapshot) error {
	return k.storage.Save(ctx, k.key, snap)
}

// Key returns the bound key.
func (k *KeySaver) Key() string {
	return k.key
}
