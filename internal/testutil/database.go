// Package testutil provides shared test helpers: throwaway databases and a
// fluent builder for dashboard snapshots.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/lifedash/internal/model"
	"github.com/Veraticus/lifedash/internal/storage"
)

// TestDB is a migrated SQLite database that lives for one test.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
	Key     string
}

// TestDBOptions provides configuration options for test database setup.
type TestDBOptions struct {
	Snapshot       *model.Snapshot
	Key            string
	SkipMigrations bool
}

// SetupTestDB creates a migrated database in a temp directory.
// It is closed automatically when the test ends.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	return SetupTestDBWithOptions(t, TestDBOptions{})
}

// SetupTestDBWithOptions creates a test database with custom options.
//
// Example:
//
//	snap := testutil.NewSnapshotBuilder(t).WithStudyTask("DSA", "Graphs", 60, true).Build()
//	db := testutil.SetupTestDBWithOptions(t, testutil.TestDBOptions{Snapshot: &snap})
func SetupTestDBWithOptions(t *testing.T, opts TestDBOptions) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "lifedash.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if !opts.SkipMigrations {
		if err := store.Migrate(ctx); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
	}

	key := opts.Key
	if key == "" {
		key = storage.DefaultKey
	}

	if opts.Snapshot != nil {
		if err := store.Save(ctx, key, *opts.Snapshot); err != nil {
			t.Fatalf("failed to seed snapshot: %v", err)
		}
	}

	return &TestDB{Storage: store, Key: key, t: t}
}

// MustLoad returns the stored snapshot or fails the test.
func (db *TestDB) MustLoad() model.Snapshot {
	db.t.Helper()
	snap, err := db.Storage.Load(context.Background(), db.Key)
	if err != nil {
		db.t.Fatalf("failed to load snapshot %q: %v", db.Key, err)
	}
	return snap
}
