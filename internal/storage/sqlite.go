package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/lifedash/internal/common"
	"github.com/Veraticus/lifedash/internal/model"
	"github.com/Veraticus/lifedash/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// DefaultKey is the key the dashboard snapshot is stored under.
const DefaultKey = "ai-life-dashboard-storage"

// DefaultHistoryLimit is how many past snapshots are kept per key.
const DefaultHistoryLimit = 20

// SQLiteStorage implements service.Storage on a SQLite key/value table.
type SQLiteStorage struct {
	db           *sql.DB
	now          func() time.Time
	dbPath       string
	historyLimit int
}

var _ service.Storage = (*SQLiteStorage)(nil)

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:           db,
		dbPath:       dbPath,
		now:          time.Now,
		historyLimit: DefaultHistoryLimit,
	}, nil
}

// SetHistoryLimit changes how many past snapshots are kept per key.
func (s *SQLiteStorage) SetHistoryLimit(n int) {
	if n > 0 {
		s.historyLimit = n
	}
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Load reads the snapshot stored under key.
// A missing key returns an error wrapping common.ErrNotFound.
func (s *SQLiteStorage) Load(ctx context.Context, key string) (model.Snapshot, error) {
	if err := validateContext(ctx); err != nil {
		return model.Snapshot{}, err
	}
	if err := validateString(key, "key"); err != nil {
		return model.Snapshot{}, err
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Snapshot{}, fmt.Errorf("snapshot %q: %w", key, common.ErrNotFound)
	}
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to load snapshot %q: %w", key, err)
	}

	return decodeSnapshot(key, value)
}

// Save stores snap under key and records it in the key's history.
func (s *SQLiteStorage) Save(ctx context.Context, key string, snap model.Snapshot) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}
	if err := validateSnapshot(snap); err != nil {
		return err
	}

	payload, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := s.saveTx(ctx, tx, key, payload); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot %q: %w", key, err)
	}

	slog.Debug("Saved snapshot", "key", key, "bytes", len(payload))
	return nil
}

func (s *SQLiteStorage) saveTx(ctx context.Context, tx *sql.Tx, key, payload string) error {
	savedAt := s.now().UTC()

	_, err := tx.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, payload, savedAt)
	if err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshot_history (key, value, saved_at) VALUES (?, ?, ?)`,
		key, payload, savedAt)
	if err != nil {
		return fmt.Errorf("failed to record snapshot history: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM snapshot_history
		WHERE key = ? AND id NOT IN (
			SELECT id FROM snapshot_history WHERE key = ? ORDER BY id DESC LIMIT ?
		)
	`, key, key, s.historyLimit)
	if err != nil {
		return fmt.Errorf("failed to prune snapshot history: %w", err)
	}
	return nil
}

// History returns up to limit past snapshots for key, newest first.
func (s *SQLiteStorage) History(ctx context.Context, key string, limit int) ([]service.Revision, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(key, "key"); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, value, saved_at FROM snapshot_history
		WHERE key = ? ORDER BY id DESC LIMIT ?
	`, key, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var revisions []service.Revision
	for rows.Next() {
		var (
			rev   service.Revision
			value string
		)
		if err := rows.Scan(&rev.ID, &value, &rev.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot history: %w", err)
		}
		snap, err := decodeSnapshot(key, value)
		if err != nil {
			return nil, err
		}
		rev.Key = key
		rev.Snapshot = snap
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshot history: %w", err)
	}
	return revisions, nil
}

// Restore makes the history entry id the current snapshot for key.
// The restored snapshot is saved like any other, so it enters the history too.
func (s *SQLiteStorage) Restore(ctx context.Context, key string, id int64) (model.Snapshot, error) {
	if err := validateContext(ctx); err != nil {
		return model.Snapshot{}, err
	}
	if err := validateString(key, "key"); err != nil {
		return model.Snapshot{}, err
	}

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM snapshot_history WHERE key = ? AND id = ?`, key, id).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Snapshot{}, fmt.Errorf("history entry %d for %q: %w", id, key, common.ErrNotFound)
	}
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to load history entry %d: %w", id, err)
	}

	snap, err := decodeSnapshot(key, value)
	if err != nil {
		return model.Snapshot{}, err
	}
	if err := s.Save(ctx, key, snap); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}

// Delete removes key and its history. Deleting a missing key is not an error.
func (s *SQLiteStorage) Delete(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	for _, query := range []string{
		`DELETE FROM kv WHERE key = ?`,
		`DELETE FROM snapshot_history WHERE key = ?`,
	} {
		if _, err := tx.ExecContext(ctx, query, key); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to delete snapshot %q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete of %q: %w", key, err)
	}
	return nil
}
