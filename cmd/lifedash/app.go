package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/lifedash/internal/common"
	"github.com/Veraticus/lifedash/internal/config"
	"github.com/Veraticus/lifedash/internal/dashboard"
	"github.com/Veraticus/lifedash/internal/intent"
	"github.com/Veraticus/lifedash/internal/llm"
	"github.com/Veraticus/lifedash/internal/storage"
	"github.com/spf13/viper"
)

const dateLayout = "2006-01-02"

// app bundles what most commands need: configuration, the database and
// the dashboard loaded from it.
type app struct {
	storage *storage.SQLiteStorage
	store   *dashboard.Store
	cfg     config.Config
	key     string
}

// openApp loads configuration, opens and migrates the database, and loads
// the dashboard stored under the configured key. A missing dashboard
// starts fresh.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	st, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	key := cfg.Storage.Key
	opts := []dashboard.Option{dashboard.WithSaver(storage.NewKeySaver(st, key))}

	snap, err := st.Load(ctx, key)
	switch {
	case err == nil:
		opts = append(opts, dashboard.WithSnapshot(snap))
	case errors.Is(err, common.ErrNotFound):
		slog.Debug("no stored dashboard, starting fresh", "key", key)
	default:
		_ = st.Close()
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	return &app{
		storage: st,
		store:   dashboard.New(opts...),
		cfg:     cfg,
		key:     key,
	}, nil
}

func openStorage(ctx context.Context, cfg config.Config) (*storage.SQLiteStorage, error) {
	st, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	st.SetHistoryLimit(cfg.Storage.HistoryLimit)

	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return st, nil
}

func (a *app) Close() {
	if err := a.storage.Close(); err != nil {
		slog.Warn("Failed to close database", "error", err)
	}
}

// newClassifier builds the hybrid classifier. The remote side is only
// wired when llm.enabled is set; the returned func releases it.
func newClassifier(cfg config.Config) (*intent.Hybrid, func()) {
	if !cfg.LLM.Enabled {
		return intent.NewHybrid(intent.Default(), nil, slog.Default()), func() {}
	}

	remote, err := llm.NewClassifier(cfg.LLMClientConfig(), slog.Default())
	if err != nil {
		slog.Warn("Remote classifier unavailable, using keywords only", "error", err)
		return intent.NewHybrid(intent.Default(), nil, slog.Default()), func() {}
	}
	return intent.NewHybrid(intent.Default(), remote, slog.Default()), remote.Close
}

// parseDate accepts YYYY-MM-DD, "today" and "yesterday". Empty means zero.
func parseDate(s string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return time.Time{}, nil
	case "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}

	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), now.Location())
	if err != nil {
		return time.Time{}, common.NewUserError(fmt.Sprintf("invalid date %q (want YYYY-MM-DD)", s), err)
	}
	return t, nil
}

// notFound reports a missing record by id.
func notFound(kind, id string) error {
	return common.NewUserError(fmt.Sprintf("no %s with id %q", kind, id), common.ErrNotFound)
}

// resolveID finds the id equal to ref, or the only id starting with it.
func resolveID(ref string, ids []string) (string, bool) {
	var match string
	count := 0
	for _, id := range ids {
		if id == ref {
			return id, true
		}
		if strings.HasPrefix(id, ref) {
			match = id
			count++
		}
	}
	return match, count == 1 && ref != ""
}

// shortID trims ids for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
