package storage

import (
	"encoding/json"
	"fmt"

	"github.com/Veraticus/lifedash/internal/common"
	"github.com/Veraticus/lifedash/internal/model"
)

// Snapshots are stored as compact JSON. time.Time encodes as RFC 3339 with
// its zone offset, so the calendar day of every date survives a round trip.

func encodeSnapshot(snap model.Snapshot) (string, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return string(data), nil
}

func decodeSnapshot(key, value string) (model.Snapshot, error) {
	var snap model.Snapshot
	if err := json.Unmarshal([]byte(value), &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: snapshot %q: %w", common.ErrDatabaseCorrupted, key, err)
	}
	if err := validateSnapshot(snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("snapshot %q: %w", key, err)
	}
	return snap, nil
}
