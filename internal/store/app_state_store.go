package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// The four documents the application persists. Each lives under its own
// namespaced key in the app_state table as JSON text.
const (
	KeyTeams       = "teams"
	KeyGames       = "games"
	KeySettings    = "settings"
	KeyCurrentGame = "current-game"
)

const keyPrefix = "scorebug:"

// AppStateStore is the persistence adapter: whole-document JSON blobs keyed
// by name. Durability is best-effort; callers decide whether a failed write
// is fatal.
type AppStateStore struct {
	db *sqlx.DB
}

func NewAppStateStore(db *sqlx.DB) *AppStateStore {
	return &AppStateStore{db: db}
}

// Save serializes v and upserts it under key.
func (s *AppStateStore) Save(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		keyPrefix+key, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Delete removes key entirely. Deleting an absent key is not an error.
func (s *AppStateStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM app_state WHERE key = ?", keyPrefix+key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Load reads and deserializes the document under key into fallback's type.
// A missing key or corrupt document yields fallback, not an error: corrupt
// data is logged and discarded so a bad write can never brick the app. The
// returned error covers storage-level read failures only.
func Load[T any](ctx context.Context, s *AppStateStore, key string, fallback T) (T, error) {
	var raw string
	err := s.db.GetContext(ctx, &raw, "SELECT value FROM app_state WHERE key = ?", keyPrefix+key)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback, nil
	}
	if err != nil {
		return fallback, fmt.Errorf("read %s: %w", key, err)
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		slog.Warn("discarding corrupt persisted state", "key", key, "error", err)
		return fallback, nil
	}
	return v, nil
}
