package progress

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// StorageKey is the single namespaced key under which the whole
// topic → record mapping is stored, serialized as one JSON document.
const StorageKey = "dsat-progress"

// Store is the durable progress service handed to the session
// controller. Absence is an expected state, not an error: a topic with
// no saved record simply loads defaults.
type Store interface {
	Load(ctx context.Context, topicID string) (Record, bool)
	Save(ctx context.Context, topicID string, rec Record) error
	Delete(ctx context.Context, topicID string) error
}

// SQLiteStore implements Store on the storage table opened by Open.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewStore creates a Store backed by db.
func NewStore(db *DB) *SQLiteStore {
	return &SQLiteStore{db: db.SQL()}
}

// Load returns the saved record for a topic. Missing, corrupt, or
// unreadable stored data all report absent; corruption is logged.
func (s *SQLiteStore) Load(ctx context.Context, topicID string) (Record, bool) {
	all := s.readAll(ctx)
	rec, ok := all[topicID]
	return rec, ok
}

// Save replaces the topic's entire entry in the stored mapping.
func (s *SQLiteStore) Save(ctx context.Context, topicID string, rec Record) error {
	all := s.readAll(ctx)
	all[topicID] = rec
	return s.writeAll(ctx, all)
}

// Delete removes the topic's key from the stored mapping entirely.
func (s *SQLiteStore) Delete(ctx context.Context, topicID string) error {
	all := s.readAll(ctx)
	delete(all, topicID)
	return s.writeAll(ctx, all)
}

// readAll loads and decodes the whole mapping. Any failure degrades to
// an empty mapping so callers fall back to defaults.
func (s *SQLiteStore) readAll(ctx context.Context) map[string]Record {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM storage WHERE key = ?", StorageKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return map[string]Record{}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: read progress: %v\n", err)
		return map[string]Record{}
	}

	var all map[string]Record
	if err := json.Unmarshal([]byte(raw), &all); err != nil {
		fmt.Fprintf(os.Stderr, "warning: corrupt progress data, starting fresh: %v\n", err)
		return map[string]Record{}
	}
	if all == nil {
		all = map[string]Record{}
	}
	return all
}

func (s *SQLiteStore) writeAll(ctx context.Context, all map[string]Record) error {
	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO storage (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		StorageKey, string(raw),
	)
	if err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}
