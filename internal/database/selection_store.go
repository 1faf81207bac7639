package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// SelectionStore persists selection sets in PostgreSQL.
type SelectionStore struct {
	db *DB
}

// NewSelectionStore creates a new selection store
func NewSelectionStore(db *DB) *SelectionStore {
	return &SelectionStore{db: db}
}

// Get returns the ids stored for a profile slot. A missing row or a
// malformed payload reads as an empty set.
func (s *SelectionStore) Get(ctx context.Context, profileID, slot string) ([]string, error) {
	query := `SELECT ids FROM selection_sets WHERE profile_id = $1 AND slot = $2`

	var raw []byte
	err := s.db.QueryRowContext(ctx, query, profileID, slot).Scan(&raw)
	if err == sql.ErrNoRows {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get selection set: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return []string{}, nil
	}
	return ids, nil
}

// Put stores the ids for a profile slot, replacing any existing set.
func (s *SelectionStore) Put(ctx context.Context, profileID, slot string, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal selection set: %w", err)
	}

	query := `
		INSERT INTO selection_sets (profile_id, slot, ids, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (profile_id, slot)
		DO UPDATE SET ids = EXCLUDED.ids, updated_at = NOW()`

	if _, err := s.db.ExecContext(ctx, query, profileID, slot, raw); err != nil {
		return fmt.Errorf("failed to store selection set: %w", err)
	}
	return nil
}

// Delete removes the set stored for a profile slot.
func (s *SelectionStore) Delete(ctx context.Context, profileID, slot string) error {
	query := `DELETE FROM selection_sets WHERE profile_id = $1 AND slot = $2`

	if _, err := s.db.ExecContext(ctx, query, profileID, slot); err != nil {
		return fmt.Errorf("failed to delete selection set: %w", err)
	}
	return nil
}
