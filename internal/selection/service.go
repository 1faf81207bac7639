package selection

import (
	"context"

	"github.com/mohaak7/valorant-hub/internal/logging"
)

// Slot names the two logical selection sets a profile carries
const (
	// SlotPool holds the skins a profile wants in its roulette draw
	SlotPool = "pool"
	// SlotOwned holds the profile's owned-inventory set
	SlotOwned = "owned"

	// legacyOwnedSlot is the pre-rename storage slot for the owned set.
	// It is migrated into SlotOwned on first read and then dropped.
	legacyOwnedSlot = "owned-skins"
)

// Store is the persistence surface for selection sets. Get returns an empty
// slice for missing or unreadable sets.
type Store interface {
	Get(ctx context.Context, profileID, slot string) ([]string, error)
	Put(ctx context.Context, profileID, slot string, ids []string) error
	Delete(ctx context.Context, profileID, slot string) error
}

// Service manages deduplicated per-profile selection sets. Reads never fail:
// any storage or parsing problem degrades to an empty set. Writes report
// their error so callers never observe state that did not persist.
type Service struct {
	store  Store
	logger *logging.Logger
}

// NewService creates a selection service over the given store
func NewService(store Store, logger *logging.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Members returns the deduplicated member list for a profile's slot.
// The first read of the owned slot merges and retires the legacy slot.
func (s *Service) Members(ctx context.Context, profileID, slot string) []string {
	ids, err := s.store.Get(ctx, profileID, slot)
	if err != nil {
		s.logger.Warn("Selection read failed, treating as empty", logging.WithFields(map[string]interface{}{
			"profile": profileID,
			"slot":    slot,
			"error":   err.Error(),
		}))
		ids = nil
	}

	if slot == SlotOwned {
		ids = s.migrateLegacy(ctx, profileID, ids)
	}

	return dedupe(ids)
}

// migrateLegacy folds the legacy owned-skins slot into the canonical one,
// then deletes the legacy slot so it is read at most once per profile.
func (s *Service) migrateLegacy(ctx context.Context, profileID string, current []string) []string {
	legacy, err := s.store.Get(ctx, profileID, legacyOwnedSlot)
	if err != nil || len(legacy) == 0 {
		return current
	}

	merged := dedupe(append(current, legacy...))
	if err := s.store.Put(ctx, profileID, SlotOwned, merged); err != nil {
		s.logger.Warn("Legacy selection migration write failed", logging.WithFields(map[string]interface{}{
			"profile": profileID,
			"error":   err.Error(),
		}))
		// Leave the legacy slot in place so the next read retries
		return merged
	}
	if err := s.store.Delete(ctx, profileID, legacyOwnedSlot); err != nil {
		s.logger.Warn("Failed to drop legacy selection slot", logging.WithFields(map[string]interface{}{
			"profile": profileID,
			"error":   err.Error(),
		}))
	}

	s.logger.Info("Migrated legacy selection slot", logging.WithFields(map[string]interface{}{
		"profile": profileID,
		"merged":  len(merged),
	}))
	return merged
}

// IsMember reports whether id is in the profile's slot. Never fails.
func (s *Service) IsMember(ctx context.Context, profileID, slot, id string) bool {
	for _, member := range s.Members(ctx, profileID, slot) {
		if member == id {
			return true
		}
	}
	return false
}

// Toggle flips id's membership and returns the resulting member list.
// The in-memory result is only updated when persistence succeeds.
func (s *Service) Toggle(ctx context.Context, profileID, slot, id string) ([]string, error) {
	members := s.Members(ctx, profileID, slot)

	next := make([]string, 0, len(members)+1)
	removed := false
	for _, member := range members {
		if member == id {
			removed = true
			continue
		}
		next = append(next, member)
	}
	if !removed {
		next = append(next, id)
	}

	if err := s.store.Put(ctx, profileID, slot, next); err != nil {
		return members, err
	}
	return next, nil
}

// ReplaceAll overwrites the slot with exactly the deduplicated input ids
func (s *Service) ReplaceAll(ctx context.Context, profileID, slot string, ids []string) ([]string, error) {
	next := dedupe(ids)
	if err := s.store.Put(ctx, profileID, slot, next); err != nil {
		return s.Members(ctx, profileID, slot), err
	}
	return next, nil
}

// ClearSubset removes only the ids present in candidateIDs, preserving every
// other stored identifier. This is a partial clear, not a reset.
func (s *Service) ClearSubset(ctx context.Context, profileID, slot string, candidateIDs []string) ([]string, error) {
	members := s.Members(ctx, profileID, slot)

	candidates := make(map[string]bool, len(candidateIDs))
	for _, id := range candidateIDs {
		candidates[id] = true
	}

	next := make([]string, 0, len(members))
	for _, member := range members {
		if candidates[member] {
			continue
		}
		next = append(next, member)
	}

	if err := s.store.Put(ctx, profileID, slot, next); err != nil {
		return members, err
	}
	return next, nil
}

// dedupe removes duplicate ids preserving first-occurrence order
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
