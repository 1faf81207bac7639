package roulette

import "github.com/mohaak7/valorant-hub/internal/models"

// BuildPool derives the spin pool from the filtered candidates. Selection
// mode keeps only candidates whose item appears in the selection set,
// preserving candidate order. Any other mode passes the candidates through.
func BuildPool(candidates []models.PoolItem, mode models.RouletteMode, selection []string) []models.PoolItem {
	if mode != models.ModeSelection {
		return append([]models.PoolItem(nil), candidates...)
	}

	selected := make(map[string]struct{}, len(selection))
	for _, id := range selection {
		selected[id] = struct{}{}
	}

	pool := make([]models.PoolItem, 0, len(candidates))
	for _, item := range candidates {
		if _, ok := selected[item.UUID]; ok {
			pool = append(pool, item)
		}
	}
	return pool
}
