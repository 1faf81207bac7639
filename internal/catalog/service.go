package catalog

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mohaak7/valorant-hub/internal/cache"
	"github.com/mohaak7/valorant-hub/internal/logging"
	"github.com/mohaak7/valorant-hub/internal/models"
)

const (
	snapshotCacheKey = "catalog_snapshot"
	snapshotCacheTTL = 36 * time.Hour
)

// Fetcher is the upstream catalog client surface the service depends on
type Fetcher interface {
	Agents(ctx context.Context) ([]models.Agent, error)
	Weapons(ctx context.Context) ([]models.Weapon, error)
	Bundles(ctx context.Context) ([]models.Bundle, error)
	ContentTiers(ctx context.Context) ([]models.ContentTier, error)
	Themes(ctx context.Context) ([]models.Theme, error)
}

// Snapshot is one immutable fetch of the whole catalog. A refresh replaces
// the snapshot wholesale; entities inside are never mutated.
type Snapshot struct {
	Agents    []models.Agent       `json:"agents"`
	Weapons   []models.Weapon      `json:"weapons"`
	Bundles   []models.Bundle      `json:"bundles"`
	Tiers     []models.ContentTier `json:"tiers"`
	Themes    []models.Theme       `json:"themes"`
	FetchedAt time.Time            `json:"fetchedAt"`
}

// Service fetches and normalizes the remote catalog into filterable
// in-memory collections. Every upstream failure degrades to an empty
// collection; nothing here surfaces an error to the rendering layer.
type Service struct {
	fetcher Fetcher
	cache   cache.Cache
	logger  *logging.Logger
	mu      sync.RWMutex
	snap    Snapshot
}

// New creates a catalog service
func New(fetcher Fetcher, c cache.Cache, logger *logging.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   c,
		logger:  logger,
	}
}

type fetchResult struct {
	name string
	err  error
	set  func(*Snapshot)
}

// Refresh fetches all five catalog endpoint groups concurrently and swaps in
// a new snapshot. Individual failures are logged and leave that collection
// empty rather than failing the refresh.
func (s *Service) Refresh(ctx context.Context) error {
	next := Snapshot{FetchedAt: time.Now()}

	var wg sync.WaitGroup
	results := make(chan fetchResult, 5)

	fetches := []struct {
		name string
		run  func() fetchResult
	}{
		{"agents", func() fetchResult {
			agents, err := s.fetcher.Agents(ctx)
			return fetchResult{name: "agents", err: err, set: func(sn *Snapshot) { sn.Agents = agents }}
		}},
		{"weapons", func() fetchResult {
			weapons, err := s.fetcher.Weapons(ctx)
			return fetchResult{name: "weapons", err: err, set: func(sn *Snapshot) { sn.Weapons = weapons }}
		}},
		{"bundles", func() fetchResult {
			bundles, err := s.fetcher.Bundles(ctx)
			return fetchResult{name: "bundles", err: err, set: func(sn *Snapshot) { sn.Bundles = bundles }}
		}},
		{"tiers", func() fetchResult {
			tiers, err := s.fetcher.ContentTiers(ctx)
			return fetchResult{name: "tiers", err: err, set: func(sn *Snapshot) { sn.Tiers = tiers }}
		}},
		{"themes", func() fetchResult {
			themes, err := s.fetcher.Themes(ctx)
			return fetchResult{name: "themes", err: err, set: func(sn *Snapshot) { sn.Themes = themes }}
		}},
	}

	for _, f := range fetches {
		wg.Add(1)
		go func(run func() fetchResult) {
			defer wg.Done()
			results <- run()
		}(f.run)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		if result.err != nil {
			s.logger.Warn("Failed to fetch catalog collection", logging.WithFields(map[string]interface{}{
				"collection": result.name,
				"error":      result.err.Error(),
			}))
			continue
		}
		result.set(&next)
	}

	s.logger.Info("Catalog refresh complete", logging.WithFields(map[string]interface{}{
		"agents":  len(next.Agents),
		"weapons": len(next.Weapons),
		"bundles": len(next.Bundles),
		"tiers":   len(next.Tiers),
		"themes":  len(next.Themes),
	}))

	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()

	if s.cache != nil {
		s.cache.SetWithTTL(snapshotCacheKey, next, snapshotCacheTTL)
	}

	return nil
}

// snapshot returns the current snapshot, warming from cache when the
// in-memory copy is empty (fresh process, catalog API down)
func (s *Service) snapshot() Snapshot {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	if !snap.FetchedAt.IsZero() {
		return snap
	}

	if cached, ok := s.loadSnapshotFromCache(); ok {
		s.mu.Lock()
		if s.snap.FetchedAt.IsZero() {
			s.snap = cached
		}
		snap = s.snap
		s.mu.Unlock()
	}

	return snap
}

func (s *Service) loadSnapshotFromCache() (Snapshot, bool) {
	if s.cache == nil {
		return Snapshot{}, false
	}

	cached, ok := s.cache.Get(snapshotCacheKey)
	if !ok || cached == nil {
		return Snapshot{}, false
	}

	if snap, ok := cached.(Snapshot); ok {
		return snap, true
	}

	// Redis round-trips the snapshot as generic JSON
	raw, err := json.Marshal(cached)
	if err != nil {
		return Snapshot{}, false
	}
	var decoded Snapshot
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Snapshot{}, false
	}
	if decoded.FetchedAt.IsZero() {
		return Snapshot{}, false
	}
	return decoded, true
}

// PlayableAgents returns all playable agents in catalog order
func (s *Service) PlayableAgents() []models.Agent {
	snap := s.snapshot()
	agents := make([]models.Agent, 0, len(snap.Agents))
	for _, a := range snap.Agents {
		if !a.IsPlayableCharacter {
			continue
		}
		agents = append(agents, a)
	}
	return agents
}

// AgentsByRole returns playable agents whose role display name exactly
// matches role; empty role (or "All") returns everyone
func (s *Service) AgentsByRole(role string) []models.Agent {
	agents := s.PlayableAgents()
	if role == "" || strings.EqualFold(role, "All") {
		return agents
	}
	filtered := make([]models.Agent, 0, len(agents))
	for _, a := range agents {
		if a.Role != nil && a.Role.DisplayName == role {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// ContentTiers returns tiers sorted by display rank
func (s *Service) ContentTiers() []models.ContentTier {
	snap := s.snapshot()
	tiers := make([]models.ContentTier, len(snap.Tiers))
	copy(tiers, snap.Tiers)
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].Rank < tiers[j].Rank
	})
	return tiers
}

// Weapons returns the raw weapon list in catalog order
func (s *Service) Weapons() []models.Weapon {
	return s.snapshot().Weapons
}

// LastFetchedAt reports when the current snapshot was taken (zero before the
// first successful refresh)
func (s *Service) LastFetchedAt() time.Time {
	return s.snapshot().FetchedAt
}
