package pricing

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/mohaak7/valorant-hub/internal/logging"
	"github.com/mohaak7/valorant-hub/internal/models"
)

// Tracker serves the price-history display for a curated set of skins loaded
// from a JSON data file. A missing or corrupt file degrades to an empty list.
type Tracker struct {
	skins  []models.TrackedSkin
	bySlug map[string]models.TrackedSkin
	logger *logging.Logger
}

// NewTracker loads tracked skins from path. Load failures are logged and
// absorbed; the tracker always works, possibly over zero skins.
func NewTracker(path string, logger *logging.Logger) *Tracker {
	t := &Tracker{
		skins:  []models.TrackedSkin{},
		bySlug: make(map[string]models.TrackedSkin),
		logger: logger,
	}

	if path == "" {
		return t
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Price tracker data file unavailable", logging.WithFields(map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		}))
		return t
	}

	var skins []models.TrackedSkin
	if err := json.Unmarshal(data, &skins); err != nil {
		logger.Warn("Price tracker data file malformed", logging.WithFields(map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		}))
		return t
	}

	for _, s := range skins {
		if s.Slug == "" {
			continue
		}
		if _, dup := t.bySlug[s.Slug]; dup {
			continue
		}
		t.skins = append(t.skins, s)
		t.bySlug[s.Slug] = s
	}

	logger.Info("Loaded price tracker data", logging.WithField("skins", len(t.skins)))
	return t
}

// All returns every tracked skin in file order
func (t *Tracker) All() []models.TrackedSkin {
	return t.skins
}

// Top returns the first limit tracked skins (the data file leads with the
// most popular lines)
func (t *Tracker) Top(limit int) []models.TrackedSkin {
	if limit <= 0 {
		limit = 6
	}
	if limit > len(t.skins) {
		limit = len(t.skins)
	}
	return t.skins[:limit]
}

// BySlug looks up one tracked skin
func (t *Tracker) BySlug(slug string) (models.TrackedSkin, bool) {
	s, ok := t.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	return s, ok
}

// History returns a skin's price points sorted by date ascending
func (t *Tracker) History(slug string) []models.PricePoint {
	s, ok := t.BySlug(slug)
	if !ok {
		return nil
	}
	points := make([]models.PricePoint, len(s.PriceHistory))
	copy(points, s.PriceHistory)
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}
