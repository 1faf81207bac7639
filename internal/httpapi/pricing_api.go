package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/mohaak7/valorant-hub/internal/logging"
	"github.com/mohaak7/valorant-hub/internal/pricing"
)

// PricingAPI handles HTTP API requests for tier prices and the price tracker
type PricingAPI struct {
	tracker *pricing.Tracker
	logger  *logging.Logger
}

// NewPricingAPI creates a new pricing API handler
func NewPricingAPI(tracker *pricing.Tracker, logger *logging.Logger) *PricingAPI {
	return &PricingAPI{
		tracker: tracker,
		logger:  logger,
	}
}

// RegisterRoutes registers pricing routes on the given mux
func (api *PricingAPI) RegisterRoutes(mux *http.ServeMux, corsMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("/api/prices/tiers", corsMiddleware(api.handleGetTierPrices))
	mux.HandleFunc("/api/tracker/skins", corsMiddleware(api.handleGetTrackedSkins))
	mux.HandleFunc("/api/tracker/skins/", corsMiddleware(api.handleGetTrackedSkin))
}

// handleGetTierPrices returns the tier price table
func (api *PricingAPI) handleGetTierPrices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	table := pricing.Table()
	api.writeJSON(w, http.StatusOK, map[string]interface{}{
		"tiers": table,
		"count": len(table),
	})
}

// handleGetTrackedSkins returns the tracked skins, most expensive first
func (api *PricingAPI) handleGetTrackedSkins(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	skins := api.tracker.All()
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			skins = api.tracker.Top(parsed)
		}
	}

	api.writeJSON(w, http.StatusOK, map[string]interface{}{
		"skins": skins,
		"count": len(skins),
	})
}

// handleGetTrackedSkin returns one tracked skin with its price history
func (api *PricingAPI) handleGetTrackedSkin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/api/tracker/skins/")
	if slug == "" || strings.Contains(slug, "/") {
		api.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Skin slug required"})
		return
	}

	skin, ok := api.tracker.BySlug(slug)
	if !ok {
		api.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Skin not found"})
		return
	}

	api.writeJSON(w, http.StatusOK, map[string]interface{}{
		"skin":    skin,
		"history": api.tracker.History(slug),
	})
}

func (api *PricingAPI) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
