package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mohaak7/valorant-hub/internal/catalog"
	"github.com/mohaak7/valorant-hub/internal/logging"
	"github.com/mohaak7/valorant-hub/internal/models"
)

// CatalogAPI handles HTTP API requests for agents, skins, bundles and tiers
type CatalogAPI struct {
	catalogSvc *catalog.Service
	logger     *logging.Logger
}

// NewCatalogAPI creates a new catalog API handler
func NewCatalogAPI(catalogSvc *catalog.Service, logger *logging.Logger) *CatalogAPI {
	return &CatalogAPI{
		catalogSvc: catalogSvc,
		logger:     logger,
	}
}

// RegisterRoutes registers catalog routes on the given mux
func (api *CatalogAPI) RegisterRoutes(mux *http.ServeMux, corsMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("/api/agents", corsMiddleware(api.handleGetAgents))
	mux.HandleFunc("/api/skins", corsMiddleware(api.handleGetSkins))
	mux.HandleFunc("/api/skins/", corsMiddleware(api.handleGetSkin))
	mux.HandleFunc("/api/bundles", corsMiddleware(api.handleGetBundles))
	mux.HandleFunc("/api/bundles/", corsMiddleware(api.handleGetBundle))
	mux.HandleFunc("/api/tiers", corsMiddleware(api.handleGetTiers))
	mux.HandleFunc("/api/roulette/weapons", corsMiddleware(api.handleGetRouletteWeapons))
	mux.HandleFunc("/api/refresh", corsMiddleware(api.handleRefresh))
}

// handleGetAgents returns playable agents, optionally filtered by role
func (api *CatalogAPI) handleGetAgents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	agents := api.catalogSvc.AgentsByRole(r.URL.Query().Get("role"))
	api.writeJSON(w, http.StatusOK, map[string]interface{}{
		"agents": agents,
		"count":  len(agents),
	})
}

// handleGetSkins returns the filtered, sorted, paginated skin list
func (api *CatalogAPI) handleGetSkins(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()

	limit := 50
	if l := query.Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	offset := 0
	if o := query.Get("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	params := models.SkinFilterParams{
		Weapon:   query.Get("weapon"),
		TierUUID: query.Get("tier"),
		Query:    query.Get("q"),
		Sort:     query.Get("sort"),
		Limit:    limit,
		Offset:   offset,
	}

	response := api.catalogSvc.FilterSkins(params)
	api.writeJSON(w, http.StatusOK, response)
}

// handleGetSkin returns one skin by uuid
func (api *CatalogAPI) handleGetSkin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uuid := strings.TrimPrefix(r.URL.Path, "/api/skins/")
	if uuid == "" || strings.Contains(uuid, "/") {
		api.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Skin UUID required"})
		return
	}

	skin, ok := api.catalogSvc.SkinByUUID(uuid)
	if !ok {
		api.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Skin not found"})
		return
	}

	api.writeJSON(w, http.StatusOK, skin)
}

// handleGetBundles returns all bundles
func (api *CatalogAPI) handleGetBundles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	bundles := api.catalogSvc.Bundles()
	api.writeJSON(w, http.StatusOK, map[string]interface{}{
		"bundles": bundles,
		"count":   len(bundles),
	})
}

// handleGetBundle returns one bundle with its theme-joined skins
func (api *CatalogAPI) handleGetBundle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uuid := strings.TrimPrefix(r.URL.Path, "/api/bundles/")
	if uuid == "" || strings.Contains(uuid, "/") {
		api.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Bundle UUID required"})
		return
	}

	bundle, ok := api.catalogSvc.BundleWithSkins(uuid)
	if !ok {
		api.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Bundle not found"})
		return
	}

	api.writeJSON(w, http.StatusOK, bundle)
}

// handleGetTiers returns content tiers sorted by rank
func (api *CatalogAPI) handleGetTiers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tiers := api.catalogSvc.ContentTiers()
	api.writeJSON(w, http.StatusOK, map[string]interface{}{
		"tiers": tiers,
		"count": len(tiers),
	})
}

// handleGetRouletteWeapons returns weapons with their roulette-eligible skins
func (api *CatalogAPI) handleGetRouletteWeapons(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	weapons := api.catalogSvc.WeaponsForRoulette()
	api.writeJSON(w, http.StatusOK, map[string]interface{}{
		"weapons": weapons,
		"count":   len(weapons),
	})
}

// handleRefresh re-fetches the upstream catalog
func (api *CatalogAPI) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
	defer cancel()

	if err := api.catalogSvc.Refresh(ctx); err != nil {
		api.logger.Error("Failed to refresh catalog", logging.WithField("error", err.Error()))
		api.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	api.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Catalog refreshed successfully",
	})
}

func (api *CatalogAPI) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
