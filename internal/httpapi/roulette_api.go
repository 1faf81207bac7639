package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mohaak7/valorant-hub/internal/catalog"
	"github.com/mohaak7/valorant-hub/internal/logging"
	"github.com/mohaak7/valorant-hub/internal/models"
	"github.com/mohaak7/valorant-hub/internal/roulette"
	"github.com/mohaak7/valorant-hub/internal/selection"
)

// RouletteAPI handles HTTP API requests for roulette sessions
type RouletteAPI struct {
	mgr          *roulette.Manager
	catalogSvc   *catalog.Service
	selectionSvc *selection.Service
	logger       *logging.Logger
}

// NewRouletteAPI creates a new roulette API handler
func NewRouletteAPI(mgr *roulette.Manager, catalogSvc *catalog.Service, selectionSvc *selection.Service, logger *logging.Logger) *RouletteAPI {
	return &RouletteAPI{
		mgr:          mgr,
		catalogSvc:   catalogSvc,
		selectionSvc: selectionSvc,
		logger:       logger,
	}
}

// RegisterRoutes registers roulette session routes on the given mux
func (api *RouletteAPI) RegisterRoutes(mux *http.ServeMux, corsMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("/api/roulette/sessions", corsMiddleware(api.handleSessions))
	mux.HandleFunc("/api/roulette/sessions/", corsMiddleware(api.handleSessionItem))
}

type sessionRequest struct {
	Kind   string              `json:"kind"`
	Filter string              `json:"filter"`
	Mode   models.RouletteMode `json:"mode"`
}

type sessionResponse struct {
	SessionID string              `json:"sessionId"`
	Kind      string              `json:"kind"`
	Filter    string              `json:"filter"`
	Mode      models.RouletteMode `json:"mode"`
	State     roulette.State      `json:"state"`
	Pool      []models.PoolItem   `json:"pool,omitempty"`
}

// buildPool derives the spin pool for a kind, filter and mode. Skins sessions
// need a weapon filter; agents sessions take an optional role filter. The
// selection mode intersects with the caller's pool slot.
func (api *RouletteAPI) buildPool(r *http.Request, w http.ResponseWriter, kind, filter string, mode models.RouletteMode) ([]models.PoolItem, bool) {
	switch kind {
	case roulette.KindSkins:
		weapon, ok := api.catalogSvc.RouletteWeaponByUUID(filter)
		if !ok {
			api.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unknown weapon"})
			return nil, false
		}
		candidates := weapon.Skins
		var selected []string
		if mode == models.ModeSelection {
			selected = api.selectionSvc.Members(r.Context(), profileID(w, r), selection.SlotPool)
		}
		return roulette.BuildPool(candidates, mode, selected), true

	case roulette.KindAgents:
		return api.catalogSvc.AgentPool(filter), true

	default:
		api.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unknown session kind"})
		return nil, false
	}
}

// handleSessions creates a new session
func (api *RouletteAPI) handleSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if req.Mode == "" {
		req.Mode = models.ModeAll
	}
	if !req.Mode.Valid() {
		api.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unknown mode"})
		return
	}

	pool, ok := api.buildPool(r, w, req.Kind, req.Filter, req.Mode)
	if !ok {
		return
	}

	sess := api.mgr.Create(req.Kind, req.Filter, req.Mode, pool)
	api.writeJSON(w, http.StatusCreated, sessionResponse{
		SessionID: sess.ID(),
		Kind:      sess.Kind(),
		Filter:    sess.Filter(),
		Mode:      sess.Mode(),
		State:     sess.Engine().Snapshot(),
		Pool:      sess.Engine().Pool(),
	})
}

// handleSessionItem routes /api/roulette/sessions/{id}[/spin|/filter]
func (api *RouletteAPI) handleSessionItem(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/roulette/sessions/")
	parts := strings.Split(path, "/")

	if len(parts) == 0 || parts[0] == "" {
		api.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Session ID required"})
		return
	}

	sess, ok := api.mgr.Get(parts[0])
	if !ok {
		api.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Session not found"})
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			api.writeState(w, http.StatusOK, sess, false)
		case http.MethodDelete:
			api.mgr.Delete(sess.ID())
			api.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	if len(parts) != 2 || r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch parts[1] {
	case "spin":
		api.handleSpin(w, sess)
	case "filter":
		api.handleSetFilter(w, r, sess)
	default:
		api.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Unknown action"})
	}
}

// handleSpin starts a spin on the session
func (api *RouletteAPI) handleSpin(w http.ResponseWriter, sess *roulette.Session) {
	if !sess.Engine().Spin() {
		api.writeJSON(w, http.StatusConflict, map[string]string{"error": "Cannot spin: empty pool or spin in progress"})
		return
	}
	api.writeState(w, http.StatusOK, sess, false)
}

// handleSetFilter swaps the session's filter and mode, resetting the pool
func (api *RouletteAPI) handleSetFilter(w http.ResponseWriter, r *http.Request, sess *roulette.Session) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if req.Mode == "" {
		req.Mode = models.ModeAll
	}
	if !req.Mode.Valid() {
		api.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unknown mode"})
		return
	}

	pool, ok := api.buildPool(r, w, sess.Kind(), req.Filter, req.Mode)
	if !ok {
		return
	}

	sess.SetFilter(req.Filter, req.Mode, pool)
	api.writeState(w, http.StatusOK, sess, true)
}

func (api *RouletteAPI) writeState(w http.ResponseWriter, status int, sess *roulette.Session, includePool bool) {
	resp := sessionResponse{
		SessionID: sess.ID(),
		Kind:      sess.Kind(),
		Filter:    sess.Filter(),
		Mode:      sess.Mode(),
		State:     sess.Engine().Snapshot(),
	}
	if includePool {
		resp.Pool = sess.Engine().Pool()
	}
	api.writeJSON(w, status, resp)
}

func (api *RouletteAPI) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
