package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mohaak7/valorant-hub/internal/logging"
	"github.com/mohaak7/valorant-hub/internal/selection"
)

// profileIDHeader carries the client-generated profile id. The server mints
// one when the header is absent and echoes it back on every response.
const profileIDHeader = "X-Profile-ID"

// SelectionAPI handles HTTP API requests for per-profile selection sets
type SelectionAPI struct {
	selectionSvc *selection.Service
	logger       *logging.Logger
}

// NewSelectionAPI creates a new selection API handler
func NewSelectionAPI(selectionSvc *selection.Service, logger *logging.Logger) *SelectionAPI {
	return &SelectionAPI{
		selectionSvc: selectionSvc,
		logger:       logger,
	}
}

// RegisterRoutes registers selection routes on the given mux
func (api *SelectionAPI) RegisterRoutes(mux *http.ServeMux, corsMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("/api/selection/", corsMiddleware(api.handleSelection))
}

// profileID resolves the caller's profile id, minting one if needed, and
// echoes it in the response header.
func profileID(w http.ResponseWriter, r *http.Request) string {
	id := strings.TrimSpace(r.Header.Get(profileIDHeader))
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.New().String()
	}
	w.Header().Set(profileIDHeader, id)
	return id
}

func validSlot(slot string) bool {
	return slot == selection.SlotPool || slot == selection.SlotOwned
}

// handleSelection routes /api/selection/{slot}[/toggle|/replace|/clear]
func (api *SelectionAPI) handleSelection(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/selection/")
	parts := strings.Split(path, "/")

	if len(parts) == 0 || parts[0] == "" {
		api.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Slot required"})
		return
	}

	slot := parts[0]
	if !validSlot(slot) {
		api.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unknown slot"})
		return
	}

	pid := profileID(w, r)

	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ids := api.selectionSvc.Members(r.Context(), pid, slot)
		api.writeMembers(w, pid, slot, ids)
		return
	}

	if len(parts) != 2 || r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		ID  string   `json:"id"`
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	var (
		ids []string
		err error
	)
	switch parts[1] {
	case "toggle":
		if body.ID == "" {
			api.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id required"})
			return
		}
		ids, err = api.selectionSvc.Toggle(r.Context(), pid, slot, body.ID)
	case "replace":
		ids, err = api.selectionSvc.ReplaceAll(r.Context(), pid, slot, body.IDs)
	case "clear":
		if len(body.IDs) == 0 {
			ids, err = api.selectionSvc.ReplaceAll(r.Context(), pid, slot, nil)
		} else {
			ids, err = api.selectionSvc.ClearSubset(r.Context(), pid, slot, body.IDs)
		}
	default:
		api.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Unknown action"})
		return
	}

	if err != nil {
		api.logger.Error("Selection update failed", logging.WithFields(map[string]interface{}{
			"slot":  slot,
			"error": err.Error(),
		}))
		api.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to store selection"})
		return
	}

	api.writeMembers(w, pid, slot, ids)
}

func (api *SelectionAPI) writeMembers(w http.ResponseWriter, profileID, slot string, ids []string) {
	if ids == nil {
		ids = []string{}
	}
	api.writeJSON(w, http.StatusOK, map[string]interface{}{
		"profileId": profileID,
		"slot":      slot,
		"ids":       ids,
		"count":     len(ids),
	})
}

func (api *SelectionAPI) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
