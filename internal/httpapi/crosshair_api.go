package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mohaak7/valorant-hub/internal/crosshair"
	"github.com/mohaak7/valorant-hub/internal/logging"
)

// CrosshairAPI handles HTTP API requests for crosshair presets
type CrosshairAPI struct {
	logger *logging.Logger
}

// NewCrosshairAPI creates a new crosshair API handler
func NewCrosshairAPI(logger *logging.Logger) *CrosshairAPI {
	return &CrosshairAPI{logger: logger}
}

// RegisterRoutes registers crosshair routes on the given mux
func (api *CrosshairAPI) RegisterRoutes(mux *http.ServeMux, corsMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("/api/crosshairs", corsMiddleware(api.handleGetCrosshairs))
	mux.HandleFunc("/api/crosshairs/validate", corsMiddleware(api.handleValidate))
}

// handleGetCrosshairs returns the curated preset list
func (api *CrosshairAPI) handleGetCrosshairs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	presets := crosshair.Presets()
	api.writeJSON(w, http.StatusOK, map[string]interface{}{
		"crosshairs": presets,
		"count":      len(presets),
	})
}

// handleValidate checks a submitted crosshair code against the profile grammar
func (api *CrosshairAPI) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	parsed, err := crosshair.ParseCode(body.Code)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, crosshair.ErrInvalidCode) {
			status = http.StatusUnprocessableEntity
		}
		api.writeJSON(w, status, map[string]interface{}{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	api.writeJSON(w, http.StatusOK, map[string]interface{}{
		"valid":    true,
		"sections": parsed.Sections,
	})
}

func (api *CrosshairAPI) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
