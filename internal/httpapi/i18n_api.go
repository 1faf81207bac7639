package httpapi

import (
	"net/http"

	"github.com/mohaak7/valorant-hub/internal/i18n"
)

// handleI18n returns the interface strings for the detected language. An
// explicit ?lang wins over the Accept-Language header.
func (s *Server) handleI18n(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	lang := i18n.Detect(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
	s.writeJSON(w, http.StatusOK, i18n.For(lang))
}
