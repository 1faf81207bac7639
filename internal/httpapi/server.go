package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mohaak7/valorant-hub/internal/catalog"
	"github.com/mohaak7/valorant-hub/internal/logging"
	"github.com/mohaak7/valorant-hub/internal/pricing"
	"github.com/mohaak7/valorant-hub/internal/roulette"
	"github.com/mohaak7/valorant-hub/internal/selection"
)

type Server struct {
	catalogSvc   *catalog.Service
	selectionSvc *selection.Service
	tracker      *pricing.Tracker
	rouletteMgr  *roulette.Manager
	logger       *logging.Logger
	server       *http.Server
}

func New(catalogSvc *catalog.Service, selectionSvc *selection.Service, tracker *pricing.Tracker, rouletteMgr *roulette.Manager, logger *logging.Logger) *Server {
	return &Server{
		catalogSvc:   catalogSvc,
		selectionSvc: selectionSvc,
		tracker:      tracker,
		rouletteMgr:  rouletteMgr,
		logger:       logger,
	}
}

func (s *Server) Start(addr string) error {
	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	s.logger.Info("HTTP API server starting", logging.WithField("addr", addr))
	return s.server.ListenAndServe()
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Catalog routes
	catalogAPI := NewCatalogAPI(s.catalogSvc, s.logger)
	catalogAPI.RegisterRoutes(mux, s.corsMiddleware)

	// Tier prices and tracker routes
	pricingAPI := NewPricingAPI(s.tracker, s.logger)
	pricingAPI.RegisterRoutes(mux, s.corsMiddleware)

	// Selection set routes
	selectionAPI := NewSelectionAPI(s.selectionSvc, s.logger)
	selectionAPI.RegisterRoutes(mux, s.corsMiddleware)

	// Roulette session routes
	rouletteAPI := NewRouletteAPI(s.rouletteMgr, s.catalogSvc, s.selectionSvc, s.logger)
	rouletteAPI.RegisterRoutes(mux, s.corsMiddleware)

	// Crosshair routes
	crosshairAPI := NewCrosshairAPI(s.logger)
	crosshairAPI.RegisterRoutes(mux, s.corsMiddleware)

	// Translations
	mux.HandleFunc("/api/i18n", s.corsMiddleware(s.handleI18n))

	// Health check
	mux.HandleFunc("/health", s.handleHealth)
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Profile-ID")
		w.Header().Set("Access-Control-Expose-Headers", "X-Profile-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
