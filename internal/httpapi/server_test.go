package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mohaak7/valorant-hub/internal/catalog"
	"github.com/mohaak7/valorant-hub/internal/logging"
	"github.com/mohaak7/valorant-hub/internal/models"
	"github.com/mohaak7/valorant-hub/internal/pricing"
	"github.com/mohaak7/valorant-hub/internal/roulette"
	"github.com/mohaak7/valorant-hub/internal/selection"
)

const (
	tierSelectUUID  = "12683d76-48d7-2604-28fa-6e836fa18abc"
	tierDeluxeUUID  = "0cebb8be-46d7-c12a-d306-e9907bfc5a25"
	tierPremiumUUID = "60bca009-4182-7998-dee7-b8a2558dc369"
)

type stubFetcher struct {
	agents  []models.Agent
	weapons []models.Weapon
	bundles []models.Bundle
	tiers   []models.ContentTier
	themes  []models.Theme
}

func (f *stubFetcher) Agents(ctx context.Context) ([]models.Agent, error) {
	return f.agents, nil
}
func (f *stubFetcher) Weapons(ctx context.Context) ([]models.Weapon, error) {
	return f.weapons, nil
}
func (f *stubFetcher) Bundles(ctx context.Context) ([]models.Bundle, error) {
	return f.bundles, nil
}
func (f *stubFetcher) ContentTiers(ctx context.Context) ([]models.ContentTier, error) {
	return f.tiers, nil
}
func (f *stubFetcher) Themes(ctx context.Context) ([]models.Theme, error) {
	return f.themes, nil
}

func testFetcher() *stubFetcher {
	return &stubFetcher{
		agents: []models.Agent{
			{UUID: "a-jett", DisplayName: "Jett", IsPlayableCharacter: true,
				FullPortrait: "https://img/jett.png",
				Role:         &models.AgentRole{UUID: "r-duelist", DisplayName: "Duelist"}},
			{UUID: "a-sova", DisplayName: "Sova", IsPlayableCharacter: true,
				FullPortrait: "https://img/sova.png",
				Role:         &models.AgentRole{UUID: "r-initiator", DisplayName: "Initiator"}},
		},
		tiers: []models.ContentTier{
			{UUID: tierSelectUUID, DisplayName: "Select Edition", DevName: "Select", Rank: 0},
			{UUID: tierDeluxeUUID, DisplayName: "Deluxe Edition", DevName: "Deluxe", Rank: 1},
			{UUID: tierPremiumUUID, DisplayName: "Premium Edition", DevName: "Premium", Rank: 2},
		},
		weapons: []models.Weapon{
			{
				UUID: "w-vandal", DisplayName: "Vandal", Category: "EEquippableCategory::Rifle",
				Skins: []models.WeaponSkin{
					{UUID: "s-reaver", DisplayName: "Reaver Vandal", ContentTierUUID: tierPremiumUUID,
						Chromas: []models.SkinChroma{{UUID: "c1", FullRender: "https://img/reaver.png"}}},
					{UUID: "s-oni", DisplayName: "Oni Vandal", ContentTierUUID: tierDeluxeUUID,
						DisplayIcon: "https://img/oni.png", ThemeUUID: "theme-oni"},
				},
			},
		},
		bundles: []models.Bundle{
			{UUID: "b-oni", DisplayName: "Oni", DisplayIcon: "https://img/oni-bundle.png"},
		},
		themes: []models.Theme{
			{UUID: "theme-oni", DisplayName: "Oni"},
		},
	}
}

func writeTrackerFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skins.json")
	data := `[
		{"slug": "reaver-vandal", "name": "Reaver Vandal", "weapon": "Vandal",
		 "estimatedVpPrice": 1775,
		 "priceHistory": [{"date": "2026-02-01", "vp": 1775}, {"date": "2026-01-01", "vp": 1775}]}
	]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write tracker file: %v", err)
	}
	return path
}

func newTestServer(t *testing.T) *http.ServeMux {
	t.Helper()
	logger := logging.New(logging.LevelError)

	catalogSvc := catalog.New(testFetcher(), nil, logger)
	if err := catalogSvc.Refresh(context.Background()); err != nil {
		t.Fatalf("catalog refresh: %v", err)
	}

	selectionSvc := selection.NewService(selection.NewMemoryStore(), logger)
	tracker := pricing.NewTracker(writeTrackerFile(t), logger)
	mgr := roulette.NewManager(time.Hour, roulette.NewSeededSource(1), logger)
	t.Cleanup(mgr.Close)

	s := New(catalogSvc, selectionSvc, tracker, mgr, logger)
	mux := http.NewServeMux()
	s.registerRoutes(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, req *http.Request, wantStatus int, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != wantStatus {
		t.Fatalf("%s %s: status = %d, want %d (body %s)", req.Method, req.URL.Path, w.Code, wantStatus, w.Body.String())
	}
	if out != nil {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return w
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestServer(t)

	var resp map[string]string
	doJSON(t, mux, httptest.NewRequest(http.MethodGet, "/health", nil), http.StatusOK, &resp)
	if resp["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", resp["status"])
	}
}

func TestCORSMiddleware(t *testing.T) {
	mux := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/agents", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("OPTIONS status = %d, want 200", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing Access-Control-Allow-Origin header")
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got == "" {
		t.Error("missing Access-Control-Allow-Headers header")
	}
}

func TestI18nEndpoint(t *testing.T) {
	mux := newTestServer(t)

	tests := []struct {
		name           string
		query          string
		acceptLanguage string
		wantLang       string
		wantHome       string
	}{
		{"default english", "", "", "en", "Home"},
		{"accept-language spanish", "", "es-ES,es;q=0.9", "es", "Inicio"},
		{"explicit lang beats header", "?lang=en", "es-ES", "en", "Home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/i18n"+tt.query, nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}

			var resp struct {
				Lang string `json:"lang"`
				Nav  struct {
					Home string `json:"home"`
				} `json:"nav"`
			}
			doJSON(t, mux, req, http.StatusOK, &resp)

			if resp.Lang != tt.wantLang {
				t.Errorf("lang = %q, want %q", resp.Lang, tt.wantLang)
			}
			if resp.Nav.Home != tt.wantHome {
				t.Errorf("nav.home = %q, want %q", resp.Nav.Home, tt.wantHome)
			}
		})
	}
}
