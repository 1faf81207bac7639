package valorantapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{
		BaseURL:   srv.URL,
		Timeout:   2 * time.Second,
		UserAgent: "valorant-hub-test",
	}, nil)
}

func TestAgents_FiltersNonPlayable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("isPlayableCharacter") != "true" {
			t.Errorf("expected isPlayableCharacter=true query, got %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"status":200,"data":[
			{"uuid":"a1","displayName":"Jett","isPlayableCharacter":true,"role":{"uuid":"r1","displayName":"Duelist"}},
			{"uuid":"a2","displayName":"NPC Sova","isPlayableCharacter":false}
		]}`))
	})

	agents, err := client.Agents(context.Background())
	if err != nil {
		t.Fatalf("Agents() error: %v", err)
	}
	if len(agents) != 1 {
		t.Fatalf("Agents() returned %d agents, want 1", len(agents))
	}
	if agents[0].DisplayName != "Jett" {
		t.Errorf("Agents()[0].DisplayName = %s, want Jett", agents[0].DisplayName)
	}
	if agents[0].Role == nil || agents[0].Role.DisplayName != "Duelist" {
		t.Error("Agents()[0].Role not decoded")
	}
}

func TestWeapons_DecodesSkins(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":200,"data":[
			{"uuid":"w1","displayName":"Vandal","category":"EEquippableCategory::Rifle","skins":[
				{"uuid":"s1","displayName":"Reaver Vandal","contentTierUuid":"t1",
				 "chromas":[{"uuid":"c1","fullRender":"https://img/reaver.png"}]}
			]}
		]}`))
	})

	weapons, err := client.Weapons(context.Background())
	if err != nil {
		t.Fatalf("Weapons() error: %v", err)
	}
	if len(weapons) != 1 || len(weapons[0].Skins) != 1 {
		t.Fatalf("unexpected weapons shape: %+v", weapons)
	}
	if got := weapons[0].Skins[0].DisplayImage(); got != "https://img/reaver.png" {
		t.Errorf("DisplayImage() = %s, want chroma full render", got)
	}
}

func TestFetch_Non200Status(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	if _, err := client.Weapons(context.Background()); err == nil {
		t.Error("Weapons() should return error on non-200 status")
	}
}

func TestFetch_NullData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":200,"data":null}`))
	})

	if _, err := client.ContentTiers(context.Background()); err == nil {
		t.Error("ContentTiers() should return error on null data")
	}
}

func TestFetch_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":200,"data":`))
	})

	if _, err := client.Themes(context.Background()); err == nil {
		t.Error("Themes() should return error on malformed body")
	}
}

func TestFetch_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"status":200,"data":[]}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := client.Bundles(ctx); err == nil {
		t.Error("Bundles() should return error when context deadline passes")
	}
}
