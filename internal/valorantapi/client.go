package valorantapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mohaak7/valorant-hub/internal/models"
	"github.com/mohaak7/valorant-hub/internal/ratelimit"
)

// DefaultBaseURL is the public read-only catalog API
const DefaultBaseURL = "https://valorant-api.com/v1"

// Config holds client construction options
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// DefaultConfig returns sensible defaults for the public catalog API
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   30 * time.Second,
		UserAgent: "valorant-hub/1.0",
	}
}

// Client fetches catalog entities from the upstream API. Every method returns
// an error on network failure, non-200 status, or a malformed body; callers
// are expected to degrade to empty collections.
type Client struct {
	baseURL   string
	userAgent string
	host      string
	limiter   *ratelimit.Limiter
	client    *http.Client
}

// envelope is the upstream response wrapper
type envelope struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// New creates a catalog API client
func New(cfg Config, limiter *ratelimit.Limiter) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	host := "valorant-api.com"
	if u, err := url.Parse(base); err == nil && u.Host != "" {
		host = u.Host
	}
	return &Client{
		baseURL:   base,
		userAgent: cfg.UserAgent,
		host:      host,
		limiter:   limiter,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) fetch(ctx context.Context, path string, out interface{}) error {
	if c.limiter != nil {
		c.limiter.Wait(c.host)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog API returned status %d for %s", resp.StatusCode, path)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("catalog API returned null data for %s", path)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", path, err)
	}
	return nil
}

// Agents fetches playable agents. The upstream query already filters to
// playable characters; leftovers are dropped defensively.
func (c *Client) Agents(ctx context.Context) ([]models.Agent, error) {
	var agents []models.Agent
	if err := c.fetch(ctx, "/agents?isPlayableCharacter=true", &agents); err != nil {
		return nil, err
	}

	playable := make([]models.Agent, 0, len(agents))
	for _, a := range agents {
		if !a.IsPlayableCharacter {
			continue
		}
		playable = append(playable, a)
	}
	return playable, nil
}

// Weapons fetches all weapons with their full skin lists
func (c *Client) Weapons(ctx context.Context) ([]models.Weapon, error) {
	var weapons []models.Weapon
	if err := c.fetch(ctx, "/weapons", &weapons); err != nil {
		return nil, err
	}
	return weapons, nil
}

// Bundles fetches all skin bundles
func (c *Client) Bundles(ctx context.Context) ([]models.Bundle, error) {
	var bundles []models.Bundle
	if err := c.fetch(ctx, "/bundles", &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}

// ContentTiers fetches the tier rank list
func (c *Client) ContentTiers(ctx context.Context) ([]models.ContentTier, error) {
	var tiers []models.ContentTier
	if err := c.fetch(ctx, "/contenttiers", &tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}

// Themes fetches skin theme groupings
func (c *Client) Themes(ctx context.Context) ([]models.Theme, error) {
	var themes []models.Theme
	if err := c.fetch(ctx, "/themes", &themes); err != nil {
		return nil, err
	}
	return themes, nil
}
