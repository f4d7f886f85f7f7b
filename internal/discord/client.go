package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wrenbeck/WanderBot_Go/internal/adventure"
	"github.com/wrenbeck/WanderBot_Go/internal/economy"
	"github.com/wrenbeck/WanderBot_Go/internal/progression"
	"github.com/wrenbeck/WanderBot_Go/internal/quest"
	"github.com/wrenbeck/WanderBot_Go/internal/stats"
)

// APIClient handles communication with the WanderBot Core API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL + "/api/v1",
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey: apiKey,
	}
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	url := fmt.Sprintf("%s%s", c.BaseURL, path)

	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, url, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decode reads a response, turning error payloads into errors
func decode(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("API error: %s", errResp.Error)
		}
		return fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *APIClient) get(path string, params url.Values, out interface{}) error {
	if len(params) > 0 {
		path = path + "?" + params.Encode()
	}
	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (c *APIClient) post(path string, body, out interface{}) error {
	resp, err := c.doRequest(http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

// HandleMessage reports a chat message for XP processing
func (c *APIClient) HandleMessage(userID, username, displayName string) (*progression.MessageResult, error) {
	req := map[string]string{
		"user_id":      userID,
		"username":     username,
		"display_name": displayName,
	}
	var result progression.MessageResult
	if err := c.post("/message/handle", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Profile retrieves a user's chat level card
func (c *APIClient) Profile(userID string) (*progression.ProfileView, error) {
	var profile progression.ProfileView
	if err := c.get("/progression/profile", url.Values{"user_id": {userID}}, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// XPTable retrieves the per-level XP requirements
func (c *APIClient) XPTable(maxLevel int) ([]progression.XPTableRow, error) {
	params := url.Values{}
	if maxLevel > 0 {
		params.Set("max_level", strconv.Itoa(maxLevel))
	}
	var resp struct {
		Levels []progression.XPTableRow `json:"levels"`
	}
	if err := c.get("/progression/table", params, &resp); err != nil {
		return nil, err
	}
	return resp.Levels, nil
}

// ChatLeaderboard retrieves the top chatters
func (c *APIClient) ChatLeaderboard(limit int) ([]progression.LeaderboardEntry, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var resp struct {
		Entries []progression.LeaderboardEntry `json:"entries"`
	}
	if err := c.get("/progression/leaderboard", params, &resp); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// AdventureState retrieves the adventure status card
func (c *APIClient) AdventureState(userID string) (*adventure.StateView, error) {
	var state adventure.StateView
	if err := c.get("/adventure/state", url.Values{"user_id": {userID}}, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Action performs one adventure action
func (c *APIClient) Action(userID, action string) (*adventure.ActionResult, error) {
	req := map[string]string{"user_id": userID, "action": action}
	var result adventure.ActionResult
	if err := c.post("/adventure/action", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AdventureLeaderboardEntry mirrors the API's ranked adventure record
type AdventureLeaderboardEntry struct {
	Rank             int    `json:"rank"`
	Name             string `json:"name"`
	Gold             int    `json:"gold"`
	AdventureLevel   int    `json:"adventure_level"`
	MonstersDefeated int    `json:"monsters_defeated"`
}

// AdventureLeaderboard retrieves the top adventurers for a category
func (c *APIClient) AdventureLeaderboard(category string, limit int) ([]AdventureLeaderboardEntry, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var resp struct {
		Entries []AdventureLeaderboardEntry `json:"entries"`
	}
	if err := c.get("/adventure/leaderboard", params, &resp); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// Shop retrieves the shop listing
func (c *APIClient) Shop() ([]economy.ShopEntry, error) {
	var resp struct {
		Items []economy.ShopEntry `json:"items"`
	}
	if err := c.get("/economy/shop", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Inventory retrieves held items and gold
func (c *APIClient) Inventory(userID string) (*economy.InventoryView, error) {
	var view economy.InventoryView
	if err := c.get("/economy/inventory", url.Values{"user_id": {userID}}, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// Buy purchases one unit of a shop item
func (c *APIClient) Buy(userID, item string) (*economy.PurchaseResult, error) {
	req := map[string]string{"user_id": userID, "item": item}
	var result economy.PurchaseResult
	if err := c.post("/economy/buy", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Use consumes a held item
func (c *APIClient) Use(userID, item string) (*economy.UseResult, error) {
	req := map[string]string{"user_id": userID, "item": item}
	var result economy.UseResult
	if err := c.post("/economy/use", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// QuestToday retrieves the user's quest of the day
func (c *APIClient) QuestToday(userID string) (*quest.TodayQuest, error) {
	var today quest.TodayQuest
	if err := c.get("/quest/today", url.Values{"user_id": {userID}}, &today); err != nil {
		return nil, err
	}
	return &today, nil
}

// QuestClaim claims today's quest reward
func (c *APIClient) QuestClaim(userID string) (*quest.ClaimResult, error) {
	req := map[string]string{"user_id": userID}
	var result quest.ClaimResult
	if err := c.post("/quest/claim", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Stats retrieves the aggregated server overview
func (c *APIClient) Stats() (*stats.Overview, error) {
	var overview stats.Overview
	if err := c.get("/stats", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// Settings retrieves the stored and effective game settings
func (c *APIClient) Settings() (map[string]string, error) {
	var resp struct {
		Stored map[string]string `json:"stored"`
	}
	if err := c.get("/admin/settings", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Stored, nil
}

// SetSetting updates one game setting
func (c *APIClient) SetSetting(key, value string) error {
	req := map[string]string{"key": key, "value": value}
	return c.post("/admin/settings", req, nil)
}
