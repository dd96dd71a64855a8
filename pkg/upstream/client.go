package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/xosoviet/xoso-backend/internal/models"
)

// Client represents a client for the live results feed
type Client struct {
	BaseURL string
	APIKey  string
	Mock    bool
	client  *http.Client
}

// NewClient creates a new results feed client. With mock enabled every
// fetch is served from the fixed demo tables and the network is never
// touched.
func NewClient(baseURL, apiKey string, mock bool) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Mock:    mock,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchResults retrieves results for a draw date. Region "all" returns a
// mapping with every region; any other region returns a singleton
// mapping. A non-2xx status or an undecodable body is an error; callers
// treat every error the same way, as a failed fetch.
func (c *Client) FetchResults(ctx context.Context, date string, region models.Region) (models.ResultSet, error) {
	if c.Mock {
		return MockResults(date, region), nil
	}

	endpoint := fmt.Sprintf("%s/results?date=%s&region=%s",
		c.BaseURL, url.QueryEscape(date), url.QueryEscape(string(region)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.APIKey != "" {
		req.Header.Set("X-API-Key", c.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("results feed returned status %d", resp.StatusCode)
	}

	// The feed returns a region-keyed object for "all" and a bare
	// result object for a single region.
	if region == models.RegionAll {
		var set models.ResultSet
		if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
			return nil, fmt.Errorf("failed to decode results body: %w", err)
		}
		return set, nil
	}

	var result models.RegionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode results body: %w", err)
	}
	return models.ResultSet{region: &result}, nil
}
