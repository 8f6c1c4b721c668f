// Package hypixel is a rate-limited client for the public Hypixel SkyBlock
// API. It exposes the two bulk reads the detection engine needs: the paginated
// auction house snapshot and the bazaar quote snapshot.
package hypixel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.hypixel.net/v2"

// Client is a rate-limited Hypixel API client.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	sem     chan struct{}
}

// NewClient creates a client. apiKey may be empty: the skyblock auction and
// bazaar endpoints are public, keyed requests just get a higher rate budget.
func NewClient(apiKey string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		sem:     make(chan struct{}, 10),
	}
}

// HealthCheck pings the API to verify connectivity.
func (c *Client) HealthCheck() bool {
	req, err := http.NewRequest("GET", c.baseURL+"/punishmentstats", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == 200
}

// GetJSON fetches a URL and decodes JSON into dst.
func (c *Client) GetJSON(ctx context.Context, url string, dst interface{}) error {
	c.sem <- struct{}{}
	defer func() { <-c.sem }()

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("hypixel %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}
