package library

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rustizarr/dashboard/internal/model"
)

// DefaultTimeout bounds every backend call. Matches the server's own
// outbound request timeout.
const DefaultTimeout = 30 * time.Second

// RefreshResult mirrors the refresh endpoint's JSON response
type RefreshResult struct {
	Success   bool   `json:"success"`
	Total     int    `json:"total"`
	Processed int    `json:"processed"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Client is the HTTP client for the artwork backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// FetchEntries retrieves the full library listing. Entries with missing
// optional fields decode to their zero values; shape problems are handled
// downstream by the projection, not here.
func (c *Client) FetchEntries(ctx context.Context) ([]model.LibraryEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/library", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("library request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("library request failed: HTTP %d", resp.StatusCode)
	}

	var entries []model.LibraryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("library response malformed: %w", err)
	}
	return entries, nil
}

// Refresh asks the backend to rebuild its library cache. A transport
// failure and a response with success=false are treated the same way: an
// error, and the caller leaves its state alone.
func (c *Client) Refresh(ctx context.Context) (*RefreshResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/library/refresh", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("refresh request failed: HTTP %d", resp.StatusCode)
	}

	var result RefreshResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("refresh response malformed: %w", err)
	}
	if !result.Success {
		if result.Error != "" {
			return nil, fmt.Errorf("refresh rejected by backend: %s", result.Error)
		}
		return nil, fmt.Errorf("refresh rejected by backend")
	}
	return &result, nil
}

// TriggerScan kicks off a full library scan on the backend. The response
// body is a free-form report and is discarded; only transport success
// matters to the dashboard.
func (c *Client) TriggerScan(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/scan", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("scan request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("scan request failed: HTTP %d", resp.StatusCode)
	}
	return nil
}

// ImageURL returns the processed poster URL for a record
func (c *Client) ImageURL(id string) string {
	return c.baseURL + "/api/image/" + id
}

// OriginalImageURL returns the untouched artwork URL for a record
func (c *Client) OriginalImageURL(id string) string {
	return c.baseURL + "/api/image/" + id + "/original"
}
