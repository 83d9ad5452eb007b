package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/abelbrown/bookfinder/internal/book"
)

// DefaultBaseURL is the local development backend.
const DefaultBaseURL = "http://localhost:8000"

// maxBody caps how much of a response we read.
const maxBody = 10 << 20

// Client is the HTTP Searcher.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient returns a Client for baseURL (DefaultBaseURL if empty).
// A zero timeout means 30s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 4),
	}
}

// BaseURL returns the backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Search posts req to /api/search. There is no retry: a failed request is
// simply a failed request.
func (c *Client) Search(ctx context.Context, req Request) (*book.SearchResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("search: failed to marshal request: %w", err)
	}

	var out book.SearchResponse
	if err := c.do(ctx, http.MethodPost, "/api/search", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Moods fetches the backend's mood vocabulary from GET /api/moods.
func (c *Client) Moods(ctx context.Context) ([]string, error) {
	var out struct {
		Moods []string `json:"moods"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/moods", nil, &out); err != nil {
		return nil, err
	}
	return out.Moods, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("search: rate limiter wait failed: %w", err)
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("search: failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("search: request cancelled: %w", ctx.Err())
		}
		return fmt.Errorf("search: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("search: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w %d from %s %s", ErrBadStatus, resp.StatusCode, method, path)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("search: failed to parse response: %w", err)
	}
	return nil
}
