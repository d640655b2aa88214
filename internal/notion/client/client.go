// Package client provides the HTTP client for the Notion API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"itinerary_backend/internal/notion/record"
	"itinerary_backend/platform/config"
	"itinerary_backend/platform/logger"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 64 << 10
)

// APIError is the error object returned by the Notion API.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("notion: status %d", e.Status)
	}
	return fmt.Sprintf("notion: %s (status %d): %s", e.Code, e.Status, e.Message)
}

// Client is the HTTP client for the Notion API.
// A single static integration token is presented on every request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	version    string
	limiter    *rate.Limiter
	log        *logger.Logger
}

// New creates a new Notion API client.
func New(cfg config.NotionConfig, log *logger.Logger) *Client {
	timeout := cfg.GetNotionTimeout()
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if rps := cfg.GetNotionRequestsPerSecond(); rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.GetNotionBaseURL(),
		token:      cfg.GetNotionToken(),
		version:    cfg.GetNotionVersion(),
		limiter:    limiter,
		log:        log,
	}
}

type queryResponse struct {
	Results    []record.Record `json:"results"`
	HasMore    bool            `json:"has_more"`
	NextCursor *string         `json:"next_cursor"`
}

type createRequest struct {
	Parent     record.Parent     `json:"parent"`
	Properties record.Properties `json:"properties"`
}

type updateRequest struct {
	Properties record.Properties `json:"properties,omitempty"`
	Archived   *bool             `json:"archived,omitempty"`
}

// Query returns the first page of results of a database query.
func (c *Client) Query(ctx context.Context, collectionID string) ([]record.Record, error) {
	var resp queryResponse
	path := "/v1/databases/" + url.PathEscape(collectionID) + "/query"
	if err := c.do(ctx, "query", http.MethodPost, path, struct{}{}, &resp); err != nil {
		return nil, err
	}

	if resp.HasMore {
		c.log.Warn("notion query truncated to first page", "database_id", collectionID, "results", len(resp.Results))
	}
	if resp.Results == nil {
		resp.Results = []record.Record{}
	}
	return resp.Results, nil
}

// Get retrieves a single page. The Notion pages endpoint is addressed by page
// id alone; collectionID is only recorded in logs.
func (c *Client) Get(ctx context.Context, collectionID, recordID string) (*record.Record, error) {
	var rec record.Record
	if err := c.do(ctx, "get", http.MethodGet, "/v1/pages/"+url.PathEscape(recordID), nil, &rec); err != nil {
		c.log.Debug("notion page lookup failed", "database_id", collectionID, "page_id", recordID)
		return nil, err
	}
	return resultOrNil(&rec), nil
}

// Create adds a page to a database.
func (c *Client) Create(ctx context.Context, collectionID string, props record.Properties) (*record.Record, error) {
	body := createRequest{
		Parent:     record.Parent{DatabaseID: collectionID},
		Properties: props,
	}

	var rec record.Record
	if err := c.do(ctx, "create", http.MethodPost, "/v1/pages", body, &rec); err != nil {
		return nil, err
	}
	return resultOrNil(&rec), nil
}

// Update patches the properties of a page.
func (c *Client) Update(ctx context.Context, recordID string, props record.Properties) (*record.Record, error) {
	var rec record.Record
	if err := c.do(ctx, "update", http.MethodPatch, "/v1/pages/"+url.PathEscape(recordID), updateRequest{Properties: props}, &rec); err != nil {
		return nil, err
	}
	return resultOrNil(&rec), nil
}

// Archive moves a page to the trash.
func (c *Client) Archive(ctx context.Context, recordID string) (*record.Record, error) {
	archived := true
	var rec record.Record
	if err := c.do(ctx, "archive", http.MethodPatch, "/v1/pages/"+url.PathEscape(recordID), updateRequest{Archived: &archived}, &rec); err != nil {
		return nil, err
	}
	return resultOrNil(&rec), nil
}

// Ping checks that the API is reachable and the token is accepted.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "ping", http.MethodGet, "/v1/users/me", nil, nil)
}

// resultOrNil maps an empty response body to "no result".
func resultOrNil(rec *record.Record) *record.Record {
	if rec.ID == "" {
		return nil
	}
	return rec
}

func (c *Client) do(ctx context.Context, operation, method, path string, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.RemoteError(operation, path, err)
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	c.log.RemoteCall(operation, path, resp.StatusCode, float64(time.Since(start).Milliseconds()))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeAPIError(resp)
		c.log.RemoteError(operation, path, apiErr)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.log.RemoteError(operation, path, err)
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(data, apiErr)
	apiErr.Status = resp.StatusCode
	return apiErr
}
