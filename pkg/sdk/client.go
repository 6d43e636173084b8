package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/floorwise/searchiq"
)

const defaultTimeout = 10 * time.Second

// Option configures the Client.
type Option interface {
	apply(*Client)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*Client)

func (f optionFunc) apply(c *Client) { f(c) }

// WithAPIKey sets the bearer token sent with every request.
func WithAPIKey(key string) Option {
	return optionFunc(func(c *Client) {
		c.apiKey = key
	})
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *Client) {
		c.http = hc
	})
}

// Client is the searchiq API client.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a searchiq API client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o.apply(c)
	}
	return c
}

// Normalize cleans a raw search query for the given locale.
func (c *Client) Normalize(ctx context.Context, query, locale string) (searchiq.NormalizedQuery, error) {
	var result searchiq.NormalizedQuery
	err := c.post(ctx, "/api/v1/normalize", map[string]string{
		"query":  query,
		"locale": locale,
	}, &result)
	return result, err
}

// NormalizeBatch deduplicates a query log by normalized handle.
func (c *Client) NormalizeBatch(ctx context.Context, queries []string, locale string) (searchiq.BatchResult, error) {
	var result searchiq.BatchResult
	err := c.post(ctx, "/api/v1/normalize/batch", map[string]any{
		"queries": queries,
		"locale":  locale,
	}, &result)
	return result, err
}

// Analyze returns the detected intent, brands, colors, room, and price
// constraints of a raw query.
func (c *Client) Analyze(ctx context.Context, query string) (searchiq.QueryAnalysis, error) {
	var result searchiq.QueryAnalysis
	err := c.post(ctx, "/api/v1/analyze", map[string]string{"query": query}, &result)
	return result, err
}

// Search runs an intelligent product search.
func (c *Client) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	var result SearchResult
	err := c.post(ctx, "/api/v1/search", req, &result)
	return result, err
}

// Variations returns the fan-out search strings for a raw query.
func (c *Client) Variations(ctx context.Context, query string) ([]string, error) {
	var resp variationsResponse
	if err := c.post(ctx, "/api/v1/variations", map[string]string{"query": query}, &resp); err != nil {
		return nil, err
	}
	return resp.Variations, nil
}

// Related returns search strings that surface products similar to p.
func (c *Client) Related(ctx context.Context, p searchiq.Product) ([]string, error) {
	var resp relatedResponse
	if err := c.post(ctx, "/api/v1/related", map[string]searchiq.Product{"product": p}, &resp); err != nil {
		return nil, err
	}
	return resp.Queries, nil
}

// ResolveCollection matches a query against the stored collections.
func (c *Client) ResolveCollection(ctx context.Context, query, locale string) (ResolveResult, error) {
	var result ResolveResult
	err := c.post(ctx, "/api/v1/collections/resolve", map[string]string{
		"query":  query,
		"locale": locale,
	}, &result)
	return result, err
}

// CreateCollection registers a collection under the given handle.
func (c *Client) CreateCollection(ctx context.Context, handle, title string) (Collection, error) {
	var result Collection
	err := c.do(ctx, http.MethodPut, "/api/v1/collections/"+url.PathEscape(handle),
		map[string]string{"title": title}, &result)
	return result, err
}

// SyncCollections pulls the live storefront's collection listing into the
// registry and returns the number of collections written.
func (c *Client) SyncCollections(ctx context.Context) (int, error) {
	var resp syncResponse
	if err := c.post(ctx, "/api/v1/collections/sync", struct{}{}, &resp); err != nil {
		return 0, err
	}
	return resp.Synced, nil
}

// GetCollection retrieves a collection by handle.
func (c *Client) GetCollection(ctx context.Context, handle string) (Collection, error) {
	var result Collection
	err := c.do(ctx, http.MethodGet, "/api/v1/collections/"+url.PathEscape(handle), nil, &result)
	return result, err
}

// ListCollections returns all stored collections.
func (c *Client) ListCollections(ctx context.Context) ([]Collection, error) {
	var resp collectionListResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/collections", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Collections, nil
}

// DeleteCollection removes a collection by handle.
func (c *Client) DeleteCollection(ctx context.Context, handle string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/collections/"+url.PathEscape(handle), nil, nil)
}

// Health checks the health of all server components. A degraded server
// answers 503 but still reports per-component checks, so the status body
// is decoded regardless of the HTTP code.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("searchiq: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("searchiq: GET /health: %w", err)
	}
	defer resp.Body.Close()

	var result HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return HealthStatus{}, fmt.Errorf("searchiq: decode response: %w", err)
	}
	return result, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("searchiq: encode request: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, http.NoBody)
	}
	if err != nil {
		return fmt.Errorf("searchiq: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("searchiq: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if decErr := json.NewDecoder(resp.Body).Decode(apiErr); decErr != nil {
			apiErr.Code = CodeInternalError
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("searchiq: decode response: %w", err)
	}
	return nil
}
