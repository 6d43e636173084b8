package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/floorwise/searchiq"
	"github.com/floorwise/searchiq/internal/domain"
	"github.com/floorwise/searchiq/internal/metrics"
)

// Client talks to a Shopify-style storefront: the predictive search
// endpoint for products and the collections listing for the catalog.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// Config holds the storefront connection settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewClient creates a storefront client.
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  cfg.Logger,
	}
}

// Suggest queries the predictive search endpoint for products matching a
// single search term.
func (c *Client) Suggest(ctx context.Context, query string, limit int) ([]searchiq.Product, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("resources[type]", "product")
	q.Set("resources[limit]", strconv.Itoa(limit))

	var resp suggestResponse
	if err := c.getJSON(ctx, "suggest", "/search/suggest.json?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	products := make([]searchiq.Product, 0, len(resp.Resources.Results.Products))
	for _, p := range resp.Resources.Results.Products {
		products = append(products, p.toProduct())
	}
	return products, nil
}

// Collections pages through the storefront collections listing.
func (c *Client) Collections(ctx context.Context) ([]searchiq.Collection, error) {
	var collections []searchiq.Collection

	for page := 1; ; page++ {
		var resp collectionsResponse
		path := fmt.Sprintf("/collections.json?limit=250&page=%d", page)
		if err := c.getJSON(ctx, "collections", path, &resp); err != nil {
			return nil, err
		}
		if len(resp.Collections) == 0 {
			break
		}
		for _, col := range resp.Collections {
			collections = append(collections, searchiq.Collection{
				Handle: col.Handle,
				Title:  col.Title,
			})
		}
	}

	return collections, nil
}

// HealthCheck verifies the storefront responds on the collections listing.
func (c *Client) HealthCheck(ctx context.Context) error {
	var resp collectionsResponse
	return c.getJSON(ctx, "collections", "/collections.json?limit=1", &resp)
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)

	if err != nil {
		metrics.StorefrontRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("storefront request %s: %v: %w", path, err, domain.ErrSourceUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		metrics.StorefrontRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Storefront returned non-200",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return fmt.Errorf("storefront status %d for %s: %w", resp.StatusCode, path, domain.ErrSourceUnavailable)
	}

	metrics.StorefrontRequestsTotal.WithLabelValues(endpoint, "200").Inc()
	metrics.StorefrontRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode storefront response %s: %v: %w", path, err, domain.ErrSourceUnavailable)
	}
	return nil
}
