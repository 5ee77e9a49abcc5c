// Package client is the storefront's HTTP client for the flower shop API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"flower-shop/internal/model"

	"github.com/rs/zerolog"
)

// Client calls the flower shop API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates an API client for the given base URL (e.g. http://localhost:5000).
func New(baseURL string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "api-client").Logger(),
	}
}

// Products retrieves catalogue products matching the filter.
func (c *Client) Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Featured {
		query.Set("featured", "true")
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	endpoint := c.baseURL + "/api/products"
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var products []model.Product
	if err := c.get(ctx, endpoint, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product retrieves a single product by id.
func (c *Client) Product(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := c.get(ctx, c.baseURL+"/api/products/"+url.PathEscape(id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// PlaceOrder submits the checkout request and returns the created order.
// The returned order id identifies the confirmation view; a "mem-" prefix
// means the server recorded it in its in-memory fallback.
func (c *Client) PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, c.apiError(resp)
	}

	var order model.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}

	c.logger.Info().
		Str("order_id", order.ID).
		Int64("total_amount", order.TotalAmount).
		Msg("order placed")

	return &order, nil
}

// Order retrieves a placed order by id.
func (c *Client) Order(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	if err := c.get(ctx, c.baseURL+"/api/orders/"+url.PathEscape(id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Health probes the API liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

// get performs a GET request and decodes a 200 response into out.
func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.apiError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// apiError turns a non-2xx response into an error carrying the server's
// error payload when one is present.
func (c *Client) apiError(resp *http.Response) error {
	var errResp model.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("api error (status %d): %s: %s", resp.StatusCode, errResp.Error, errResp.Message)
	}
	return fmt.Errorf("api error: unexpected status %d", resp.StatusCode)
}
