package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/pkg/logger"
)

// ProductClient checks item ids against the product service over HTTP
type ProductClient struct {
	baseURL string
	client  *http.Client
	breaker *CircuitBreaker
}

var _ domain.ProductValidator = (*ProductClient)(nil)

// NewProductClient creates a client for the product service at baseURL.
// Products are looked up at {baseURL}/products/{id}.
func NewProductClient(baseURL string) *ProductClient {
	return NewProductClientWithHTTPClient(baseURL, &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

// NewProductClientWithHTTPClient creates a client using a custom http.Client
func NewProductClientWithHTTPClient(baseURL string, httpClient *http.Client) *ProductClient {
	return &ProductClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		breaker: NewCircuitBreaker("product-service", 5, 30*time.Second),
	}
}

// Exists reports whether the product service knows the item. A 404 means
// false; any other non-2xx status or transport failure is an error. Calls
// fail fast while the circuit breaker is open.
func (c *ProductClient) Exists(ctx context.Context, itemID uint) (bool, error) {
	var found bool
	err := c.breaker.Call(func() error {
		var err error
		found, err = c.lookup(ctx, itemID)
		return err
	}, nil)
	if errors.Is(err, ErrCircuitOpen) {
		logger.Warn(ctx).Uint("item_id", itemID).Msg("Product service circuit open, rejecting validation")
		return false, fmt.Errorf("%w: %v", domain.ErrProductService, err)
	}
	return found, err
}

func (c *ProductClient) lookup(ctx context.Context, itemID uint) (bool, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("%w: build request: %v", domain.ErrProductService, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error(ctx).Err(err).Uint("item_id", itemID).Msg("Product service request failed")
		return false, fmt.Errorf("%w: validate product %d: %v", domain.ErrProductService, itemID, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		logger.Warn(ctx).Uint("item_id", itemID).Msg("Product not found")
		return false, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	default:
		return false, fmt.Errorf("%w: validate product %d: status %d", domain.ErrProductService, itemID, resp.StatusCode)
	}
}
