// Package fixer implements the rate provider port against the Fixer API as
// served through API Layer. See
// https://apilayer.com/marketplace/fixer-api for reference.
package fixer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/chiplogistics/pricing_backend/internal/apperrors"
	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/chiplogistics/pricing_backend/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the API Layer gateway in front of the Fixer API.
const DefaultBaseURL = "https://api.apilayer.com"

const defaultTimeout = 10 * time.Second

// Client fetches exchange rates from the Fixer API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ClientOption is a functional option for configuring the client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different gateway, mainly for tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Fixer API client authenticated with the given key.
func NewClient(apiKey string, options ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

var _ providers.RateProvider = (*Client)(nil)

// latestResponse mirrors the Fixer /fixer/latest payload. The API reports
// failures through the success flag rather than HTTP status codes.
type latestResponse struct {
	Success bool                       `json:"success"`
	Rates   map[string]decimal.Decimal `json:"rates"`
	Error   struct {
		Code int    `json:"code"`
		Type string `json:"type"`
	} `json:"error"`
}

// GetRate returns the exchange rate converting one unit of from into to.
// Same-currency requests short-circuit to 1 without a network call. A pair
// absent from the provider's response maps to apperrors.ErrUnconvertible;
// transport and provider-reported failures map to *apperrors.RateLookupError.
func (c *Client) GetRate(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	endpoint := fmt.Sprintf("%s/fixer/latest?%s", c.baseURL, url.Values{
		"base":    {from.String()},
		"symbols": {to.String()},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, &apperrors.RateLookupError{Err: err}
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, &apperrors.RateLookupError{Err: err}
	}
	defer resp.Body.Close()

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, &apperrors.RateLookupError{Err: fmt.Errorf("malformed rate response: %w", err)}
	}

	if !body.Success {
		return decimal.Zero, &apperrors.RateLookupError{
			Code:    body.Error.Code,
			Message: body.Error.Type,
		}
	}

	rate, ok := body.Rates[to.String()]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s to %s", apperrors.ErrUnconvertible, from, to)
	}
	return rate, nil
}
