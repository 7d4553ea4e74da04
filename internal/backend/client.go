package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"fintrack/internal/models"
)

// FinanceAPI is the read-only contract this service consumes from the
// external finance backend. Services depend on this interface, never on the
// concrete client, so aggregation can be tested against fakes.
type FinanceAPI interface {
	Transactions(ctx context.Context) ([]models.Transaction, error)
	CreditCards(ctx context.Context) ([]models.CreditCard, error)
	Forecasts(ctx context.Context) ([]models.Forecast, error)
	Categories(ctx context.Context) ([]models.Category, error)
	PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	Invoices(ctx context.Context, ref models.MonthRef) ([]models.Invoice, error)
	Profile(ctx context.Context) (*models.UserProfile, error)
	Ping(ctx context.Context) error
}

// FetchObserver receives fetch outcomes for metrics. Implemented by the
// Prometheus recorder; a no-op implementation keeps the client usable
// without metrics wiring.
type FetchObserver interface {
	ObserveFetch(resource, outcome string)
	ObserveShapeAnomaly(resource string)
}

// NopObserver discards all observations.
type NopObserver struct{}

func (NopObserver) ObserveFetch(string, string) {}
func (NopObserver) ObserveShapeAnomaly(string)  {}

// APIError is a non-2xx reply from the backend.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// IsAuthError reports whether the backend rejected the bearer credential.
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// Client is the HTTP client for the finance backend. All collection
// responses pass through DecodeCollection so downstream code sees one
// canonical slice shape regardless of how the endpoint encodes it.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   TokenProvider
	breaker  *CircuitBreaker
	observer FetchObserver
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithCircuitBreaker guards all requests with the given breaker.
func WithCircuitBreaker(cb *CircuitBreaker) ClientOption {
	return func(c *Client) { c.breaker = cb }
}

// WithObserver wires fetch metrics.
func WithObserver(o FetchObserver) ClientOption {
	return func(c *Client) { c.observer = o }
}

// NewClient builds a backend client for the given base URL.
func NewClient(baseURL string, tokens TokenProvider, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{},
		tokens:   tokens,
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.breaker != nil && c.breaker.IsOpen() {
		return nil, ErrCircuitOpen
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.recordFailure()
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordFailure()
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Only server-side failures count against the breaker; a 4xx means
		// the upstream is alive and talking.
		if resp.StatusCode >= 500 {
			c.recordFailure()
		} else {
			c.recordSuccess()
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	c.recordSuccess()
	return body, nil
}

func (c *Client) recordFailure() {
	if c.breaker != nil {
		c.breaker.RecordFailure()
	}
}

func (c *Client) recordSuccess() {
	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
}

// fetchCollection runs a GET and normalizes the body. A shape mismatch is
// logged and surfaced as an empty slice, never as an error: one endpoint
// answering garbage must not take a whole view down.
func fetchCollection[T any](ctx context.Context, c *Client, resource, path string, query url.Values) ([]T, error) {
	body, err := c.get(ctx, path, query)
	if err != nil {
		c.observer.ObserveFetch(resource, "error")
		return nil, err
	}

	col, err := DecodeCollection[T](body)
	if err != nil {
		c.observer.ObserveShapeAnomaly(resource)
		slog.Warn("backend returned unrecognized collection shape",
			"resource", resource,
			"path", path)
		return []T{}, nil
	}
	if col.Skipped > 0 {
		slog.Warn("skipped malformed records in backend collection",
			"resource", resource,
			"skipped", col.Skipped)
	}

	c.observer.ObserveFetch(resource, "success")
	return col.Records, nil
}

func (c *Client) Transactions(ctx context.Context) ([]models.Transaction, error) {
	return fetchCollection[models.Transaction](ctx, c, "transactions", "/transactions", nil)
}

func (c *Client) CreditCards(ctx context.Context) ([]models.CreditCard, error) {
	return fetchCollection[models.CreditCard](ctx, c, "credit_cards", "/credit-cards", nil)
}

func (c *Client) Forecasts(ctx context.Context) ([]models.Forecast, error) {
	return fetchCollection[models.Forecast](ctx, c, "forecasts", "/forecasts", nil)
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	return fetchCollection[models.Category](ctx, c, "categories", "/categories", nil)
}

func (c *Client) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	return fetchCollection[models.PaymentMethod](ctx, c, "payment_methods", "/payment-methods", nil)
}

// Invoices fetches invoices for one month. The backend pre-filters by the
// month and year query parameters when it supports them.
func (c *Client) Invoices(ctx context.Context, ref models.MonthRef) ([]models.Invoice, error) {
	query := url.Values{}
	query.Set("month", strconv.Itoa(int(ref.Month)))
	query.Set("year", strconv.Itoa(ref.Year))
	return fetchCollection[models.Invoice](ctx, c, "invoices", "/invoices", query)
}

// Profile fetches the authenticated user's display profile. Accepts both a
// bare object and a {data: {...}} envelope.
func (c *Client) Profile(ctx context.Context) (*models.UserProfile, error) {
	body, err := c.get(ctx, "/auth/profile", nil)
	if err != nil {
		c.observer.ObserveFetch("profile", "error")
		return nil, err
	}

	var profile models.UserProfile
	if err := json.Unmarshal(body, &profile); err == nil && profile != (models.UserProfile{}) {
		c.observer.ObserveFetch("profile", "success")
		return &profile, nil
	}

	var env struct {
		Data models.UserProfile `json:"data"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(body), &env); err != nil {
		c.observer.ObserveShapeAnomaly("profile")
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}

	c.observer.ObserveFetch("profile", "success")
	return &env.Data, nil
}

// Ping probes backend reachability for the health endpoint. It carries no
// credential; any HTTP answer counts as reachable, including auth
// rejections.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/categories", nil)
	if err != nil {
		return fmt.Errorf("failed to build backend request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	resp.Body.Close()
	return nil
}
