package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"atlantis/internal/model"
)

// Endpoint paths relative to the API base, matching the upstream gateway.
const (
	pathClientDetails = "/getClientDetails"
	pathBooks         = "/getBooks"
	pathOrders        = "/getOrdersbyClient"
)

// UpstreamError reports a failed or malformed response from one of the
// storefront's upstream endpoints.
type UpstreamError struct {
	Endpoint string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Client is a thin wrapper over the three storefront endpoints.
// No retries and no timeouts beyond the injected http.Client's.
type Client struct {
	base string
	hc   *http.Client
}

// New returns a Client for the given API base URL, e.g.
// "https://example-api.amazonaws.com/prod". A nil http.Client gets a
// default with a 30s timeout.
func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{base: base, hc: hc}
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	u := c.base + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{Endpoint: endpoint, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: fmt.Errorf("read body: %w", err)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// GetCustomer fetches one client record by id. Returns nil (no error)
// when the endpoint answered but knows no such client.
func (c *Client) GetCustomer(ctx context.Context, clientID string) (*model.Customer, error) {
	var payload struct {
		Customer *model.Customer `json:"customer"`
	}
	q := url.Values{"clientId": []string{clientID}}
	if err := c.getJSON(ctx, pathClientDetails, q, &payload); err != nil {
		return nil, err
	}
	return payload.Customer, nil
}

// GetBooks fetches the raw book catalog. Entries stay as maps because
// the catalog schema carries several field-name variants; the catalog
// package resolves them. Fails with UpstreamError when the books field
// is absent or not a sequence.
func (c *Client) GetBooks(ctx context.Context) ([]map[string]any, error) {
	var payload map[string]any
	if err := c.getJSON(ctx, pathBooks, nil, &payload); err != nil {
		return nil, err
	}
	raw, ok := payload["books"]
	if !ok {
		return nil, &UpstreamError{Endpoint: pathBooks, Err: fmt.Errorf("payload has no books field")}
	}
	seq, ok := raw.([]any)
	if !ok {
		return nil, &UpstreamError{Endpoint: pathBooks, Err: fmt.Errorf("books field is %T, not a sequence", raw)}
	}
	entries := make([]map[string]any, 0, len(seq))
	for _, e := range seq {
		if m, ok := e.(map[string]any); ok {
			entries = append(entries, m)
		}
	}
	return entries, nil
}

// GetOrders fetches the raw orders payload for a customer. The query
// parameter is clientId; one historical upstream revision used idcliente,
// which this client deliberately does not send. The payload is returned
// undecoded because the sequence location drifted across revisions — the
// orders package unwraps it.
func (c *Client) GetOrders(ctx context.Context, customerID string) (any, error) {
	var payload any
	q := url.Values{"clientId": []string{customerID}}
	if err := c.getJSON(ctx, pathOrders, q, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
