package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/misoniwath/Omega-coffee-order/internal/catalog"
	"github.com/misoniwath/Omega-coffee-order/internal/orders"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// APIError is a non-2xx answer from the order relay.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("order api: status %d: %s", e.Status, e.Message)
}

type SubmitResult struct {
	Simulated bool
}

// Client talks to the order relay HTTP API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *Client) FetchCatalog(ctx context.Context) (*catalog.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/catalog", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var m catalog.Menu
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return catalog.FromMenu(m)
}

func (c *Client) SubmitOrder(ctx context.Context, p orders.Payload) (SubmitResult, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return SubmitResult{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/order", bytes.NewReader(body))
	if err != nil {
		return SubmitResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return SubmitResult{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return SubmitResult{}, decodeAPIError(resp)
	}

	var out struct {
		Success   bool `json:"success"`
		Simulated bool `json:"simulated"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return SubmitResult{}, fmt.Errorf("decode order response: %w", err)
	}
	if !out.Success {
		return SubmitResult{}, &APIError{Status: resp.StatusCode, Message: "order not accepted"}
	}
	return SubmitResult{Simulated: out.Simulated}, nil
}

func decodeAPIError(resp *http.Response) error {
	var e struct {
		Error string `json:"error"`
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if json.Unmarshal(b, &e) != nil || e.Error == "" {
		e.Error = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: e.Error}
}
