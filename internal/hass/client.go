package hass

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the HTTP client timeout used when the configuration
// does not override it. A hung upstream call stalls the whole serve loop,
// so the timeout is the only bound on a single request.
const DefaultTimeout = 15 * time.Second

// Client talks to one Home Assistant instance. It is safe to share across
// sequential requests; it holds no mutable state beyond the http.Client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL and long-lived access
// token. A trailing slash on the base URL is stripped. A zero timeout
// selects DefaultTimeout.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// call performs one REST call against <baseURL>/api/<path> and returns the
// raw response body. Every failure mode (building the request, transport,
// non-2xx status, reading the body) comes back as an *UpstreamError.
func (c *Client) call(ctx context.Context, method, path string, body any) ([]byte, error) {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &UpstreamError{Op: op, Err: fmt.Errorf("encoding request body: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/"+path, reader)
	if err != nil {
		return nil, &UpstreamError{Op: op, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Op: op, Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			Op:  op,
			Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody))),
		}
	}

	return respBody, nil
}

// get performs a GET call and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	body, err := c.call(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &UpstreamError{Op: "GET " + path, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// States fetches the current state of every entity.
func (c *Client) States(ctx context.Context) ([]EntityState, error) {
	var states []EntityState
	if err := c.get(ctx, "states", &states); err != nil {
		return nil, err
	}
	return states, nil
}

// AreaRegistry fetches the area registry.
func (c *Client) AreaRegistry(ctx context.Context) ([]Area, error) {
	var areas []Area
	if err := c.get(ctx, "config/area_registry", &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

// DeviceRegistry fetches the device registry.
func (c *Client) DeviceRegistry(ctx context.Context) ([]Device, error) {
	var devices []Device
	if err := c.get(ctx, "config/device_registry", &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// EntityRegistry fetches the entity registry.
func (c *Client) EntityRegistry(ctx context.Context) ([]Entity, error) {
	var entities []Entity
	if err := c.get(ctx, "config/entity_registry", &entities); err != nil {
		return nil, err
	}
	return entities, nil
}

// CallService invokes POST /api/services/<domain>/<service> with the given
// payload. The response body (a list of changed states) is discarded; only
// success or failure matters to the callers.
func (c *Client) CallService(ctx context.Context, domain, service string, data map[string]any) error {
	path := fmt.Sprintf("services/%s/%s", domain, service)
	_, err := c.call(ctx, http.MethodPost, path, data)
	return err
}
