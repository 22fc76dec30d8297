// Package api provides the HTTP client for the platform's persistence API and
// organization directory.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the platform backend.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates an API client for the given base URL.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateProperty submits a new property and returns it as persisted.
func (c *Client) CreateProperty(ctx context.Context, payload *SubmissionPayload) (*RawProperty, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	var raw RawProperty
	if err := c.do(ctx, "create property", http.MethodPost, "/api/properties", payload, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// UpdateProperty replaces an existing property.
func (c *Client) UpdateProperty(ctx context.Context, id string, payload *SubmissionPayload) (*RawProperty, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	var raw RawProperty
	if err := c.do(ctx, "update property", http.MethodPut, "/api/properties/"+id, payload, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// GetProperty fetches one property in whatever schema it was persisted under.
func (c *Client) GetProperty(ctx context.Context, id string) (*RawProperty, error) {
	var raw RawProperty
	if err := c.do(ctx, "fetch property", http.MethodGet, "/api/properties/"+id, nil, &raw); err != nil {
		return nil, &LoadError{ID: id, Err: err}
	}
	return &raw, nil
}

// UpdatePropertyStatus changes only the workflow status of a property.
func (c *Client) UpdatePropertyStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, "update status", http.MethodPatch, "/api/properties/"+id+"/status", body, nil)
}

// DeleteProperty removes a property.
func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	return c.do(ctx, "delete property", http.MethodDelete, "/api/properties/"+id, nil, nil)
}

// ListOrganizations returns up to limit organization directory entries.
func (c *Client) ListOrganizations(ctx context.Context, limit int) ([]Organization, error) {
	path := fmt.Sprintf("/api/organizations?limit=%d", limit)
	var orgs []Organization
	if err := c.do(ctx, "list organizations", http.MethodGet, path, nil, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// do executes one request, decoding the response into result when non-nil.
// Failures come back as *PersistenceError so callers can tell an unreachable
// backend from a rejected payload.
func (c *Client) do(ctx context.Context, op, method, path string, body, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &PersistenceError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &PersistenceError{Op: op, StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(data))}
	}

	if result == nil {
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(result); err != nil {
		return fmt.Errorf("%s: decoding response: %w", op, err)
	}
	return nil
}
