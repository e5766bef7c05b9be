package topics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// exportPath is the endpoint a running Bunka server serves its current
// model export on.
const exportPath = "/export"

// Client fetches exports from a running Bunka server over HTTP.
type Client struct {
	BaseURL string
	http    *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Export fetches and decodes the server's current export.
func (c *Client) Export(ctx context.Context) (*Export, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+exportPath, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseError(resp)
	}

	ex, err := Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return ex, nil
}

// parseError maps an HTTP error response to the appropriate error type.
func parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	// Try to extract a message from the JSON body.
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)

	if payload.Message == "" {
		payload.Message = http.StatusText(resp.StatusCode)
	}

	base := APIError{
		StatusCode: resp.StatusCode,
		Message:    payload.Message,
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &AuthenticationError{APIError: base}
	case http.StatusNotFound:
		return &NotFoundError{APIError: base}
	default:
		return &base
	}
}
