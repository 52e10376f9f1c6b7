package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CredentialsPath is the server endpoint that reports geocoding provider availability.
const CredentialsPath = "/api/config/geocoding"

const maxResponseBytes = 64 << 10

var (
	// ErrUnexpectedStatus is returned for non-2xx responses.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrMalformedResponse is returned when the body is not the expected JSON document.
	ErrMalformedResponse = errors.New("malformed credentials response")
)

// ProviderStatus is one provider entry of the availability document.
type ProviderStatus struct {
	Available bool   `json:"available"`
	APIKey    string `json:"apiKey,omitempty"`
}

// Key returns the API key when the provider is available, or nil.
func (p ProviderStatus) Key() *string {
	if !p.Available || p.APIKey == "" {
		return nil
	}
	key := p.APIKey
	return &key
}

// Availability is the body served at CredentialsPath.
type Availability struct {
	Google     *ProviderStatus `json:"google"`
	LocationIQ *ProviderStatus `json:"locationiq"`
}

// Client fetches provider availability from the map server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures Client behaviour.
type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client, primarily for tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient constructs a Client for the server at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAvailability issues a single GET for the availability document. Both
// provider entries must be present for the response to be accepted.
func (c *Client) FetchAvailability(ctx context.Context) (Availability, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+CredentialsPath, nil)
	if err != nil {
		return Availability{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Availability{}, fmt.Errorf("request credentials: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return Availability{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body Availability
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	if err := dec.Decode(&body); err != nil {
		return Availability{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Availability{}, fmt.Errorf("%w: trailing data after document", ErrMalformedResponse)
	}
	if body.Google == nil || body.LocationIQ == nil {
		return Availability{}, fmt.Errorf("%w: missing provider entry", ErrMalformedResponse)
	}

	return body, nil
}
