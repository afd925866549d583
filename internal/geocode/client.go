package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"phonelookup_backend/platform/logger"
)

const openCageURL = "https://api.opencagedata.com/geocode/v1/json"

// Client is the HTTP client for the OpenCage geocoding API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

// NewClient creates a new OpenCage API client. The pipeline imposes no
// timeout of its own, so the client carries one.
func NewClient(apiKey string, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    openCageURL,
		apiKey:     apiKey,
		log:        log,
	}
}

// Geocode resolves a free-form place query to a list of matches.
// An empty list with a nil error means the query produced no results.
func (c *Client) Geocode(ctx context.Context, query string) ([]Match, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.apiKey)
	params.Set("limit", "1")
	params.Set("no_annotations", "1")

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("opencage request failed", "error", err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Success - continue to decode
	case http.StatusUnauthorized, http.StatusForbidden:
		c.log.Error("opencage auth rejected", "status", resp.StatusCode)
		return nil, fmt.Errorf("unauthorized: invalid API key")
	case http.StatusPaymentRequired, http.StatusTooManyRequests:
		c.log.Warn("opencage quota exceeded", "status", resp.StatusCode)
		return nil, fmt.Errorf("rate limited: status %d", resp.StatusCode)
	default:
		c.log.Error("opencage upstream error", "status", resp.StatusCode)
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var payload openCageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error("opencage decode failed", "error", err)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	matches := make([]Match, 0, len(payload.Results))
	for _, result := range payload.Results {
		matches = append(matches, Match{
			Latitude:  result.Geometry.Lat,
			Longitude: result.Geometry.Lng,
			Formatted: result.Formatted,
		})
	}

	return matches, nil
}
