package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cargohost/backend/internal/domain"
)

// DefaultEndpoint is the plans endpoint used when none is configured.
const DefaultEndpoint = "http://127.0.0.1:4001/api/plans"

// maxBody caps how much of the plans response is read.
const maxBody = 1 << 20

// ErrUnsuccessful is returned when the endpoint answers with success=false.
var ErrUnsuccessful = errors.New("plans endpoint reported failure")

// Fetcher retrieves the current plan list.
type Fetcher interface {
	FetchPlans(ctx context.Context) ([]domain.Plan, error)
}

// HTTPFetcher fetches plans with a single GET to a fixed URL. It sends no
// credentials or query parameters and never retries.
type HTTPFetcher struct {
	url    string
	client *http.Client
}

// NewHTTPFetcher creates a fetcher for url. A nil client means http.DefaultClient.
func NewHTTPFetcher(url string, client *http.Client) *HTTPFetcher {
	if url == "" {
		url = DefaultEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{url: url, client: client}
}

// URL returns the endpoint this fetcher calls.
func (f *HTTPFetcher) URL() string {
	return f.url
}

// FetchPlans implements Fetcher.
func (f *HTTPFetcher) FetchPlans(ctx context.Context) ([]domain.Plan, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build plans request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plans: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("plans endpoint returned %s", resp.Status)
	}

	var body domain.PlansResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode plans response: %w", err)
	}
	if !body.Success {
		return nil, ErrUnsuccessful
	}
	if body.Plans == nil {
		body.Plans = []domain.Plan{}
	}
	return body.Plans, nil
}
