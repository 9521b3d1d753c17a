package coindesk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jistud/coindesk-go/internal/apperrors"
)

// DefaultURL is the fixed external price-feed endpoint.
const DefaultURL = "https://kengp3.github.io/blog/coindesk.json"

// DefaultTimeout bounds the single fetch attempt. The upstream feed is a
// static document; anything slower than this is treated as unavailable.
const DefaultTimeout = 10 * time.Second

// Client fetches the current price snapshot from the CoinDesk feed.
// Implementations perform exactly one attempt per call: no retry,
// no caching.
type Client interface {
	Current(ctx context.Context) (Response, error)
}

// HTTPClient is the production Client backed by net/http.
type HTTPClient struct {
	url        string
	httpClient *http.Client
}

// NewHTTPClient creates a CoinDesk feed client for the given endpoint.
// An empty url falls back to DefaultURL; a non-positive timeout falls
// back to DefaultTimeout.
func NewHTTPClient(url string, timeout time.Duration) *HTTPClient {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Current issues one GET to the feed endpoint and parses the JSON body.
//
// Failure taxonomy:
//   - apperrors.ErrFeedUnavailable: transport error or non-2xx status
//   - apperrors.ErrFeedEmptyResponse: 2xx with no body
//   - apperrors.ErrFeedMalformed: body present but not valid JSON, or
//     missing the structure the transformation depends on
func (c *HTTPClient) Current(ctx context.Context) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Response{}, fmt.Errorf("failed to build feed request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", apperrors.ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Response{}, fmt.Errorf("%w: status %d", apperrors.ErrFeedUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", apperrors.ErrFeedUnavailable, err)
	}

	if len(data) == 0 {
		return Response{}, apperrors.ErrFeedEmptyResponse
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, fmt.Errorf("%w: %v", apperrors.ErrFeedMalformed, err)
	}

	if response.ChartName == "" && response.Bpi == nil {
		return Response{}, fmt.Errorf("%w: missing chartName and bpi", apperrors.ErrFeedMalformed)
	}

	return response, nil
}
