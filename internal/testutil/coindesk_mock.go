package testutil

import (
	"context"

	"github.com/jistud/coindesk-go/internal/coindesk"
)

// MockFeedClient is a mock implementation of coindesk.Client for testing.
// It returns predefined test data instead of making actual feed calls.
type MockFeedClient struct {
	// MockResponse is the response to return from Current
	MockResponse coindesk.Response
	// MockError is the error to return from Current
	MockError error
	// FetchCount tracks how many times Current was called
	FetchCount int
}

// NewMockFeedClient creates a new mock feed client with default test data.
func NewMockFeedClient() *MockFeedClient {
	return &MockFeedClient{
		MockResponse: CreateMockFeedResponse(),
		MockError:    nil,
		FetchCount:   0,
	}
}

// Current mocks the feed fetch with predefined test data.
// It returns the configured MockResponse and MockError.
func (m *MockFeedClient) Current(_ context.Context) (coindesk.Response, error) {
	m.FetchCount++
	if m.MockError != nil {
		return coindesk.Response{}, m.MockError
	}
	return m.MockResponse, nil
}

// WithError configures the mock to return the specified error.
func (m *MockFeedClient) WithError(err error) *MockFeedClient {
	m.MockError = err
	return m
}

// WithResponse configures the mock to return the specified response.
func (m *MockFeedClient) WithResponse(resp coindesk.Response) *MockFeedClient {
	m.MockResponse = resp
	return m
}

// WithChartName configures the chart name of the mock response.
func (m *MockFeedClient) WithChartName(name string) *MockFeedClient {
	m.MockResponse.ChartName = name
	return m
}

// WithUpdatedISO configures the ISO update timestamp of the mock response.
func (m *MockFeedClient) WithUpdatedISO(updatedISO string) *MockFeedClient {
	m.MockResponse.Time.UpdatedISO = updatedISO
	return m
}

// CreateMockFeedResponse creates a mock feed document mirroring the
// real endpoint's shape, suitable for most transformation tests.
func CreateMockFeedResponse() coindesk.Response {
	return coindesk.Response{
		Time: coindesk.TimeInfo{
			Updated:    "Feb 21, 2023 14:22:00 UTC",
			UpdatedISO: "2023-02-21T14:22:00+00:00",
			UpdatedUK:  "Feb 21, 2023 at 14:22 GMT",
		},
		Disclaimer: "This data was produced from the CoinDesk Bitcoin Price Index (USD).",
		ChartName:  "Bitcoin",
		Bpi: map[string]coindesk.CurrencyInfo{
			"USD": {
				Code:        "USD",
				Symbol:      "&#36;",
				Rate:        "24,870.9308",
				Description: "United States Dollar",
				RateFloat:   24870.9308,
			},
			"GBP": {
				Code:        "GBP",
				Symbol:      "&pound;",
				Rate:        "20,648.0489",
				Description: "British Pound Sterling",
				RateFloat:   20648.0489,
			},
			"EUR": {
				Code:        "EUR",
				Symbol:      "&euro;",
				Rate:        "24,105.6403",
				Description: "Euro",
				RateFloat:   24105.6403,
			},
		},
	}
}
