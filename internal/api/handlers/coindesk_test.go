package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jistud/coindesk-go/internal/apperrors"
	"github.com/jistud/coindesk-go/internal/coindesk"
	"github.com/jistud/coindesk-go/internal/testutil"
)

func TestCoinDeskHandler_Current(t *testing.T) {
	setupHandler := func(t *testing.T, feed *testutil.MockFeedClient) (*CoinDeskHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		cds := testutil.NewTestCoinDeskService(t, db, feed)
		return NewCoinDeskHandler(cds), db
	}

	t.Run("returns the raw feed document", func(t *testing.T) {
		handler, _ := setupHandler(t, testutil.NewMockFeedClient())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/coindesk", nil)
		w := httptest.NewRecorder()

		handler.Current(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var snapshot coindesk.Response
		testutil.DecodeJSONResponse(t, w, &snapshot)

		if snapshot.ChartName != "Bitcoin" {
			t.Errorf("Expected chart name Bitcoin, got %s", snapshot.ChartName)
		}
		if snapshot.Bpi["EUR"].Code != "EUR" {
			t.Errorf("Expected EUR entry, got %+v", snapshot.Bpi)
		}
	})

	t.Run("returns 502 when the feed is unavailable", func(t *testing.T) {
		feed := testutil.NewMockFeedClient().WithError(apperrors.ErrFeedUnavailable)
		handler, _ := setupHandler(t, feed)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/coindesk", nil)
		w := httptest.NewRecorder()

		handler.Current(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Expected 502, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestCoinDeskHandler_Transformed(t *testing.T) {
	setupHandler := func(t *testing.T, feed *testutil.MockFeedClient) (*CoinDeskHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		cds := testutil.NewTestCoinDeskService(t, db, feed)
		return NewCoinDeskHandler(cds), db
	}

	t.Run("returns localized name for the requested language", func(t *testing.T) {
		handler, db := setupHandler(t, testutil.NewMockFeedClient())
		testutil.NewCoin().
			WithName("Bitcoin").
			WithTranslation("zh-TW", "比特幣").
			Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/v1/transformed-coindesk", map[string]string{
			"lang": "zh-TW",
		})
		w := httptest.NewRecorder()

		handler.Transformed(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got TransformedResponse
		testutil.DecodeJSONResponse(t, w, &got)

		if got.Name != "Bitcoin" {
			t.Errorf("Expected name Bitcoin, got %s", got.Name)
		}
		if got.LocalizedName != "比特幣" {
			t.Errorf("Expected localized name 比特幣, got %s", got.LocalizedName)
		}
	})

	t.Run("falls back to chart name without a lang parameter", func(t *testing.T) {
		handler, _ := setupHandler(t, testutil.NewMockFeedClient())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/transformed-coindesk", nil)
		w := httptest.NewRecorder()

		handler.Transformed(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got TransformedResponse
		testutil.DecodeJSONResponse(t, w, &got)

		if got.LocalizedName != "Bitcoin" {
			t.Errorf("Expected localized name Bitcoin, got %s", got.LocalizedName)
		}
	})

	t.Run("renders the update time without a timezone suffix", func(t *testing.T) {
		handler, _ := setupHandler(t, testutil.NewMockFeedClient())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/transformed-coindesk", nil)
		w := httptest.NewRecorder()

		handler.Transformed(w, req)

		var got TransformedResponse
		testutil.DecodeJSONResponse(t, w, &got)

		// Local rendering of 2023-02-21T14:22:00+00:00, second precision,
		// no offset. The exact wall-clock value depends on the test host's
		// timezone so only the shape is checked.
		if len(got.UpdateTime) != len("2006-01-02T15:04:05") {
			t.Errorf("Expected naive date-time, got %s", got.UpdateTime)
		}
	})

	t.Run("returns 502 when the feed is unavailable", func(t *testing.T) {
		feed := testutil.NewMockFeedClient().WithError(apperrors.ErrFeedUnavailable)
		handler, _ := setupHandler(t, feed)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/transformed-coindesk", nil)
		w := httptest.NewRecorder()

		handler.Transformed(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Expected 502, got %d: %s", w.Code, w.Body.String())
		}
	})
}
