package testutil

import (
	"database/sql"
	"testing"

	"github.com/jistud/coindesk-go/internal/coindesk"
	"github.com/jistud/coindesk-go/internal/repository"
	"github.com/jistud/coindesk-go/internal/service"
)

func NewTestCoinService(t *testing.T, db *sql.DB) *service.CoinService {
	t.Helper()

	coinRepo := repository.NewCoinRepository(db)
	translationRepo := repository.NewTranslationRepository(db)

	return service.NewCoinService(
		db,
		coinRepo,
		translationRepo,
	)
}

// NewTestCoinDeskService creates a CoinDeskService backed by the given
// feed client, typically a MockFeedClient, so tests never hit the
// real endpoint.
func NewTestCoinDeskService(t *testing.T, db *sql.DB, feed coindesk.Client) *service.CoinDeskService {
	t.Helper()

	return service.NewCoinDeskService(feed, NewTestCoinService(t, db))
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}
