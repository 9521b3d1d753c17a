package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jistud/coindesk-go/internal/coindesk"
	"github.com/jistud/coindesk-go/internal/model"
)

// CoinDeskService combines the external price feed with coin directory
// lookups to build the localized, timestamped transformed response.
type CoinDeskService struct {
	feed        coindesk.Client
	coinService *CoinService
}

// NewCoinDeskService creates a new CoinDeskService with the provided dependencies.
func NewCoinDeskService(feed coindesk.Client, coinService *CoinService) *CoinDeskService {
	return &CoinDeskService{
		feed:        feed,
		coinService: coinService,
	}
}

// GetCurrentPrice fetches the current raw price snapshot from the feed.
// Feed failures are returned unchanged; there is no retry.
func (s *CoinDeskService) GetCurrentPrice(ctx context.Context) (coindesk.Response, error) {
	return s.feed.Current(ctx)
}

// GetTransformedData fetches the current price snapshot and resolves a
// localized display name for it. langCode may be empty.
//
// Name resolution, in order: a coin matching the snapshot's chart name
// is looked up by exact name; with no match the chart name itself is
// used; with a match but no langCode the coin's canonical name is used;
// with a match and a langCode the translation for that language is
// used, falling back to the canonical name when the language is
// missing. Translation misses are silent fallbacks, never errors.
//
// The snapshot's ISO timestamp is converted to local wall-clock time;
// when it cannot be parsed the current time is used instead and the
// failure is logged, never fatal.
func (s *CoinDeskService) GetTransformedData(ctx context.Context, langCode string) (model.TransformedCoinDesk, error) {
	snapshot, err := s.feed.Current(ctx)
	if err != nil {
		return model.TransformedCoinDesk{}, fmt.Errorf("transforming coindesk data: %w", err)
	}

	transformed := model.TransformedCoinDesk{
		Name:       snapshot.ChartName,
		UpdateTime: resolveUpdateTime(snapshot.Time.UpdatedISO),
	}

	coin, err := s.coinService.FindByName(snapshot.ChartName)
	if err != nil {
		return model.TransformedCoinDesk{}, fmt.Errorf("transforming coindesk data: %w", err)
	}

	switch {
	case coin == nil:
		transformed.LocalizedName = snapshot.ChartName
	case langCode == "":
		transformed.LocalizedName = coin.Name
	default:
		if localized, ok := coin.I18nNames[langCode]; ok {
			transformed.LocalizedName = localized
		} else {
			transformed.LocalizedName = coin.Name
		}
	}

	return transformed, nil
}

// resolveUpdateTime parses the feed's ISO-8601 offset timestamp into
// local wall-clock time, defaulting to now when parsing fails.
func resolveUpdateTime(updatedISO string) time.Time {
	parsed, err := time.Parse(time.RFC3339, updatedISO)
	if err != nil {
		log.Printf("failed to parse feed update timestamp %q, falling back to current time: %v", updatedISO, err)
		return time.Now()
	}
	return parsed.Local()
}
