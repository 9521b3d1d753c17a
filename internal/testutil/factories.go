package testutil

import (
	"database/sql"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/jistud/coindesk-go/internal/model"
	"github.com/jistud/coindesk-go/internal/repository"
)

// CoinBuilder provides a fluent interface for creating test coins.
//
// Example usage:
//
//	// Simple creation with defaults
//	coin := testutil.NewCoin().Build(t, db)
//
//	// Customized coin with translations
//	coin := testutil.NewCoin().
//	    WithName("Bitcoin").
//	    WithTranslation("zh-TW", "比特幣").
//	    Build(t, db)
type CoinBuilder struct {
	Name         string
	Translations map[string]string
}

// NewCoin creates a CoinBuilder with sensible defaults.
func NewCoin() *CoinBuilder {
	return &CoinBuilder{
		Name:         MakeCoinName("Test Coin"),
		Translations: map[string]string{},
	}
}

// WithName sets a custom name.
func (b *CoinBuilder) WithName(name string) *CoinBuilder {
	b.Name = name
	return b
}

// WithTranslation adds a localized name for a language.
func (b *CoinBuilder) WithTranslation(langCode, name string) *CoinBuilder {
	b.Translations[langCode] = name
	return b
}

// Build creates the coin and its translations in the database and returns it.
func (b *CoinBuilder) Build(t *testing.T, db *sql.DB) model.Coin {
	t.Helper()

	createdAt := time.Now().UTC().Truncate(time.Second)
	now := repository.FormatTime(createdAt)

	result, err := db.Exec(`
		INSERT INTO coin (name, created_at, updated_at)
		VALUES (?, ?, ?)
	`, b.Name, now, now)
	if err != nil {
		t.Fatalf("Failed to create test coin: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get test coin ID: %v", err)
	}

	for langCode, name := range b.Translations {
		_, err := db.Exec(`
			INSERT INTO coin_translation (coin_id, lang_code, name, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`, id, langCode, name, now, now)
		if err != nil {
			t.Fatalf("Failed to create test coin translation: %v", err)
		}
	}

	coin := model.Coin{
		ID:        id,
		Name:      b.Name,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if len(b.Translations) > 0 {
		coin.I18nNames = make(map[string]string, len(b.Translations))
		for langCode, name := range b.Translations {
			coin.I18nNames[langCode] = name
		}
	}

	return coin
}

// Convenience functions

// CreateCoin creates a coin with the given name and no translations.
//
// Example usage:
//
//	coin := testutil.CreateCoin(t, db, "Bitcoin")
func CreateCoin(t *testing.T, db *sql.DB, name string) model.Coin {
	t.Helper()
	return NewCoin().WithName(name).Build(t, db)
}

// TranslationsForCoin reads the stored translation set of a coin,
// keyed by language code.
func TranslationsForCoin(t *testing.T, db *sql.DB, coinID int64) map[string]string {
	t.Helper()

	rows, err := db.Query(`SELECT lang_code, name FROM coin_translation WHERE coin_id = ?`, coinID)
	if err != nil {
		t.Fatalf("Failed to query coin translations: %v", err)
	}
	defer rows.Close()

	translations := map[string]string{}
	for rows.Next() {
		var langCode, name string
		if err := rows.Scan(&langCode, &name); err != nil {
			t.Fatalf("Failed to scan coin translation: %v", err)
		}
		translations[langCode] = name
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Error iterating coin translations: %v", err)
	}

	return translations
}

// MakeCoinName generates a unique coin name for testing.
//
// Example usage:
//
//	name := testutil.MakeCoinName("Bitcoin")
//	// Returns: "Bitcoin ABC123"
func MakeCoinName(base string) string {
	if base == "" {
		base = "Coin"
	}
	return base + " " + randomAlphanumeric(6)
}

// FormatID renders a numeric id the way it appears in URLs and query strings.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}

// Common test constants

var (
	// CommonLangCodes contains frequently used language codes
	CommonLangCodes = []string{"en", "zh-TW", "fr", "de", "ja", "ko"}
)

// RandomLangCode returns a random language code from CommonLangCodes.
func RandomLangCode() string {
	return CommonLangCodes[rand.Intn(len(CommonLangCodes))]
}
