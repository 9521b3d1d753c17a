package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jistud/coindesk-go/internal/apperrors"
	"github.com/jistud/coindesk-go/internal/testutil"
)

// TestCoinService_CreateCoin tests coin creation with translations.
//
// WHY: Creation is the entry point for the whole directory. This ensures
// coins persist with their localized names, duplicates are rejected, and
// the returned snapshot reflects what was stored.
func TestCoinService_CreateCoin(t *testing.T) {
	t.Run("creates coin without translations", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)

		// Execute
		coin, err := svc.CreateCoin(context.Background(), "Bitcoin", nil)

		// Assert
		if err != nil {
			t.Fatalf("CreateCoin() returned unexpected error: %v", err)
		}

		if coin.ID == 0 {
			t.Error("Expected coin to be assigned an ID")
		}
		if coin.Name != "Bitcoin" {
			t.Errorf("Expected name Bitcoin, got %s", coin.Name)
		}
		if coin.I18nNames != nil {
			t.Errorf("Expected no translations, got %v", coin.I18nNames)
		}

		testutil.AssertRowCount(t, db, "coin", 1)
		testutil.AssertRowCount(t, db, "coin_translation", 0)
	})

	t.Run("creates coin with translations", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)

		// Execute
		coin, err := svc.CreateCoin(context.Background(), "Bitcoin", map[string]string{
			"zh-TW": "比特幣",
			"ja":    "ビットコイン",
		})

		// Assert
		if err != nil {
			t.Fatalf("CreateCoin() returned unexpected error: %v", err)
		}

		if len(coin.I18nNames) != 2 {
			t.Fatalf("Expected 2 translations, got %d", len(coin.I18nNames))
		}
		if coin.I18nNames["zh-TW"] != "比特幣" {
			t.Errorf("Expected zh-TW translation 比特幣, got %s", coin.I18nNames["zh-TW"])
		}

		testutil.AssertRowCount(t, db, "coin_translation", 2)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)

		// Execute
		_, err := svc.CreateCoin(context.Background(), "   ", nil)

		// Assert
		if !errors.Is(err, apperrors.ErrEmptyName) {
			t.Errorf("Expected ErrEmptyName, got %v", err)
		}

		testutil.AssertRowCount(t, db, "coin", 0)
	})

	t.Run("rejects duplicate coin name", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)
		testutil.CreateCoin(t, db, "Bitcoin")

		// Execute
		_, err := svc.CreateCoin(context.Background(), "Bitcoin", nil)

		// Assert
		if !errors.Is(err, apperrors.ErrDuplicateCoinName) {
			t.Errorf("Expected ErrDuplicateCoinName, got %v", err)
		}

		testutil.AssertRowCount(t, db, "coin", 1)
	})

	t.Run("rolls back translations when creation fails", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)
		testutil.CreateCoin(t, db, "Bitcoin")

		// Execute
		_, err := svc.CreateCoin(context.Background(), "Bitcoin", map[string]string{"ja": "ビットコイン"})

		// Assert
		if err == nil {
			t.Fatal("Expected error for duplicate name, got nil")
		}

		testutil.AssertRowCount(t, db, "coin_translation", 0)
	})
}

// TestCoinService_UpdateCoin tests renames and translation merging.
//
// WHY: Updates use merge semantics. Supplied languages are upserted and
// languages absent from the request must survive untouched. Losing a
// translation on an unrelated update would silently corrupt the directory.
func TestCoinService_UpdateCoin(t *testing.T) {
	t.Run("renames coin and bumps updated_at", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)
		created := testutil.CreateCoin(t, db, "Bitcon")

		// Execute
		updated, err := svc.UpdateCoin(context.Background(), created.ID, "Bitcoin", nil)

		// Assert
		if err != nil {
			t.Fatalf("UpdateCoin() returned unexpected error: %v", err)
		}

		if updated.Name != "Bitcoin" {
			t.Errorf("Expected renamed coin Bitcoin, got %s", updated.Name)
		}
		if updated.UpdatedAt.Before(created.UpdatedAt) {
			t.Error("Expected updated_at to advance on rename")
		}
	})

	t.Run("merges translations without deleting untouched languages", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)
		coin := testutil.NewCoin().
			WithName("Bitcoin").
			WithTranslation("en", "BTC").
			WithTranslation("fr", "Le Bitcoin").
			Build(t, db)

		// Execute: only the French entry is supplied
		updated, err := svc.UpdateCoin(context.Background(), coin.ID, "Bitcoin", map[string]string{
			"fr": "Bitcoin",
		})

		// Assert
		if err != nil {
			t.Fatalf("UpdateCoin() returned unexpected error: %v", err)
		}

		if updated.I18nNames["en"] != "BTC" {
			t.Errorf("Expected untouched en translation BTC, got %s", updated.I18nNames["en"])
		}
		if updated.I18nNames["fr"] != "Bitcoin" {
			t.Errorf("Expected fr translation updated to Bitcoin, got %s", updated.I18nNames["fr"])
		}

		// No rows were deleted or duplicated
		testutil.AssertRowCount(t, db, "coin_translation", 2)
	})

	t.Run("inserts translations for new languages", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)
		coin := testutil.NewCoin().
			WithName("Bitcoin").
			WithTranslation("en", "BTC").
			Build(t, db)

		// Execute
		updated, err := svc.UpdateCoin(context.Background(), coin.ID, "Bitcoin", map[string]string{
			"zh-TW": "比特幣",
		})

		// Assert
		if err != nil {
			t.Fatalf("UpdateCoin() returned unexpected error: %v", err)
		}

		if len(updated.I18nNames) != 2 {
			t.Fatalf("Expected 2 translations after merge, got %d", len(updated.I18nNames))
		}
		if updated.I18nNames["zh-TW"] != "比特幣" {
			t.Errorf("Expected zh-TW translation 比特幣, got %s", updated.I18nNames["zh-TW"])
		}
	})

	t.Run("merge is idempotent", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)
		coin := testutil.NewCoin().
			WithName("Bitcoin").
			WithTranslation("en", "BTC").
			Build(t, db)

		// Execute the same update twice
		for i := 0; i < 2; i++ {
			if _, err := svc.UpdateCoin(context.Background(), coin.ID, "Bitcoin", map[string]string{
				"en": "BTC",
				"ja": "ビットコイン",
			}); err != nil {
				t.Fatalf("UpdateCoin() attempt %d returned unexpected error: %v", i+1, err)
			}
		}

		// Assert: no duplicate rows per language
		testutil.AssertRowCount(t, db, "coin_translation", 2)

		names := testutil.TranslationsForCoin(t, db, coin.ID)
		if names["ja"] != "ビットコイン" {
			t.Errorf("Expected ja translation ビットコイン, got %s", names["ja"])
		}
	})

	t.Run("empty translations map leaves existing rows alone", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)
		coin := testutil.NewCoin().
			WithName("Bitcoin").
			WithTranslation("en", "BTC").
			Build(t, db)

		// Execute
		updated, err := svc.UpdateCoin(context.Background(), coin.ID, "Bitcoin", map[string]string{})

		// Assert
		if err != nil {
			t.Fatalf("UpdateCoin() returned unexpected error: %v", err)
		}

		if updated.I18nNames["en"] != "BTC" {
			t.Errorf("Expected en translation BTC, got %s", updated.I18nNames["en"])
		}
		testutil.AssertRowCount(t, db, "coin_translation", 1)
	})

	t.Run("returns not found for unknown coin", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)

		// Execute
		_, err := svc.UpdateCoin(context.Background(), 9999, "Bitcoin", nil)

		// Assert
		if !errors.Is(err, apperrors.ErrCoinNotFound) {
			t.Errorf("Expected ErrCoinNotFound, got %v", err)
		}
	})

	t.Run("rejects rename onto an existing coin", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)
		testutil.CreateCoin(t, db, "Bitcoin")
		other := testutil.CreateCoin(t, db, "Ethereum")

		// Execute
		_, err := svc.UpdateCoin(context.Background(), other.ID, "Bitcoin", nil)

		// Assert
		if !errors.Is(err, apperrors.ErrDuplicateCoinName) {
			t.Errorf("Expected ErrDuplicateCoinName, got %v", err)
		}
	})

	t.Run("keeping the same name is not a duplicate", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)
		coin := testutil.CreateCoin(t, db, "Bitcoin")

		// Execute
		_, err := svc.UpdateCoin(context.Background(), coin.ID, "Bitcoin", map[string]string{"en": "BTC"})

		// Assert
		if err != nil {
			t.Fatalf("UpdateCoin() returned unexpected error: %v", err)
		}
	})
}

// TestCoinService_Find tests the lookup operations.
//
// WHY: Lookups feed both the HTTP handlers and the price transformation.
// Misses must come back as nil without error so callers can apply their
// own fallback behavior.
func TestCoinService_Find(t *testing.T) {
	t.Run("FindByID returns coin with translations", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)
		created := testutil.NewCoin().
			WithName("Bitcoin").
			WithTranslation("zh-TW", "比特幣").
			Build(t, db)

		// Execute
		coin, err := svc.FindByID(created.ID)

		// Assert
		if err != nil {
			t.Fatalf("FindByID() returned unexpected error: %v", err)
		}
		if coin == nil {
			t.Fatal("Expected coin, got nil")
		}
		if coin.I18nNames["zh-TW"] != "比特幣" {
			t.Errorf("Expected zh-TW translation 比特幣, got %s", coin.I18nNames["zh-TW"])
		}
	})

	t.Run("FindByID returns nil for unknown id", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)

		// Execute
		coin, err := svc.FindByID(9999)

		// Assert
		if err != nil {
			t.Fatalf("FindByID() returned unexpected error: %v", err)
		}
		if coin != nil {
			t.Errorf("Expected nil for unknown id, got %+v", coin)
		}
	})

	t.Run("FindByName returns matching coin", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)
		testutil.CreateCoin(t, db, "Ethereum")

		// Execute
		coin, err := svc.FindByName("Ethereum")

		// Assert
		if err != nil {
			t.Fatalf("FindByName() returned unexpected error: %v", err)
		}
		if coin == nil || coin.Name != "Ethereum" {
			t.Errorf("Expected Ethereum, got %+v", coin)
		}
	})

	t.Run("FindAll returns every coin", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)
		testutil.CreateCoin(t, db, "Bitcoin")
		testutil.CreateCoin(t, db, "Ethereum")
		testutil.CreateCoin(t, db, "Dogecoin")

		// Execute
		coins, err := svc.FindAll()

		// Assert
		if err != nil {
			t.Fatalf("FindAll() returned unexpected error: %v", err)
		}
		if len(coins) != 3 {
			t.Errorf("Expected 3 coins, got %d", len(coins))
		}
	})

	t.Run("FindAll returns empty slice for empty database", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)

		// Execute
		coins, err := svc.FindAll()

		// Assert
		if err != nil {
			t.Fatalf("FindAll() returned unexpected error: %v", err)
		}
		if len(coins) != 0 {
			t.Errorf("Expected empty slice, got %d coins", len(coins))
		}
	})
}

// TestCoinService_DatabaseErrors tests error handling on connection failure.
//
// WHY: The service must surface database errors instead of panicking so the
// handlers can translate them into 500 responses.
func TestCoinService_DatabaseErrors(t *testing.T) {
	t.Run("handles closed database connection", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCoinService(t, db)

		db.Close()

		// Execute
		_, err := svc.CreateCoin(context.Background(), "Bitcoin", nil)

		// Assert
		if err == nil {
			t.Error("Expected error when database is closed, got nil")
		}
	})
}
