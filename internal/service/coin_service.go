package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jistud/coindesk-go/internal/apperrors"
	"github.com/jistud/coindesk-go/internal/model"
	"github.com/jistud/coindesk-go/internal/repository"
)

// CoinService handles coin directory business logic: name uniqueness,
// coin lifecycle, and the translation merge-update. Every mutation runs
// as one transaction so the coin write and its translation writes
// commit or roll back together.
type CoinService struct {
	db              *sql.DB
	coinRepo        *repository.CoinRepository
	translationRepo *repository.TranslationRepository
}

// NewCoinService creates a new CoinService with the provided repository dependencies.
func NewCoinService(
	db *sql.DB,
	coinRepo *repository.CoinRepository,
	translationRepo *repository.TranslationRepository,
) *CoinService {
	return &CoinService{
		db:              db,
		coinRepo:        coinRepo,
		translationRepo: translationRepo,
	}
}

// CreateCoin persists a new coin together with one translation per
// entry of i18nNames, which may be nil or empty.
//
// Returns apperrors.ErrEmptyName for a blank name and
// apperrors.ErrDuplicateCoinName if a coin with the same name already
// exists. The service-level existence check is a fast path; the
// coin.name unique constraint remains the authoritative guard against
// concurrent duplicate creation.
func (s *CoinService) CreateCoin(ctx context.Context, name string, i18nNames map[string]string) (model.Coin, error) {
	if strings.TrimSpace(name) == "" {
		return model.Coin{}, apperrors.ErrEmptyName
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Coin{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	coinRepo := s.coinRepo.WithTx(tx)
	translationRepo := s.translationRepo.WithTx(tx)

	exists, err := coinRepo.ExistsByName(name)
	if err != nil {
		return model.Coin{}, err
	}
	if exists {
		return model.Coin{}, apperrors.ErrDuplicateCoinName
	}

	now := time.Now()

	coin, err := coinRepo.Insert(ctx, name, now)
	if err != nil {
		return model.Coin{}, err
	}

	for langCode, localizedName := range i18nNames {
		if _, err := translationRepo.Insert(ctx, coin.ID, langCode, localizedName, now); err != nil {
			return model.Coin{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return model.Coin{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if len(i18nNames) > 0 {
		coin.I18nNames = make(map[string]string, len(i18nNames))
		for langCode, localizedName := range i18nNames {
			coin.I18nNames[langCode] = localizedName
		}
	}

	return coin, nil
}

// UpdateCoin renames a coin and merges the supplied translations into
// its existing set.
//
// Merge semantics: for each supplied language, an existing translation
// is overwritten in place and a missing one is created. Languages not
// present in i18nNames are left untouched; nothing is ever deleted.
// The rename and the updated_at bump happen even when i18nNames is nil
// or empty.
//
// Returns apperrors.ErrCoinNotFound when no coin with the ID exists and
// apperrors.ErrDuplicateCoinName when the new name collides with a
// different coin.
func (s *CoinService) UpdateCoin(ctx context.Context, id int64, name string, i18nNames map[string]string) (model.Coin, error) {
	if strings.TrimSpace(name) == "" {
		return model.Coin{}, apperrors.ErrEmptyName
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Coin{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	coinRepo := s.coinRepo.WithTx(tx)
	translationRepo := s.translationRepo.WithTx(tx)

	coin, err := coinRepo.GetByID(id)
	if err != nil {
		return model.Coin{}, err
	}
	if coin == nil {
		return model.Coin{}, apperrors.ErrCoinNotFound
	}

	if name != coin.Name {
		exists, err := coinRepo.ExistsByName(name)
		if err != nil {
			return model.Coin{}, err
		}
		if exists {
			return model.Coin{}, apperrors.ErrDuplicateCoinName
		}
	}

	now := time.Now()

	if err := coinRepo.UpdateName(ctx, id, name, now); err != nil {
		return model.Coin{}, err
	}
	coin.Name = name
	coin.UpdatedAt = now.UTC()

	if len(i18nNames) > 0 {
		existing, err := translationRepo.ListByCoin(id)
		if err != nil {
			return model.Coin{}, err
		}

		existingByLang := make(map[string]model.CoinTranslation, len(existing))
		for _, t := range existing {
			existingByLang[t.LangCode] = t
		}

		for langCode, localizedName := range i18nNames {
			if current, ok := existingByLang[langCode]; ok {
				if err := translationRepo.UpdateName(ctx, current.ID, localizedName, now); err != nil {
					return model.Coin{}, err
				}
			} else {
				if _, err := translationRepo.Insert(ctx, id, langCode, localizedName, now); err != nil {
					return model.Coin{}, err
				}
			}
		}
	}

	merged, err := translationRepo.ListByCoin(id)
	if err != nil {
		return model.Coin{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Coin{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	coin.I18nNames = translationsToMap(merged)

	return *coin, nil
}

// FindByID retrieves a coin with its translation set.
// Returns nil, nil if the coin does not exist.
func (s *CoinService) FindByID(id int64) (*model.Coin, error) {
	coin, err := s.coinRepo.GetByID(id)
	if err != nil || coin == nil {
		return nil, err
	}

	return s.withTranslations(coin)
}

// FindByName retrieves a coin by exact name match with its translation set.
// Returns nil, nil if the coin does not exist.
func (s *CoinService) FindByName(name string) (*model.Coin, error) {
	coin, err := s.coinRepo.GetByName(name)
	if err != nil || coin == nil {
		return nil, err
	}

	return s.withTranslations(coin)
}

// FindAll retrieves all coins without their translation sets.
func (s *CoinService) FindAll() ([]model.Coin, error) {
	return s.coinRepo.GetAll()
}

func (s *CoinService) withTranslations(coin *model.Coin) (*model.Coin, error) {
	translations, err := s.translationRepo.ListByCoin(coin.ID)
	if err != nil {
		return nil, err
	}

	coin.I18nNames = translationsToMap(translations)
	return coin, nil
}

func translationsToMap(translations []model.CoinTranslation) map[string]string {
	if len(translations) == 0 {
		return nil
	}

	names := make(map[string]string, len(translations))
	for _, t := range translations {
		names[t.LangCode] = t.Name
	}
	return names
}
