package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jistud/coindesk-go/internal/apperrors"
	"github.com/jistud/coindesk-go/internal/model"
)

// TranslationRepository provides data access methods for the coin_translation table.
// It exposes plain insert/update/list operations; the one-translation-per-language
// invariant is the responsibility of the service layer's merge logic.
type TranslationRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewTranslationRepository creates a new TranslationRepository with the provided database connection.
func NewTranslationRepository(db *sql.DB) *TranslationRepository {
	return &TranslationRepository{db: db}
}

// WithTx returns a new TranslationRepository scoped to the provided transaction.
func (r *TranslationRepository) WithTx(tx *sql.Tx) *TranslationRepository {
	return &TranslationRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *TranslationRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// ListByCoin retrieves all translations owned by a coin.
// Returns an empty slice if the coin has no translations.
func (r *TranslationRepository) ListByCoin(coinID int64) ([]model.CoinTranslation, error) {
	query := `
        SELECT id, coin_id, lang_code, name, created_at, updated_at
        FROM coin_translation
        WHERE coin_id = ?
        ORDER BY id ASC
    `

	rows, err := r.getQuerier().Query(query, coinID)
	if err != nil {
		return nil, fmt.Errorf("failed to query coin_translation table: %w", err)
	}
	defer rows.Close()

	translations := []model.CoinTranslation{}

	for rows.Next() {
		var t model.CoinTranslation
		var createdStr, updatedStr string

		err := rows.Scan(
			&t.ID,
			&t.CoinID,
			&t.LangCode,
			&t.Name,
			&createdStr,
			&updatedStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan coin_translation table results: %w", err)
		}

		if t.CreatedAt, err = ParseTime(createdStr); err != nil {
			return nil, err
		}
		if t.UpdatedAt, err = ParseTime(updatedStr); err != nil {
			return nil, err
		}

		translations = append(translations, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating coin_translation table: %w", err)
	}

	return translations, nil
}

// GetByCoinAndLang retrieves the translation for one coin and language combination.
// Returns nil, nil if no translation is found.
func (r *TranslationRepository) GetByCoinAndLang(coinID int64, langCode string) (*model.CoinTranslation, error) {
	query := `
        SELECT id, coin_id, lang_code, name, created_at, updated_at
        FROM coin_translation
        WHERE coin_id = ? AND lang_code = ?
    `

	var t model.CoinTranslation
	var createdStr, updatedStr string

	err := r.getQuerier().QueryRow(query, coinID, langCode).Scan(
		&t.ID,
		&t.CoinID,
		&t.LangCode,
		&t.Name,
		&createdStr,
		&updatedStr,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan coin_translation table results: %w", err)
	}

	if t.CreatedAt, err = ParseTime(createdStr); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = ParseTime(updatedStr); err != nil {
		return nil, err
	}

	return &t, nil
}

// Insert creates a new translation owned by a coin.
func (r *TranslationRepository) Insert(ctx context.Context, coinID int64, langCode, name string, now time.Time) (model.CoinTranslation, error) {
	query := `
        INSERT INTO coin_translation (coin_id, lang_code, name, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?)
    `

	result, err := r.getQuerier().ExecContext(ctx, query, coinID, langCode, name, FormatTime(now), FormatTime(now))
	if err != nil {
		return model.CoinTranslation{}, fmt.Errorf("failed to insert coin_translation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.CoinTranslation{}, fmt.Errorf("failed to get inserted coin_translation ID: %w", err)
	}

	return model.CoinTranslation{
		ID:        id,
		CoinID:    coinID,
		LangCode:  langCode,
		Name:      name,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}

// UpdateName overwrites the localized name of an existing translation
// in place and bumps its updated_at timestamp.
// Returns apperrors.ErrTranslationNotFound if no translation with the ID exists.
func (r *TranslationRepository) UpdateName(ctx context.Context, id int64, name string, now time.Time) error {
	query := `UPDATE coin_translation SET name = ?, updated_at = ? WHERE id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, name, FormatTime(now), id)
	if err != nil {
		return fmt.Errorf("failed to update coin_translation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrTranslationNotFound
	}

	return nil
}
