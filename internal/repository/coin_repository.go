package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jistud/coindesk-go/internal/apperrors"
	"github.com/jistud/coindesk-go/internal/model"
)

// CoinRepository provides data access methods for the coin table.
type CoinRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewCoinRepository creates a new CoinRepository with the provided database connection.
func NewCoinRepository(db *sql.DB) *CoinRepository {
	return &CoinRepository{db: db}
}

// WithTx returns a new CoinRepository scoped to the provided transaction.
func (r *CoinRepository) WithTx(tx *sql.Tx) *CoinRepository {
	return &CoinRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *CoinRepository) getQuerier() interface {
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

// ExistsByName reports whether a coin with the exact given name exists.
func (r *CoinRepository) ExistsByName(name string) (bool, error) {
	query := `SELECT COUNT(*) FROM coin WHERE name = ?`

	var count int
	if err := r.getQuerier().QueryRow(query, name).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to query coin table: %w", err)
	}

	return count > 0, nil
}

// Insert creates a new coin with both timestamps set to now.
// A violation of the coin name unique constraint is returned as
// apperrors.ErrDuplicateCoinName so concurrent duplicate creation is
// caught even when the service-level existence check raced.
func (r *CoinRepository) Insert(ctx context.Context, name string, now time.Time) (model.Coin, error) {
	query := `
        INSERT INTO coin (name, created_at, updated_at)
        VALUES (?, ?, ?)
    `

	result, err := r.getQuerier().ExecContext(ctx, query, name, FormatTime(now), FormatTime(now))
	if err != nil {
		if isUniqueViolation(err, "coin.name") {
			return model.Coin{}, apperrors.ErrDuplicateCoinName
		}
		return model.Coin{}, fmt.Errorf("failed to insert coin: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Coin{}, fmt.Errorf("failed to get inserted coin ID: %w", err)
	}

	return model.Coin{
		ID:        id,
		Name:      name,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}

// UpdateName renames a coin and bumps its updated_at timestamp.
// Returns apperrors.ErrCoinNotFound if no coin with the ID exists.
func (r *CoinRepository) UpdateName(ctx context.Context, id int64, name string, now time.Time) error {
	query := `UPDATE coin SET name = ?, updated_at = ? WHERE id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, name, FormatTime(now), id)
	if err != nil {
		if isUniqueViolation(err, "coin.name") {
			return apperrors.ErrDuplicateCoinName
		}
		return fmt.Errorf("failed to update coin: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrCoinNotFound
	}

	return nil
}

// GetByID retrieves a coin by its ID.
// Returns nil, nil if the coin is not found.
func (r *CoinRepository) GetByID(id int64) (*model.Coin, error) {
	query := `
        SELECT id, name, created_at, updated_at
        FROM coin
        WHERE id = ?
    `

	return r.scanOne(r.getQuerier().QueryRow(query, id))
}

// GetByName retrieves a coin by its exact name.
// Returns nil, nil if the coin is not found.
func (r *CoinRepository) GetByName(name string) (*model.Coin, error) {
	query := `
        SELECT id, name, created_at, updated_at
        FROM coin
        WHERE name = ?
    `

	return r.scanOne(r.getQuerier().QueryRow(query, name))
}

// GetAll retrieves all coins ordered by ID.
// Returns an empty slice if no coins are found.
func (r *CoinRepository) GetAll() ([]model.Coin, error) {
	query := `
        SELECT id, name, created_at, updated_at
        FROM coin
        ORDER BY id ASC
    `

	rows, err := r.getQuerier().Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query coin table: %w", err)
	}
	defer rows.Close()

	coins := []model.Coin{}

	for rows.Next() {
		var c model.Coin
		var createdStr, updatedStr string

		err := rows.Scan(
			&c.ID,
			&c.Name,
			&createdStr,
			&updatedStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan coin table results: %w", err)
		}

		if c.CreatedAt, err = ParseTime(createdStr); err != nil {
			return nil, err
		}
		if c.UpdatedAt, err = ParseTime(updatedStr); err != nil {
			return nil, err
		}

		coins = append(coins, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating coin table: %w", err)
	}

	return coins, nil
}

func (r *CoinRepository) scanOne(row *sql.Row) (*model.Coin, error) {
	var c model.Coin
	var createdStr, updatedStr string

	err := row.Scan(
		&c.ID,
		&c.Name,
		&createdStr,
		&updatedStr,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan coin table results: %w", err)
	}

	if c.CreatedAt, err = ParseTime(createdStr); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = ParseTime(updatedStr); err != nil {
		return nil, err
	}

	return &c, nil
}

// isUniqueViolation reports whether err is a sqlite unique constraint
// failure on the given column.
func isUniqueViolation(err error, column string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}
