package repository

import (
	"context"
	"database/sql"
	"fmt"

	"canteen/internal/domain"
	"canteen/internal/errors"
)

type MySQLPlaceRepository struct {
	db *sql.DB
}

func NewMySQLPlaceRepository(db *sql.DB) *MySQLPlaceRepository {
	return &MySQLPlaceRepository{db: db}
}

func (r *MySQLPlaceRepository) FindByName(ctx context.Context, tx *sql.Tx, name string) (*domain.Place, error) {
	query := `
		SELECT id, name, createdAt, updatedAt
		FROM Places
		WHERE name = ?
		LIMIT 1
	`

	var place domain.Place
	err := tx.QueryRowContext(ctx, query, name).Scan(
		&place.ID, &place.Name, &place.CreatedAt, &place.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("place %q not found", name))
	}
	if err != nil {
		return nil, fmt.Errorf("querying place by name: %w", err)
	}

	return &place, nil
}

func (r *MySQLPlaceRepository) FindAll(ctx context.Context) ([]domain.Place, error) {
	query := `SELECT id, name, createdAt, updatedAt FROM Places ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying places: %w", err)
	}
	defer rows.Close()

	var places []domain.Place
	for rows.Next() {
		var place domain.Place
		if err := rows.Scan(&place.ID, &place.Name, &place.CreatedAt, &place.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning place row: %w", err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating place rows: %w", err)
	}

	return places, nil
}
