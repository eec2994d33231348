package repository

import (
	"context"
	"database/sql"
	"fmt"

	"canteen/internal/domain"
	"canteen/internal/errors"
)

type MySQLFoodRepository struct {
	db *sql.DB
}

func NewMySQLFoodRepository(db *sql.DB) *MySQLFoodRepository {
	return &MySQLFoodRepository{db: db}
}

// FindByName resolves a display name to the first matching catalog row.
// Reads through the caller's transaction so the lookup sees rows consistent
// with the creation in progress.
func (r *MySQLFoodRepository) FindByName(ctx context.Context, tx *sql.Tx, name string) (*domain.Food, error) {
	query := `
		SELECT id, name, createdAt, updatedAt
		FROM Foods
		WHERE name = ?
		LIMIT 1
	`

	var food domain.Food
	err := tx.QueryRowContext(ctx, query, name).Scan(
		&food.ID, &food.Name, &food.CreatedAt, &food.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("food %q not found", name))
	}
	if err != nil {
		return nil, fmt.Errorf("querying food by name: %w", err)
	}

	return &food, nil
}

func (r *MySQLFoodRepository) FindAll(ctx context.Context) ([]domain.Food, error) {
	query := `SELECT id, name, createdAt, updatedAt FROM Foods ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying foods: %w", err)
	}
	defer rows.Close()

	var foods []domain.Food
	for rows.Next() {
		var food domain.Food
		if err := rows.Scan(&food.ID, &food.Name, &food.CreatedAt, &food.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning food row: %w", err)
		}
		foods = append(foods, food)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating food rows: %w", err)
	}

	return foods, nil
}
