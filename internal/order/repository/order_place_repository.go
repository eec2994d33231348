package repository

import (
	"context"
	"database/sql"
	"fmt"

	"canteen/internal/domain"
)

type MySQLOrderPlaceRepository struct {
	db *sql.DB
}

func NewMySQLOrderPlaceRepository(db *sql.DB) *MySQLOrderPlaceRepository {
	return &MySQLOrderPlaceRepository{db: db}
}

func (r *MySQLOrderPlaceRepository) Insert(ctx context.Context, tx *sql.Tx, place domain.OrderPlace) (uint, error) {
	query := `INSERT INTO OrderPlaces (orderUuid, placeId, quantity) VALUES (?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, place.OrderUUID, place.PlaceID, place.Quantity)
	if err != nil {
		return 0, fmt.Errorf("inserting order place: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

// FindLinesByOrderUUID returns the order's delivery line items with resolved
// place names.
func (r *MySQLOrderPlaceRepository) FindLinesByOrderUUID(ctx context.Context, orderUUID string) ([]domain.PlaceLine, error) {
	query := `
		SELECT p.name, op.quantity
		FROM OrderPlaces op
		JOIN Places p ON p.id = op.placeId
		WHERE op.orderUuid = ?
		ORDER BY op.id
	`

	rows, err := r.db.QueryContext(ctx, query, orderUUID)
	if err != nil {
		return nil, fmt.Errorf("querying order places: %w", err)
	}
	defer rows.Close()

	var lines []domain.PlaceLine
	for rows.Next() {
		var line domain.PlaceLine
		if err := rows.Scan(&line.Place, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scanning order place row: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order place rows: %w", err)
	}

	return lines, nil
}
