package repository

import (
	"context"
	"database/sql"
	"fmt"

	"canteen/internal/domain"
)

type MySQLOrderDetailRepository struct {
	db *sql.DB
}

func NewMySQLOrderDetailRepository(db *sql.DB) *MySQLOrderDetailRepository {
	return &MySQLOrderDetailRepository{db: db}
}

func (r *MySQLOrderDetailRepository) Insert(ctx context.Context, tx *sql.Tx, detail domain.OrderDetail) (uint, error) {
	query := `INSERT INTO OrderDetails (orderUuid, foodId, quantity, withdrawalOrder) VALUES (?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, detail.OrderUUID, detail.FoodID, detail.Quantity, detail.WithdrawalOrder)
	if err != nil {
		return 0, fmt.Errorf("inserting order detail: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

// FindLinesByOrderUUID returns the order's food line items with resolved
// food names, ordered by the withdrawal sequencing hint.
func (r *MySQLOrderDetailRepository) FindLinesByOrderUUID(ctx context.Context, orderUUID string) ([]domain.FoodLine, error) {
	query := `
		SELECT f.name, d.quantity, d.withdrawalOrder
		FROM OrderDetails d
		JOIN Foods f ON f.id = d.foodId
		WHERE d.orderUuid = ?
		ORDER BY d.withdrawalOrder, d.id
	`

	rows, err := r.db.QueryContext(ctx, query, orderUUID)
	if err != nil {
		return nil, fmt.Errorf("querying order details: %w", err)
	}
	defer rows.Close()

	var lines []domain.FoodLine
	for rows.Next() {
		var line domain.FoodLine
		if err := rows.Scan(&line.Food, &line.Quantity, &line.WithdrawalOrder); err != nil {
			return nil, fmt.Errorf("scanning order detail row: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order detail rows: %w", err)
	}

	return lines, nil
}
