package repository

import (
	"context"
	"database/sql"
	"fmt"

	"canteen/internal/domain"
	"canteen/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error {
	query := `INSERT INTO Orders (uuid, userId, status) VALUES (?, ?, ?)`

	if _, err := tx.ExecContext(ctx, query, order.UUID, order.UserID, string(order.Status)); err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	return nil
}

func (r *MySQLOrderRepository) FindByUUID(ctx context.Context, orderUUID string) (*domain.Order, error) {
	query := `
		SELECT uuid, userId, status, createdAt, updatedAt
		FROM Orders
		WHERE uuid = ?
	`

	var order domain.Order
	var status string
	err := r.db.QueryRowContext(ctx, query, orderUUID).Scan(
		&order.UUID, &order.UserID, &status, &order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", orderUUID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by uuid: %w", err)
	}

	order.Status = domain.OrderStatus(status)
	return &order, nil
}

func (r *MySQLOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT uuid, userId, status, createdAt, updatedAt
		FROM Orders
		ORDER BY createdAt DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var status string
		if err := rows.Scan(&order.UUID, &order.UserID, &status, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		order.Status = domain.OrderStatus(status)
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, orderUUID string, status domain.OrderStatus) error {
	query := `UPDATE Orders SET status = ? WHERE uuid = ?`

	result, err := r.db.ExecContext(ctx, query, string(status), orderUUID)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order %s not found", orderUUID))
	}

	return nil
}
