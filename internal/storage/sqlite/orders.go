package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/drinko/internal/models"
	"github.com/mmynk/drinko/internal/storage"
)

// RecordOrder persists a completed order and its lines in one transaction.
func (s *SQLiteStore) RecordOrder(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CompletedAt == 0 {
		order.CompletedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO orders (id, total, payment_method, completed_at) VALUES (?, ?, ?, ?)",
		order.ID, order.Total, string(order.PaymentMethod), order.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i, line := range order.Lines {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_lines (order_id, position, drink_id, name, is_double, quantity, unit_price, line_total)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			order.ID, i, line.DrinkID, line.Name, line.IsDouble, line.Quantity, line.UnitPrice, line.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetOrder retrieves an order by ID, including its lines.
func (s *SQLiteStore) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order := &models.Order{}
	var method string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, total, payment_method, completed_at FROM orders WHERE id = ?",
		orderID,
	).Scan(&order.ID, &order.Total, &method, &order.CompletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	order.PaymentMethod = models.PaymentMethod(method)

	if order.Lines, err = s.getOrderLines(ctx, orderID); err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns the most recent orders first.
func (s *SQLiteStore) ListOrders(ctx context.Context, limit int) ([]*models.Order, error) {
	query := "SELECT id, total, payment_method, completed_at FROM orders ORDER BY completed_at DESC, rowid DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		var method string
		if err := rows.Scan(&order.ID, &order.Total, &method, &order.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		order.PaymentMethod = models.PaymentMethod(method)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	for _, order := range orders {
		if order.Lines, err = s.getOrderLines(ctx, order.ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (s *SQLiteStore) getOrderLines(ctx context.Context, orderID string) ([]models.OrderLine, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT drink_id, name, is_double, quantity, unit_price, line_total
		 FROM order_lines WHERE order_id = ? ORDER BY position`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get order lines: %w", err)
	}
	defer rows.Close()

	var lines []models.OrderLine
	for rows.Next() {
		var line models.OrderLine
		if err := rows.Scan(&line.DrinkID, &line.Name, &line.IsDouble, &line.Quantity, &line.UnitPrice, &line.LineTotal); err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order lines: %w", err)
	}
	return lines, nil
}
