// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/drinko/internal/models"
)

// ErrOrderNotFound is returned when an order id is not in the journal.
var ErrOrderNotFound = errors.New("order not found")

// Store defines the interface for the order journal.
// Carts and sessions are never stored; only completed orders are.
type Store interface {
	// RecordOrder persists a completed order.
	// The order.ID and order.CompletedAt fields are populated if empty.
	RecordOrder(ctx context.Context, order *models.Order) error

	// GetOrder retrieves an order by its ID.
	// Returns ErrOrderNotFound if the order does not exist.
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)

	// ListOrders returns the most recent orders first, at most limit of them.
	// A limit <= 0 returns every order.
	ListOrders(ctx context.Context, limit int) ([]*models.Order, error)

	// Close releases any resources held by the store.
	Close() error
}
