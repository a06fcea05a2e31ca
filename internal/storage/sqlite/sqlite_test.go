package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/drinko/internal/models"
	"github.com/mmynk/drinko/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "drinko-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "nested", "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testOrder(completedAt int64) *models.Order {
	return &models.Order{
		Total:         decimal.RequireFromString("30.4"),
		PaymentMethod: models.PaymentCard,
		CompletedAt:   completedAt,
		Lines: []models.OrderLine{
			{
				DrinkID:   "3",
				Name:      "Gin & Tonic",
				Quantity:  2,
				UnitPrice: decimal.NewFromInt(8),
				LineTotal: decimal.NewFromInt(16),
			},
			{
				DrinkID:   "3",
				Name:      "Gin & Tonic",
				IsDouble:  true,
				Quantity:  1,
				UnitPrice: decimal.RequireFromString("14.4"),
				LineTotal: decimal.RequireFromString("14.4"),
			},
		},
	}
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("RecordOrder generates ID and timestamp", func(t *testing.T) {
		order := testOrder(0)

		if err := store.RecordOrder(ctx, order); err != nil {
			t.Fatalf("RecordOrder failed: %v", err)
		}

		if order.ID == "" {
			t.Error("Expected order ID to be generated")
		}
		if order.CompletedAt == 0 {
			t.Error("Expected CompletedAt to be set")
		}
	})

	t.Run("GetOrder retrieves complete order", func(t *testing.T) {
		original := testOrder(1700000000)
		if err := store.RecordOrder(ctx, original); err != nil {
			t.Fatalf("RecordOrder failed: %v", err)
		}

		retrieved, err := store.GetOrder(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetOrder failed: %v", err)
		}

		if retrieved.ID != original.ID {
			t.Errorf("ID mismatch: got %s, want %s", retrieved.ID, original.ID)
		}
		if !retrieved.Total.Equal(original.Total) {
			t.Errorf("Total mismatch: got %s, want %s", retrieved.Total, original.Total)
		}
		if retrieved.PaymentMethod != models.PaymentCard {
			t.Errorf("PaymentMethod mismatch: got %s", retrieved.PaymentMethod)
		}
		if retrieved.CompletedAt != 1700000000 {
			t.Errorf("CompletedAt mismatch: got %d", retrieved.CompletedAt)
		}
		if len(retrieved.Lines) != 2 {
			t.Fatalf("Lines count mismatch: got %d, want 2", len(retrieved.Lines))
		}

		double := retrieved.Lines[1]
		if !double.IsDouble || double.Quantity != 1 {
			t.Errorf("Second line mismatch: %+v", double)
		}
		if double.UnitPrice.StringFixed(2) != "14.40" {
			t.Errorf("UnitPrice mismatch: got %s, want 14.40", double.UnitPrice.StringFixed(2))
		}
	})

	t.Run("GetOrder returns ErrOrderNotFound", func(t *testing.T) {
		_, err := store.GetOrder(ctx, "non-existent-id")
		if !errors.Is(err, storage.ErrOrderNotFound) {
			t.Errorf("Expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("RecordOrder rejects duplicate ID", func(t *testing.T) {
		order := testOrder(1)
		order.ID = "dup"
		if err := store.RecordOrder(ctx, order); err != nil {
			t.Fatalf("RecordOrder failed: %v", err)
		}
		if err := store.RecordOrder(ctx, testOrderWithID("dup")); err == nil {
			t.Error("Expected error for duplicate order ID")
		}
	})
}

func testOrderWithID(id string) *models.Order {
	o := testOrder(2)
	o.ID = id
	return o
}

func TestListOrders(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, ts := range []int64{100, 300, 200} {
		if err := store.RecordOrder(ctx, testOrder(ts)); err != nil {
			t.Fatalf("RecordOrder failed: %v", err)
		}
	}

	tests := []struct {
		name  string
		limit int
		want  []int64
	}{
		{"all", 0, []int64{300, 200, 100}},
		{"limited", 2, []int64{300, 200}},
		{"limit above count", 10, []int64{300, 200, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := store.ListOrders(ctx, tt.limit)
			if err != nil {
				t.Fatalf("ListOrders failed: %v", err)
			}
			if len(orders) != len(tt.want) {
				t.Fatalf("Count mismatch: got %d, want %d", len(orders), len(tt.want))
			}
			for i, o := range orders {
				if o.CompletedAt != tt.want[i] {
					t.Errorf("orders[%d].CompletedAt = %d, want %d", i, o.CompletedAt, tt.want[i])
				}
				if len(o.Lines) != 2 {
					t.Errorf("orders[%d] has %d lines, want 2", i, len(o.Lines))
				}
			}
		})
	}
}

func TestListOrders_Empty(t *testing.T) {
	store := newTestStore(t)

	orders, err := store.ListOrders(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListOrders failed: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("Expected no orders, got %d", len(orders))
	}
}
