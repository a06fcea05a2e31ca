package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/drinko/internal/models"
	"github.com/mmynk/drinko/internal/storage"
)

const recordTimeout = 5 * time.Second

// RecordOrders returns a flow.Hooks OnOrderCompleted callback that writes
// completed orders to the journal. Failures are logged; the kiosk carries on.
func RecordOrders(store storage.Store) func(models.Order) {
	return func(o models.Order) {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := store.RecordOrder(ctx, &o); err != nil {
			slog.Error("Failed to record order", "order_id", o.ID, "error", err)
			return
		}
		slog.Info("Order recorded", "order_id", o.ID, "total", o.Total.StringFixed(2))
	}
}
