package flow

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/mmynk/drinko/internal/calculator"
	"github.com/mmynk/drinko/internal/models"
)

const fullProgress = 100

type pourState struct {
	index    int
	count    int
	progress int
}

func (c *Controller) startPouringLocked() {
	c.pour = pourState{count: c.store.Len()}
	if c.pour.count == 0 {
		c.scheduleCompletionLocked()
		return
	}
	c.schedulePourTickLocked()
}

func (c *Controller) schedulePourTickLocked() {
	c.after(&c.screenTimers, c.cfg.PourTick, func() {
		c.pourTickLocked()
	})
}

// pourTickLocked advances the current line; a line at 100% moves on to the
// next line at 0% on the following tick.
func (c *Controller) pourTickLocked() {
	if c.pour.progress >= fullProgress {
		c.pour.index++
		c.pour.progress = 0
	} else {
		c.pour.progress = min(c.pour.progress+c.cfg.PourStep, fullProgress)
	}
	c.dirty = true

	if c.pour.progress >= fullProgress && c.pour.index >= c.pour.count-1 {
		c.scheduleCompletionLocked()
		return
	}
	c.schedulePourTickLocked()
}

func (c *Controller) scheduleCompletionLocked() {
	c.after(&c.screenTimers, c.cfg.CompletionDelay, func() {
		c.enterLocked(ScreenCompletion)
	})
}

// completeOrderLocked records the poured cart as an order.
func (c *Controller) completeOrderLocked() {
	cart := c.store.Cart()
	o := models.Order{
		ID:            c.newOrderID(),
		Lines:         make([]models.OrderLine, len(cart)),
		Total:         calculator.Total(cart),
		PaymentMethod: c.payment.paid,
		CompletedAt:   c.sched.Now().Unix(),
	}
	for i, item := range cart {
		o.Lines[i] = models.OrderLine{
			DrinkID:   item.ID,
			Name:      item.Name,
			IsDouble:  item.IsDouble,
			Quantity:  item.Quantity,
			UnitPrice: calculator.UnitPrice(item),
			LineTotal: calculator.LineTotal(item),
		}
	}
	c.lastOrder = &o
	slog.Info("Order completed", "order_id", o.ID, "total", o.Total.StringFixed(2), "method", o.PaymentMethod)

	if h := c.hooks.OnOrderCompleted; h != nil {
		c.events = append(c.events, func() { h(o) })
	}
}

func newUUID() string {
	return uuid.New().String()
}
