package flow

import (
	"log/slog"

	"github.com/mmynk/drinko/internal/models"
	"github.com/mmynk/drinko/internal/timer"
)

type paymentState struct {
	timers timer.Group
	step   PaymentStep
	status PaymentStatus
	method models.PaymentMethod
	// paid is the method of the last approved payment, kept for the journal.
	paid models.PaymentMethod
}

func (p *paymentState) reset() {
	p.timers.Stop()
	p.step = PaymentSummary
	p.status = StatusPending
	p.method = ""
}

// StartPayment begins the simulated card or QR payment from the Payment
// summary. The Decider settles it after the method's delay: approval moves
// on to Pouring, rejection returns to the summary with the cart intact.
// The inactivity countdown is paused until the summary is shown again.
func (c *Controller) StartPayment(method models.PaymentMethod) Snapshot {
	return c.run(func() {
		if c.screen != ScreenPayment || c.payment.step != PaymentSummary {
			return
		}
		if !method.Valid() || c.store.IsEmpty() {
			return
		}

		c.payment.step = PaymentStep(method)
		c.payment.status = StatusPending
		c.payment.method = method
		c.dirty = true
		c.idle.stop()

		c.after(&c.payment.timers, c.cfg.paymentDelay(method), func() {
			c.settlePaymentLocked(method)
		})
	})
}

// CancelPayment abandons a pending payment and returns to the summary.
func (c *Controller) CancelPayment() Snapshot {
	return c.run(func() {
		if c.screen != ScreenPayment || c.payment.step == PaymentSummary || c.payment.status != StatusPending {
			return
		}
		c.payment.reset()
		c.startIdleLocked()
		c.dirty = true
	})
}

func (c *Controller) settlePaymentLocked(method models.PaymentMethod) {
	total := c.store.Total()
	approved := c.decider.Approve(method, total)
	slog.Info("Payment settled", "method", method, "total", total.StringFixed(2), "approved", approved)

	if h := c.hooks.OnPayment; h != nil {
		c.events = append(c.events, func() { h(method, approved) })
	}
	c.dirty = true

	if approved {
		c.payment.status = StatusSuccess
		c.payment.paid = method
		c.confirmCancel = false
		c.after(&c.payment.timers, c.cfg.SuccessDelay, func() {
			c.enterLocked(ScreenPouring)
		})
		return
	}

	c.payment.status = StatusRejected
	c.after(&c.payment.timers, c.cfg.RejectDelay, func() {
		c.payment.reset()
		c.startIdleLocked()
		c.dirty = true
	})
}
