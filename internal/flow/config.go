package flow

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/drinko/internal/models"
)

// Config holds the flow's timings.
type Config struct {
	IdleTimeout time.Duration
	IdleTick    time.Duration

	CardDelay    time.Duration
	QRDelay      time.Duration
	SuccessDelay time.Duration
	RejectDelay  time.Duration

	PourTick        time.Duration
	PourStep        int
	CompletionDelay time.Duration
}

// DefaultConfig returns the kiosk's standard timings.
func DefaultConfig() Config {
	return Config{
		IdleTimeout:     60 * time.Second,
		IdleTick:        time.Second,
		CardDelay:       4 * time.Second,
		QRDelay:         8 * time.Second,
		SuccessDelay:    2 * time.Second,
		RejectDelay:     3 * time.Second,
		PourTick:        50 * time.Millisecond,
		PourStep:        2,
		CompletionDelay: time.Second,
	}
}

func (c Config) paymentDelay(m models.PaymentMethod) time.Duration {
	if m == models.PaymentQR {
		return c.QRDelay
	}
	return c.CardDelay
}

func (c Config) idleSeconds() int {
	if c.IdleTick <= 0 {
		return 0
	}
	return int(c.IdleTimeout / c.IdleTick)
}

// Decider settles a simulated payment.
type Decider interface {
	Approve(method models.PaymentMethod, total decimal.Decimal) bool
}

// DeciderFunc adapts a function to Decider.
type DeciderFunc func(method models.PaymentMethod, total decimal.Decimal) bool

// Approve calls f.
func (f DeciderFunc) Approve(method models.PaymentMethod, total decimal.Decimal) bool {
	return f(method, total)
}

// AlwaysApprove approves every payment. It is the default Decider.
var AlwaysApprove = DeciderFunc(func(models.PaymentMethod, decimal.Decimal) bool { return true })

// RandomDecider approves a payment with probability rate.
// A rate of 1 or more always approves; 0 or less always rejects.
func RandomDecider(rate float64) Decider {
	return DeciderFunc(func(models.PaymentMethod, decimal.Decimal) bool {
		if rate >= 1 {
			return true
		}
		return rand.Float64() < rate
	})
}
