package models

import "github.com/shopspring/decimal"

// PaymentMethod is how the customer paid.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentQR   PaymentMethod = "qr"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCard || m == PaymentQR
}

// Order is a completed kiosk order, written to the journal once the pouring
// simulation finishes.
type Order struct {
	// ID is the unique identifier for the order (UUID format).
	ID string

	// Lines are the poured cart lines, in cart order.
	Lines []OrderLine

	// Total is the grand total charged.
	Total decimal.Decimal

	// PaymentMethod is the simulated payment used.
	PaymentMethod PaymentMethod

	// CompletedAt is the Unix timestamp when the order completed.
	CompletedAt int64
}

// OrderLine is a priced cart line as recorded in the journal.
type OrderLine struct {
	DrinkID   string
	Name      string
	IsDouble  bool
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}
