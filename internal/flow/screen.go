package flow

import "strings"

// Screen is one step of the kiosk flow.
type Screen string

const (
	ScreenWelcome    Screen = "welcome"
	ScreenMenu       Screen = "menu"
	ScreenBasket     Screen = "basket"
	ScreenPayment    Screen = "payment"
	ScreenPouring    Screen = "pouring"
	ScreenCompletion Screen = "completion"
)

var routes = map[Screen]string{
	ScreenWelcome:    "/",
	ScreenMenu:       "/menu",
	ScreenBasket:     "/basket",
	ScreenPayment:    "/payment",
	ScreenPouring:    "/pouring",
	ScreenCompletion: "/completion",
}

// Route returns the path the UI shows for s.
func (s Screen) Route() string {
	if r, ok := routes[s]; ok {
		return r
	}
	return "/"
}

// ScreenForRoute resolves a path to a screen. Unmatched paths resolve to
// Welcome, like the UI router's fallback.
func ScreenForRoute(path string) Screen {
	p := strings.TrimSuffix(strings.TrimSpace(path), "/")
	if p == "" {
		return ScreenWelcome
	}
	for s, r := range routes {
		if r == p {
			return s
		}
	}
	return ScreenWelcome
}

// idles reports whether the inactivity countdown runs on s.
func (s Screen) idles() bool {
	return s == ScreenMenu || s == ScreenBasket || s == ScreenPayment
}

// PaymentStep is the sub-state of the Payment screen.
type PaymentStep string

const (
	PaymentSummary PaymentStep = "summary"
	PaymentCard    PaymentStep = "card"
	PaymentQR      PaymentStep = "qr"
)

// PaymentStatus is the outcome shown while a payment is processed.
type PaymentStatus string

const (
	StatusPending  PaymentStatus = "pending"
	StatusSuccess  PaymentStatus = "success"
	StatusRejected PaymentStatus = "rejected"
)
