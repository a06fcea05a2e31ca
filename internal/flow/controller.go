// Package flow drives the kiosk's screens: Welcome, Menu, Basket, Payment,
// Pouring and Completion.
//
// A Controller owns the order state of one kiosk terminal and every timer
// that moves it between screens (inactivity countdown, simulated payment,
// simulated pouring). User operations and timer callbacks are serialized by
// one lock. Each screen's timers belong to a timer.Group that is stopped when
// the screen is left, so a callback from an old screen never mutates state.
//
// Operations never fail: requests that make no sense on the current screen
// are ignored and the unchanged snapshot is returned.
package flow

import (
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/drinko/internal/catalog"
	"github.com/mmynk/drinko/internal/models"
	"github.com/mmynk/drinko/internal/order"
	"github.com/mmynk/drinko/internal/timer"
)

// Hooks are called after a state change, outside the controller lock.
// Any of them may be nil.
type Hooks struct {
	OnChange         func(Snapshot)
	OnOrderCompleted func(models.Order)
	OnPayment        func(method models.PaymentMethod, approved bool)
	OnIdleTimeout    func()
	OnCancel         func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithConfig overrides the default timings.
func WithConfig(cfg Config) Option {
	return func(c *Controller) { c.cfg = cfg }
}

// WithDecider sets how simulated payments are settled.
func WithDecider(d Decider) Option {
	return func(c *Controller) { c.decider = d }
}

// WithHooks registers the state change callbacks.
func WithHooks(h Hooks) Option {
	return func(c *Controller) { c.hooks = h }
}

// WithOrderStore replaces the default order store.
func WithOrderStore(s *order.Store) Option {
	return func(c *Controller) { c.store = s }
}

// WithIDGenerator sets how completed orders are identified.
func WithIDGenerator(fn func() string) Option {
	return func(c *Controller) { c.newOrderID = fn }
}

// Controller is the screen flow of one kiosk terminal.
type Controller struct {
	mu sync.Mutex

	cfg        Config
	catalog    *catalog.Catalog
	sched      timer.Scheduler
	decider    Decider
	hooks      Hooks
	store      *order.Store
	newOrderID func() string

	screen        Screen
	confirmCancel bool
	lastOrder     *models.Order

	idle    idleState
	payment paymentState
	pour    pourState

	// screenTimers holds the one-shot transitions of Pouring.
	screenTimers timer.Group

	version uint64
	dirty   bool
	events  []func()
}

// New returns a controller on the Welcome screen with an empty cart.
func New(cat *catalog.Catalog, sched timer.Scheduler, opts ...Option) *Controller {
	c := &Controller{
		cfg:     DefaultConfig(),
		catalog: cat,
		sched:   sched,
		decider: AlwaysApprove,
		screen:  ScreenWelcome,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = order.NewStore()
	}
	if c.newOrderID == nil {
		c.newOrderID = newUUID
	}
	return c
}

// Catalog returns the drink catalog the controller sells from.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Snapshot returns the current state without changing it.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close stops every pending timer. The controller must not be used after.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopScreenTimersLocked()
}

// Touch records a qualifying interaction, resetting the inactivity countdown.
func (c *Controller) Touch() Snapshot {
	return c.run(func() {})
}

// Navigate handles a route change requested by the UI.
//
// Welcome leads to Menu; Menu and Basket lead to each other and, with a
// non-empty cart, to Payment; the Payment summary leads back to Menu or
// Basket. "/" and unmatched paths request a cancel. Pouring and Completion
// are only reached by timers.
func (c *Controller) Navigate(path string) Snapshot {
	return c.run(func() {
		target := ScreenForRoute(path)
		if target == ScreenWelcome {
			c.requestCancelLocked()
			return
		}

		switch c.screen {
		case ScreenWelcome:
			if target == ScreenMenu {
				c.enterLocked(target)
			}
		case ScreenMenu, ScreenBasket:
			switch target {
			case ScreenMenu, ScreenBasket:
				c.enterLocked(target)
			case ScreenPayment:
				if !c.store.IsEmpty() {
					c.enterLocked(target)
				}
			}
		case ScreenPayment:
			if c.payment.step == PaymentSummary && (target == ScreenMenu || target == ScreenBasket) {
				c.enterLocked(target)
			}
		}
	})
}

// RequestCancel asks to abandon the order. An empty cart returns to Welcome
// at once; otherwise a confirmation prompt is raised.
func (c *Controller) RequestCancel() Snapshot {
	return c.run(c.requestCancelLocked)
}

// ConfirmCancel clears the cart and returns to Welcome if the cancel prompt is shown.
func (c *Controller) ConfirmCancel() Snapshot {
	return c.run(func() {
		if c.confirmCancel && c.cancellable() {
			c.cancelLocked()
		}
	})
}

// DismissCancel hides the cancel prompt.
func (c *Controller) DismissCancel() Snapshot {
	return c.run(func() {
		if c.confirmCancel {
			c.confirmCancel = false
			c.dirty = true
		}
	})
}

// NewOrder leaves Completion for Welcome with an empty cart.
func (c *Controller) NewOrder() Snapshot {
	return c.run(func() {
		if c.screen != ScreenCompletion {
			return
		}
		c.store.Reset()
		c.lastOrder = nil
		c.enterLocked(ScreenWelcome)
	})
}

func (c *Controller) cancellable() bool {
	switch c.screen {
	case ScreenMenu, ScreenBasket:
		return true
	case ScreenPayment:
		return c.payment.status != StatusSuccess
	}
	return false
}

func (c *Controller) requestCancelLocked() {
	if !c.cancellable() {
		return
	}
	if c.store.IsEmpty() {
		c.cancelLocked()
		return
	}
	if !c.confirmCancel {
		c.confirmCancel = true
		c.dirty = true
	}
}

func (c *Controller) cancelLocked() {
	slog.Info("Order cancelled", "screen", c.screen, "lines", c.store.Len())
	c.store.Reset()
	c.enterLocked(ScreenWelcome)
	c.emit(c.hooks.OnCancel)
}

// enterLocked moves to screen s, stopping the timers of the screen being
// left and starting those of s.
func (c *Controller) enterLocked(s Screen) {
	if c.screen == s {
		return
	}
	slog.Debug("Screen changed", "from", c.screen, "to", s)

	c.stopScreenTimersLocked()
	c.store.CloseEditor()
	c.confirmCancel = false
	c.screen = s
	c.dirty = true

	switch s {
	case ScreenPayment:
		c.payment.reset()
	case ScreenPouring:
		c.startPouringLocked()
	case ScreenCompletion:
		c.completeOrderLocked()
	}
	if s.idles() {
		c.startIdleLocked()
	}
}

func (c *Controller) stopScreenTimersLocked() {
	c.idle.stop()
	c.payment.timers.Stop()
	c.screenTimers.Stop()
}

// run executes fn under the lock as a user interaction, then publishes the
// resulting snapshot and dispatches queued hooks after unlocking.
func (c *Controller) run(fn func()) Snapshot {
	return c.apply(func() {
		c.touchLocked()
		fn()
	})
}

func (c *Controller) apply(fn func()) Snapshot {
	c.mu.Lock()
	fn()
	if c.dirty {
		c.dirty = false
		c.version++
		if c.hooks.OnChange != nil {
			snap := c.snapshotLocked()
			onChange := c.hooks.OnChange
			c.events = append(c.events, func() { onChange(snap) })
		}
	}
	snap := c.snapshotLocked()
	events := c.events
	c.events = nil
	c.mu.Unlock()

	for _, ev := range events {
		ev()
	}
	return snap
}

// after schedules fn on the given group. fn runs under the lock and is
// skipped if the group was stopped after scheduling.
func (c *Controller) after(g *timer.Group, d time.Duration, fn func()) {
	gen := g.Generation()
	g.Add(c.sched.AfterFunc(d, func() {
		c.apply(func() {
			if g.Generation() != gen {
				return
			}
			fn()
		})
	}))
}

func (c *Controller) emit(hook func()) {
	if hook != nil {
		c.events = append(c.events, hook)
	}
}
