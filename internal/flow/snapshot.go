package flow

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/drinko/internal/calculator"
	"github.com/mmynk/drinko/internal/models"
)

// Snapshot is an immutable view of the session after a state change.
// Version increases with every change, so consumers receiving snapshots
// from several goroutines can drop stale ones.
type Snapshot struct {
	Version uint64
	Screen  Screen
	Route   string

	Lines     []Line
	Groups    []calculator.Group
	Total     decimal.Decimal
	ItemCount int
	CanPay    bool

	Editor  EditorView
	Payment PaymentView
	Pouring PouringView
	Idle    IdleView

	// ConfirmCancel is set while the cancel confirmation prompt is shown.
	ConfirmCancel bool

	// LastOrderID is the journal id of the order shown on Completion.
	LastOrderID string
}

// Line is a priced cart line.
type Line struct {
	models.LineItem
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// EditorView is the drink editor as rendered.
type EditorView struct {
	Open          bool
	Drink         *models.Drink
	EditingLineID string
	Regular       int
	Double        int
	Total         decimal.Decimal
	AlreadyInCart bool
	CanIncrement  bool
	CanSave       bool
}

// PaymentView is the Payment screen's sub-state.
type PaymentView struct {
	Step   PaymentStep
	Status PaymentStatus
	Method models.PaymentMethod
}

// PouringView is the pouring progress: Index is the line being poured and
// Progress its percentage.
type PouringView struct {
	Index    int
	Count    int
	Progress int
}

// IdleView is the inactivity countdown.
type IdleView struct {
	Active      bool
	SecondsLeft int
}

func (c *Controller) snapshotLocked() Snapshot {
	cart := c.store.Cart()
	lines := make([]Line, len(cart))
	items := 0
	for i, item := range cart {
		lines[i] = Line{
			LineItem:  item,
			UnitPrice: calculator.UnitPrice(item),
			LineTotal: calculator.LineTotal(item),
		}
		items += item.Quantity
	}

	snap := Snapshot{
		Version:       c.version,
		Screen:        c.screen,
		Route:         c.screen.Route(),
		Lines:         lines,
		Groups:        calculator.Consolidate(cart),
		Total:         calculator.Total(cart),
		ItemCount:     items,
		CanPay:        len(cart) > 0,
		ConfirmCancel: c.confirmCancel,
		Idle: IdleView{
			Active:      c.idle.active,
			SecondsLeft: c.idle.left,
		},
	}

	if e := c.store.Editor(); e.Open {
		snap.Editor = EditorView{
			Open:          true,
			Drink:         e.Drink,
			Regular:       e.Regular,
			Double:        e.Double,
			Total:         calculator.EditorTotal(e.Drink.Price, e.Regular, e.Double),
			AlreadyInCart: c.store.AlreadyInCart(),
			CanIncrement:  c.store.CanIncrement(),
			CanSave:       e.Editing != nil || e.TotalQuantity() > 0,
		}
		if e.Editing != nil {
			snap.Editor.EditingLineID = e.Editing.LineID
		}
	}

	if c.screen == ScreenPayment {
		snap.Payment = PaymentView{
			Step:   c.payment.step,
			Status: c.payment.status,
			Method: c.payment.method,
		}
	}

	if c.screen == ScreenPouring {
		snap.Pouring = PouringView{
			Index:    c.pour.index,
			Count:    c.pour.count,
			Progress: c.pour.progress,
		}
	}

	if c.lastOrder != nil {
		snap.LastOrderID = c.lastOrder.ID
	}
	return snap
}
