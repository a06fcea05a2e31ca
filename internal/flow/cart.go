package flow

import "github.com/mmynk/drinko/internal/models"

// cartEditable reports whether the cart may change on the current screen.
func (c *Controller) cartEditable() bool {
	switch c.screen {
	case ScreenMenu, ScreenBasket:
		return true
	case ScreenPayment:
		return c.payment.step == PaymentSummary
	}
	return false
}

// mutate runs fn as a cart mutation if the current screen allows one.
func (c *Controller) mutate(fn func()) Snapshot {
	return c.run(func() {
		if !c.cartEditable() {
			return
		}
		fn()
		c.dirty = true
	})
}

// OpenEditor shows the drink editor. With an empty lineID it adds drinkID
// to the cart; otherwise it edits the drink of that cart line.
func (c *Controller) OpenEditor(drinkID, lineID string) Snapshot {
	return c.mutate(func() {
		if lineID != "" {
			if line, ok := c.store.Line(lineID); ok {
				c.store.OpenEditor(line.Drink, &line)
			}
			return
		}
		if drink, ok := c.catalog.Lookup(drinkID); ok {
			c.store.OpenEditor(drink, nil)
		}
	})
}

// AdjustEditor increments (delta > 0) or decrements (delta < 0) the editor's
// counter for variant by one.
func (c *Controller) AdjustEditor(variant models.Variant, delta int) Snapshot {
	return c.mutate(func() {
		switch {
		case delta > 0:
			c.store.IncrementEditor(variant)
		case delta < 0:
			c.store.DecrementEditor(variant)
		}
	})
}

// SaveEditor applies the editor to the cart.
func (c *Controller) SaveEditor() Snapshot {
	return c.mutate(func() { c.store.SaveEditor() })
}

// CloseEditor hides the editor without saving.
func (c *Controller) CloseEditor() Snapshot {
	return c.mutate(c.store.CloseEditor)
}

// AddLineItem appends a line for drinkID.
func (c *Controller) AddLineItem(drinkID string, isDouble bool, quantity int) Snapshot {
	return c.mutate(func() {
		if drink, ok := c.catalog.Lookup(drinkID); ok {
			c.store.AddLineItem(drink, isDouble, quantity)
		}
	})
}

// UpdateLineItem changes a line's variant and quantity.
func (c *Controller) UpdateLineItem(lineID string, isDouble bool, quantity int) Snapshot {
	return c.mutate(func() { c.store.UpdateLineItem(lineID, isDouble, quantity) })
}

// RemoveLineItem removes the line at position.
func (c *Controller) RemoveLineItem(position int) Snapshot {
	return c.mutate(func() { c.store.RemoveLineItem(position) })
}

// RemoveDrink removes every line of drinkID.
func (c *Controller) RemoveDrink(drinkID string) Snapshot {
	return c.mutate(func() { c.store.RemoveDrink(drinkID) })
}

// ClearCart empties the cart.
func (c *Controller) ClearCart() Snapshot {
	return c.mutate(c.store.ClearCart)
}
