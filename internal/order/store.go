// Package order holds the kiosk's order state: the cart, and the drink editor
// (modal) used to add or change a drink's lines.
//
// Invalid mutations (unknown line ids, out-of-range positions, non-positive
// quantities) are silent no-ops. The Store is not safe for concurrent use;
// the flow controller owns it and serializes access.
package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/drinko/internal/calculator"
	"github.com/mmynk/drinko/internal/models"
)

// Store is the in-memory order state of one kiosk session.
type Store struct {
	cart   []models.LineItem
	editor models.EditorState
	newID  func() string
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUID line id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cart returns a copy of the cart lines.
func (s *Store) Cart() []models.LineItem {
	return append([]models.LineItem(nil), s.cart...)
}

// Len returns the number of cart lines.
func (s *Store) Len() int {
	return len(s.cart)
}

// IsEmpty reports whether the cart has no lines.
func (s *Store) IsEmpty() bool {
	return len(s.cart) == 0
}

// Total returns the cart grand total.
func (s *Store) Total() decimal.Decimal {
	return calculator.Total(s.cart)
}

// Line returns the cart line with the given id.
func (s *Store) Line(lineID string) (models.LineItem, bool) {
	if i := s.indexOf(lineID); i >= 0 {
		return s.cart[i], true
	}
	return models.LineItem{}, false
}

// Contains reports whether any line references drinkID.
func (s *Store) Contains(drinkID string) bool {
	for _, item := range s.cart {
		if item.ID == drinkID {
			return true
		}
	}
	return false
}

// AddLineItem appends a new line with a fresh line id and closes the editor.
// It is a no-op when quantity <= 0.
func (s *Store) AddLineItem(drink models.Drink, isDouble bool, quantity int) {
	if quantity <= 0 {
		return
	}
	s.cart = append(s.cart, models.LineItem{
		Drink:    drink,
		LineID:   s.newID(),
		IsDouble: isDouble,
		Quantity: quantity,
	})
	s.CloseEditor()
}

// UpdateLineItem replaces the variant and quantity of a line in place and
// closes the editor. Unknown ids are ignored; quantity <= 0 removes the line.
func (s *Store) UpdateLineItem(lineID string, isDouble bool, quantity int) {
	i := s.indexOf(lineID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		s.RemoveLineItem(i)
	} else {
		s.cart[i].IsDouble = isDouble
		s.cart[i].Quantity = quantity
	}
	s.CloseEditor()
}

// RemoveLineItem removes the line at position. Out-of-range positions are ignored.
func (s *Store) RemoveLineItem(position int) {
	if position < 0 || position >= len(s.cart) {
		return
	}
	s.cart = append(s.cart[:position], s.cart[position+1:]...)
}

// RemoveDrink removes every line referencing drinkID.
// Indices are removed from the highest down so earlier removals do not shift
// the positions still to be removed.
func (s *Store) RemoveDrink(drinkID string) {
	var positions []int
	for i, item := range s.cart {
		if item.ID == drinkID {
			positions = append(positions, i)
		}
	}
	for i := len(positions) - 1; i >= 0; i-- {
		s.RemoveLineItem(positions[i])
	}
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.cart = nil
}

// Reset clears the cart and closes the editor.
func (s *Store) Reset() {
	s.ClearCart()
	s.CloseEditor()
}

func (s *Store) indexOf(lineID string) int {
	for i, item := range s.cart {
		if item.LineID == lineID {
			return i
		}
	}
	return -1
}

// variantQuantity sums the quantity of every line for (drinkID, variant).
func (s *Store) variantQuantity(drinkID string, isDouble bool) int {
	n := 0
	for _, item := range s.cart {
		if item.ID == drinkID && item.IsDouble == isDouble {
			n += item.Quantity
		}
	}
	return n
}

// setVariantQuantity makes the cart hold exactly one line of quantity for
// (drink, variant), or none when quantity is 0. The preferred line (if it
// matches the pair) is kept in place; other lines for the pair are removed.
func (s *Store) setVariantQuantity(drink models.Drink, isDouble bool, quantity int, preferred string) {
	keep := -1
	for i, item := range s.cart {
		if item.ID != drink.ID || item.IsDouble != isDouble {
			continue
		}
		if keep < 0 || item.LineID == preferred {
			keep = i
		}
	}

	if quantity > 0 && keep >= 0 {
		s.cart[keep].Quantity = quantity
	}

	kept := s.cart[:0]
	for i, item := range s.cart {
		if item.ID == drink.ID && item.IsDouble == isDouble && (quantity <= 0 || i != keep) {
			continue
		}
		kept = append(kept, item)
	}
	s.cart = kept

	if quantity > 0 && keep < 0 {
		s.cart = append(s.cart, models.LineItem{
			Drink:    drink,
			LineID:   s.newID(),
			IsDouble: isDouble,
			Quantity: quantity,
		})
	}
}
