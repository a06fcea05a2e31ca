package models

// LineItem represents one entry in the cart: a drink, a variant and a quantity.
type LineItem struct {
	// Drink is a snapshot of the catalog entry at the time it was added.
	Drink

	// LineID uniquely identifies this line (UUID format). It is distinct from
	// Drink.ID so the same drink can appear as a regular and a double line.
	LineID string `json:"lineId"`

	// IsDouble selects the double variant (price x1.8).
	IsDouble bool `json:"isDouble"`

	// Quantity is always >= 1 for a line in the cart.
	Quantity int `json:"quantity"`
}

// Variant returns the line's variant.
func (li LineItem) Variant() Variant {
	return VariantOf(li.IsDouble)
}

// EditorState is the drink editor (modal) state.
// When Editing is nil the editor is adding a new drink to the cart.
type EditorState struct {
	Open    bool
	Drink   *Drink
	Editing *LineItem

	// Regular and Double are the modal-local counters.
	Regular int
	Double  int
}

// TotalQuantity is the combined regular and double count in the editor.
func (e EditorState) TotalQuantity() int {
	return e.Regular + e.Double
}
