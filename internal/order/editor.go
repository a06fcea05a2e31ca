package order

import (
	"github.com/mmynk/drinko/internal/models"
)

// MaxEditorQuantity caps regular+double in one editor session.
const MaxEditorQuantity = 10

// Editor returns a copy of the editor state.
func (s *Store) Editor() models.EditorState {
	e := s.editor
	if e.Drink != nil {
		d := *e.Drink
		e.Drink = &d
	}
	if e.Editing != nil {
		li := *e.Editing
		e.Editing = &li
	}
	return e
}

// OpenEditor shows the editor for drink. When editing is non-nil the editor
// changes that drink's existing lines and starts from their current regular
// and double quantities; otherwise it starts a new selection of one regular.
func (s *Store) OpenEditor(drink models.Drink, editing *models.LineItem) {
	d := drink
	s.editor = models.EditorState{
		Open:  true,
		Drink: &d,
	}

	if editing != nil {
		li := *editing
		s.editor.Editing = &li
		s.editor.Regular = s.variantQuantity(drink.ID, false)
		s.editor.Double = s.variantQuantity(drink.ID, true)
		return
	}

	s.editor.Regular = 1
}

// CloseEditor hides the editor and drops its selection.
func (s *Store) CloseEditor() {
	s.editor = models.EditorState{}
}

// CanIncrement reports whether another item fits under MaxEditorQuantity.
func (s *Store) CanIncrement() bool {
	return s.editor.Open && s.editor.TotalQuantity() < MaxEditorQuantity
}

// IncrementEditor adds one to the variant's counter. It returns false when
// the editor is closed or the combined count is already at the cap.
func (s *Store) IncrementEditor(v models.Variant) bool {
	if !s.CanIncrement() || !v.Valid() {
		return false
	}
	if v.IsDouble() {
		s.editor.Double++
	} else {
		s.editor.Regular++
	}
	return true
}

// DecrementEditor subtracts one from the variant's counter, flooring at 0.
func (s *Store) DecrementEditor(v models.Variant) bool {
	if !s.editor.Open || !v.Valid() {
		return false
	}
	counter := &s.editor.Regular
	if v.IsDouble() {
		counter = &s.editor.Double
	}
	if *counter == 0 {
		return false
	}
	*counter--
	return true
}

// AlreadyInCart reports whether the editor is adding a drink that already
// has lines in the cart.
func (s *Store) AlreadyInCart() bool {
	return s.editor.Open && s.editor.Editing == nil && s.Contains(s.editor.Drink.ID)
}

// SaveEditor applies the editor's counters to the cart and closes it.
//
// When editing, the drink's regular and double lines are set to exactly the
// counters; a counter of 0 removes that line, so zeroing both removes the
// drink. When adding, the counters are merged into any existing lines of the
// same variant. Either way the cart ends with at most one line per
// (drink, variant). Adding with both counters at 0 is rejected and leaves
// the editor open.
func (s *Store) SaveEditor() bool {
	e := s.editor
	if !e.Open || e.Drink == nil {
		return false
	}
	drink := *e.Drink

	regular, double := e.Regular, e.Double
	preferred := ""
	if e.Editing != nil {
		preferred = e.Editing.LineID
	} else {
		if e.TotalQuantity() == 0 {
			return false
		}
		regular += s.variantQuantity(drink.ID, false)
		double += s.variantQuantity(drink.ID, true)
	}

	s.setVariantQuantity(drink, false, regular, preferred)
	s.setVariantQuantity(drink, true, double, preferred)
	s.CloseEditor()
	return true
}
