package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/drinko/internal/models"
)

func TestOpenEditor_InitialCounts(t *testing.T) {
	s := newTestStore()
	s.AddLineItem(gin, false, 2)
	s.AddLineItem(gin, true, 1)
	s.AddLineItem(gin, false, 1)

	s.OpenEditor(tea, nil)
	e := s.Editor()
	assert.True(t, e.Open)
	assert.Nil(t, e.Editing)
	assert.Equal(t, 1, e.Regular)
	assert.Equal(t, 0, e.Double)
	assert.False(t, s.AlreadyInCart())

	s.OpenEditor(gin, nil)
	assert.True(t, s.AlreadyInCart())

	line, ok := s.Line("line-1")
	require.True(t, ok)
	s.OpenEditor(gin, &line)
	e = s.Editor()
	require.NotNil(t, e.Editing)
	assert.Equal(t, 3, e.Regular)
	assert.Equal(t, 1, e.Double)
	assert.False(t, s.AlreadyInCart())
}

func TestIncrementEditor_Cap(t *testing.T) {
	s := newTestStore()
	s.OpenEditor(gin, nil)

	for i := 0; i < 20; i++ {
		v := models.VariantRegular
		if i%2 == 0 {
			v = models.VariantDouble
		}
		s.IncrementEditor(v)
	}

	e := s.Editor()
	assert.Equal(t, MaxEditorQuantity, e.TotalQuantity())
	assert.False(t, s.IncrementEditor(models.VariantRegular))
	assert.False(t, s.CanIncrement())
}

func TestDecrementEditor_FloorsAtZero(t *testing.T) {
	s := newTestStore()
	s.OpenEditor(gin, nil)

	assert.True(t, s.DecrementEditor(models.VariantRegular))
	assert.False(t, s.DecrementEditor(models.VariantRegular))
	assert.False(t, s.DecrementEditor(models.VariantDouble))

	e := s.Editor()
	assert.Equal(t, 0, e.Regular)
	assert.Equal(t, 0, e.Double)
}

func TestEditorClosed_RejectsCounters(t *testing.T) {
	s := newTestStore()
	assert.False(t, s.IncrementEditor(models.VariantRegular))
	assert.False(t, s.DecrementEditor(models.VariantRegular))
	assert.False(t, s.SaveEditor())
}

func TestSaveEditor_AddMerges(t *testing.T) {
	s := newTestStore()
	s.AddLineItem(gin, false, 2)

	s.OpenEditor(gin, nil)
	s.IncrementEditor(models.VariantRegular)
	s.IncrementEditor(models.VariantDouble)
	require.True(t, s.SaveEditor())

	assertOneLinePerVariant(t, s)
	cart := s.Cart()
	require.Len(t, cart, 2)
	assert.Equal(t, "line-1", cart[0].LineID)
	assert.Equal(t, 4, cart[0].Quantity)
	assert.True(t, cart[1].IsDouble)
	assert.Equal(t, 1, cart[1].Quantity)
	assert.False(t, s.Editor().Open)
}

func TestSaveEditor_AddZeroRejected(t *testing.T) {
	s := newTestStore()
	s.OpenEditor(gin, nil)
	s.DecrementEditor(models.VariantRegular)

	assert.False(t, s.SaveEditor())
	assert.True(t, s.Editor().Open)
	assert.True(t, s.IsEmpty())
}

func TestSaveEditor_EditSetsExactCounts(t *testing.T) {
	s := newTestStore()
	s.AddLineItem(gin, false, 2)
	s.AddLineItem(tea, false, 1)
	s.AddLineItem(gin, false, 1)
	s.AddLineItem(gin, true, 2)

	line, _ := s.Line("line-3")
	s.OpenEditor(gin, &line)
	s.DecrementEditor(models.VariantDouble)
	require.True(t, s.SaveEditor())

	assertOneLinePerVariant(t, s)
	cart := s.Cart()
	require.Len(t, cart, 3)
	assert.Equal(t, "line-2", cart[0].LineID)
	assert.Equal(t, "line-3", cart[1].LineID, "edited line is kept")
	assert.Equal(t, 3, cart[1].Quantity)
	assert.Equal(t, 1, cart[2].Quantity)
	assert.True(t, cart[2].IsDouble)
}

func TestSaveEditor_EditToZeroRemovesDrink(t *testing.T) {
	s := newTestStore()
	s.AddLineItem(gin, false, 2)
	s.AddLineItem(gin, true, 1)
	s.AddLineItem(tea, false, 1)

	line, _ := s.Line("line-1")
	s.OpenEditor(gin, &line)
	for s.DecrementEditor(models.VariantRegular) {
	}
	for s.DecrementEditor(models.VariantDouble) {
	}
	require.True(t, s.SaveEditor())

	assert.False(t, s.Contains("3"))
	assert.Equal(t, 1, s.Len())
}

func TestSaveEditor_EditAddsMissingVariant(t *testing.T) {
	s := newTestStore()
	s.AddLineItem(gin, false, 1)

	line, _ := s.Line("line-1")
	s.OpenEditor(gin, &line)
	s.IncrementEditor(models.VariantDouble)
	require.True(t, s.SaveEditor())

	cart := s.Cart()
	require.Len(t, cart, 2)
	assert.False(t, cart[0].IsDouble)
	assert.True(t, cart[1].IsDouble)
	assert.Equal(t, "line-2", cart[1].LineID)
}

func assertOneLinePerVariant(t *testing.T, s *Store) {
	t.Helper()
	seen := make(map[string]bool)
	for _, item := range s.Cart() {
		key := item.ID + "/" + string(item.Variant())
		assert.False(t, seen[key], "duplicate line for %s", key)
		seen[key] = true
	}
}
