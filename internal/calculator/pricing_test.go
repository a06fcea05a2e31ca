package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/drinko/internal/models"
)

func line(id string, price int64, isDouble bool, qty int) models.LineItem {
	return models.LineItem{
		Drink:    models.Drink{ID: id, Name: "Drink " + id, Price: decimal.NewFromInt(price)},
		LineID:   id + "-line",
		IsDouble: isDouble,
		Quantity: qty,
	}
}

func TestUnitPrice(t *testing.T) {
	tests := []struct {
		name string
		item models.LineItem
		want string
	}{
		{name: "regular keeps catalog price", item: line("3", 8, false, 1), want: "8.00"},
		{name: "double is 1.8x", item: line("3", 8, true, 1), want: "14.40"},
		{name: "double shot", item: line("1", 5, true, 3), want: "9.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(UnitPrice(tt.item))
			if got != tt.want {
				t.Errorf("UnitPrice() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name string
		cart []models.LineItem
		want string
	}{
		{
			name: "empty cart",
			cart: nil,
			want: "0.00",
		},
		{
			// 8*2 + (8*1.8)*1 = 30.40
			name: "regular x2 and double x1",
			cart: []models.LineItem{line("3", 8, false, 2), line("3", 8, true, 1)},
			want: "30.40",
		},
		{
			name: "regular only after removing the double",
			cart: []models.LineItem{line("3", 8, false, 2)},
			want: "16.00",
		},
		{
			// 5*1.8*3 + 9*1 + 3*1.8*2 = 27 + 9 + 10.8
			name: "mixed drinks",
			cart: []models.LineItem{line("1", 5, true, 3), line("5", 9, false, 1), line("8", 3, true, 2)},
			want: "46.80",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(Total(tt.cart))
			if got != tt.want {
				t.Errorf("Total() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTotal_OrderIndependent(t *testing.T) {
	cart := []models.LineItem{
		line("1", 5, true, 3),
		line("3", 8, false, 2),
		line("3", 8, true, 1),
		line("8", 3, true, 7),
	}
	want := Total(cart)

	reversed := make([]models.LineItem, len(cart))
	for i, item := range cart {
		reversed[len(cart)-1-i] = item
	}
	rotated := append(append([]models.LineItem{}, cart[2:]...), cart[:2]...)

	for name, permuted := range map[string][]models.LineItem{"reversed": reversed, "rotated": rotated} {
		if got := Total(permuted); !got.Equal(want) {
			t.Errorf("%s: Total() = %s, want %s", name, got, want)
		}
	}
}

func TestConsolidate(t *testing.T) {
	cart := []models.LineItem{
		line("3", 8, false, 2),
		line("1", 5, false, 1),
		line("3", 8, true, 1),
	}

	groups := Consolidate(cart)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	gin := groups[0]
	if gin.DrinkID != "3" {
		t.Errorf("first group: expected drink 3, got %s", gin.DrinkID)
	}
	if gin.RegularQuantity != 2 || gin.DoubleQuantity != 1 {
		t.Errorf("drink 3: expected regular 2 / double 1, got %d / %d", gin.RegularQuantity, gin.DoubleQuantity)
	}
	if Format(gin.Total) != "30.40" {
		t.Errorf("drink 3 total: expected 30.40, got %s", Format(gin.Total))
	}

	shot := groups[1]
	if shot.RegularQuantity != 1 || shot.DoubleQuantity != 0 {
		t.Errorf("drink 1: expected regular 1 / double 0, got %d / %d", shot.RegularQuantity, shot.DoubleQuantity)
	}
}

func TestEditorTotal(t *testing.T) {
	// 5 doubles and 1 regular of an 8.00 drink: 8 + 5*14.40 = 80.00
	got := Format(EditorTotal(decimal.NewFromInt(8), 1, 5))
	if got != "80.00" {
		t.Errorf("EditorTotal() = %s, want 80.00", got)
	}
}
