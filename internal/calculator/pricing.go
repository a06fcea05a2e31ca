package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/drinko/internal/models"
)

// DoubleMultiplier is the price factor of the double variant.
var DoubleMultiplier = decimal.RequireFromString("1.8")

// Group is the consolidated view of every cart line sharing a drink ID.
// It is used for display only; the cart keeps its separate lines.
type Group struct {
	DrinkID         string
	Name            string
	Image           string
	RegularQuantity int
	DoubleQuantity  int
	Total           decimal.Decimal
}

// VariantPrice returns the unit price of a drink for the given variant.
func VariantPrice(price decimal.Decimal, isDouble bool) decimal.Decimal {
	if isDouble {
		return price.Mul(DoubleMultiplier)
	}
	return price
}

// UnitPrice returns the per-item price of a cart line.
func UnitPrice(item models.LineItem) decimal.Decimal {
	return VariantPrice(item.Price, item.IsDouble)
}

// LineTotal returns unit price x quantity.
func LineTotal(item models.LineItem) decimal.Decimal {
	return UnitPrice(item).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Total computes the grand total of a cart.
// Decimal addition is exact, so the result does not depend on line order.
func Total(cart []models.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart {
		total = total.Add(LineTotal(item))
	}
	return total
}

// EditorTotal prices the editor's regular and double counters for a drink.
func EditorTotal(price decimal.Decimal, regular, double int) decimal.Decimal {
	r := VariantPrice(price, false).Mul(decimal.NewFromInt(int64(regular)))
	d := VariantPrice(price, true).Mul(decimal.NewFromInt(int64(double)))
	return r.Add(d)
}

// Consolidate groups cart lines by drink ID, in order of first appearance.
func Consolidate(cart []models.LineItem) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, item := range cart {
		i, exists := index[item.ID]
		if !exists {
			i = len(groups)
			index[item.ID] = i
			groups = append(groups, Group{
				DrinkID: item.ID,
				Name:    item.Name,
				Image:   item.Image,
				Total:   decimal.Zero,
			})
		}

		if item.IsDouble {
			groups[i].DoubleQuantity += item.Quantity
		} else {
			groups[i].RegularQuantity += item.Quantity
		}
		groups[i].Total = groups[i].Total.Add(LineTotal(item))
	}

	return groups
}

// Format renders an amount with two decimals for display.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
