package models

import "github.com/shopspring/decimal"

// Strength is the 1-3 strength rating shown on the menu.
type Strength int

const (
	StrengthMild   Strength = 1
	StrengthMedium Strength = 2
	StrengthStrong Strength = 3
)

// Valid reports whether s is within the 1-3 range.
func (s Strength) Valid() bool {
	return s >= StrengthMild && s <= StrengthStrong
}

// Drink is a catalog entry.
type Drink struct {
	// ID is the catalog identifier (e.g. "3").
	ID string `json:"id"`

	// Name is the display name (e.g. "Gin & Tonic").
	Name string `json:"name"`

	// Category groups drinks on the menu sidebar (e.g. "Mixes").
	Category string `json:"category"`

	// Price is the unit price of the regular variant.
	Price decimal.Decimal `json:"price"`

	// Strength is the 1-3 rating.
	Strength Strength `json:"strength"`

	// Image is an optional image URL.
	Image string `json:"image,omitempty"`
}

// Variant is the regular or double strength option of a drink.
type Variant string

const (
	VariantRegular Variant = "regular"
	VariantDouble  Variant = "double"
)

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v == VariantRegular || v == VariantDouble
}

// IsDouble reports whether v is the double variant.
func (v Variant) IsDouble() bool {
	return v == VariantDouble
}

// VariantOf maps the isDouble flag used on line items to a Variant.
func VariantOf(isDouble bool) Variant {
	if isDouble {
		return VariantDouble
	}
	return VariantRegular
}
