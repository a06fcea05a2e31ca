// Package catalog holds the static drink catalog shown on the kiosk menu.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/mmynk/drinko/internal/models"
)

// CategoryAll is the pseudo-category that shows every drink.
const CategoryAll = "All"

// ErrInvalidCatalog is returned when a catalog file fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is an immutable list of drinks and the categories they belong to.
type Catalog struct {
	categories []string
	drinks     []models.Drink
	byID       map[string]int
}

// New validates drinks and categories and builds a Catalog.
// CategoryAll is prepended to categories when missing.
func New(categories []string, drinks []models.Drink) (*Catalog, error) {
	if len(categories) == 0 || categories[0] != CategoryAll {
		categories = append([]string{CategoryAll}, categories...)
	}

	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c == "" {
			return nil, fmt.Errorf("%w: empty category name", ErrInvalidCatalog)
		}
		if known[c] {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, c)
		}
		known[c] = true
	}

	byID := make(map[string]int, len(drinks))
	for i, d := range drinks {
		switch {
		case d.ID == "":
			return nil, fmt.Errorf("%w: drink %d has no id", ErrInvalidCatalog, i)
		case d.Name == "":
			return nil, fmt.Errorf("%w: drink %s has no name", ErrInvalidCatalog, d.ID)
		case d.Price.IsNegative():
			return nil, fmt.Errorf("%w: drink %s has a negative price", ErrInvalidCatalog, d.ID)
		case !d.Strength.Valid():
			return nil, fmt.Errorf("%w: drink %s strength %d out of range 1-3", ErrInvalidCatalog, d.ID, d.Strength)
		case d.Category == CategoryAll || !known[d.Category]:
			return nil, fmt.Errorf("%w: drink %s has unknown category %q", ErrInvalidCatalog, d.ID, d.Category)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate drink id %s", ErrInvalidCatalog, d.ID)
		}
		byID[d.ID] = i
	}

	return &Catalog{
		categories: append([]string(nil), categories...),
		drinks:     append([]models.Drink(nil), drinks...),
		byID:       byID,
	}, nil
}

// Categories returns the category list, CategoryAll first.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Drinks returns the drinks in a category. CategoryAll or "" returns every drink.
func (c *Catalog) Drinks(category string) []models.Drink {
	if category == "" || category == CategoryAll {
		return append([]models.Drink(nil), c.drinks...)
	}
	var out []models.Drink
	for _, d := range c.drinks {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// Lookup finds a drink by ID.
func (c *Catalog) Lookup(id string) (models.Drink, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Drink{}, false
	}
	return c.drinks[i], true
}

// file is the on-disk JSON shape of a catalog override.
type file struct {
	Categories []string       `json:"categories"`
	Drinks     []models.Drink `json:"drinks"`
}

// Load reads a catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return New(f.Categories, f.Drinks)
}

// Default returns the built-in kiosk catalog.
func Default() *Catalog {
	c, err := New(defaultCategories, defaultDrinks)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCategories = []string{CategoryAll, "Shots", "Mixes", "Energy Mixes", "Soft Drinks"}

var defaultDrinks = []models.Drink{
	// Shots
	{
		ID:       "1",
		Name:     "Vodka Shot",
		Category: "Shots",
		Price:    decimal.NewFromInt(5),
		Strength: models.StrengthStrong,
		Image:    "https://images.unsplash.com/photo-1563223771-6f72971d422c?auto=format&fit=crop&q=80&w=400",
	},
	{
		ID:       "2",
		Name:     "Gin Shot",
		Category: "Shots",
		Price:    decimal.NewFromInt(5),
		Strength: models.StrengthStrong,
		Image:    "https://images.unsplash.com/photo-1550985543-f47f38aee65d?auto=format&fit=crop&q=80&w=400",
	},

	// Mixes
	{
		ID:       "3",
		Name:     "Gin & Tonic",
		Category: "Mixes",
		Price:    decimal.NewFromInt(8),
		Strength: models.StrengthMedium,
		Image:    "https://images.unsplash.com/photo-1598679253544-2c97992403ea?auto=format&fit=crop&q=80&w=400",
	},
	{
		ID:       "4",
		Name:     "Vodka Tonic",
		Category: "Mixes",
		Price:    decimal.NewFromInt(8),
		Strength: models.StrengthMedium,
		Image:    "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?auto=format&fit=crop&q=80&w=400",
	},

	// Energy Mixes
	{
		ID:       "5",
		Name:     "Vodka Energy",
		Category: "Energy Mixes",
		Price:    decimal.NewFromInt(9),
		Strength: models.StrengthStrong,
		Image:    "https://images.unsplash.com/photo-1629205696429-d588161d9e3e?auto=format&fit=crop&q=80&w=400",
	},
	{
		ID:       "6",
		Name:     "Gin Energy",
		Category: "Energy Mixes",
		Price:    decimal.NewFromInt(9),
		Strength: models.StrengthStrong,
		Image:    "https://images.unsplash.com/photo-1575517111839-3a3843ee7f5d?auto=format&fit=crop&q=80&w=400",
	},

	// Soft Drinks
	{
		ID:       "7",
		Name:     "Energy Drink",
		Category: "Soft Drinks",
		Price:    decimal.NewFromInt(4),
		Strength: models.StrengthMild,
		Image:    "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?auto=format&fit=crop&q=80&w=400",
	},
	{
		ID:       "8",
		Name:     "Tonic Water",
		Category: "Soft Drinks",
		Price:    decimal.NewFromInt(3),
		Strength: models.StrengthMild,
		Image:    "https://images.unsplash.com/photo-1598679253544-2c97992403ea?auto=format&fit=crop&q=80&w=400",
	},
}
