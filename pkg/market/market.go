package market

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Item is a purchasable good. Two items are the same line for grouping
// purposes when both name and price match.
type Item struct {
	Name        string
	Price       decimal.Decimal
	Description string
}

// Label renders the item the way it appears in menus.
func (i Item) Label() string {
	return fmt.Sprintf("%s - $%s", i.Name, i.Price.StringFixed(2))
}

// Key identifies an item inside a cart independent of insertion order.
func (i Item) Key() string {
	return i.Name + "|" + i.Price.String()
}

// Category is one browsable section of a catalog.
type Category struct {
	Key   string
	Emoji string
	Blurb string
	Items []Item
}

// Catalog is static reference data: an ordered set of categories, each with
// an ordered list of items. Fixed at startup, never mutated.
type Catalog struct {
	order      []string
	categories map[string]Category
}

func NewCatalog(categories ...Category) *Catalog {
	c := &Catalog{categories: make(map[string]Category, len(categories))}
	for _, cat := range categories {
		c.order = append(c.order, cat.Key)
		c.categories[cat.Key] = cat
	}
	return c
}

// Categories returns category keys in declaration order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) Category(key string) (Category, bool) {
	cat, ok := c.categories[key]
	return cat, ok
}

// Items returns the ordered item list for a category, nil if unknown.
func (c *Catalog) Items(key string) []Item {
	return c.categories[key].Items
}

// Lookup resolves an item by category key and position. Index payloads from
// the UI are untrusted, so the bounds check matters.
func (c *Catalog) Lookup(key string, idx int) (Item, bool) {
	cat, ok := c.categories[key]
	if !ok || idx < 0 || idx >= len(cat.Items) {
		return Item{}, false
	}
	return cat.Items[idx], true
}

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
