package cart

import (
	"strconv"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

// Entry is one stored cart line: a string product key (the session
// serializes keys, matching how browsers echo them back) and a
// quantity that is always at least 1.
type Entry struct {
	ProductId string
	Qty       int
}

// Cart maps product ids to quantities for a single visitor. Entries
// keep their insertion order, which a plain map would not.
type Cart struct {
	Entries []Entry
}

func New() *Cart {
	return &Cart{}
}

// Add increments the quantity for the product by 1, creating the entry
// if absent. The product is not checked against the catalog.
func (c *Cart) Add(productId string) {
	for i := range c.Entries {
		if c.Entries[i].ProductId == productId {
			c.Entries[i].Qty++
			return
		}
	}
	c.Entries = append(c.Entries, Entry{ProductId: productId, Qty: 1})
}

// Remove deletes the entry for the product entirely. It reports
// whether an entry existed; removing an absent product is a no-op.
func (c *Cart) Remove(productId string) bool {
	for i := range c.Entries {
		if c.Entries[i].ProductId == productId {
			c.Entries = append(c.Entries[:i], c.Entries[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) IsEmpty() bool {
	return len(c.Entries) == 0
}

// Materialize resolves every entry against the catalog and returns the
// lines in insertion order together with the grand total. Entries
// whose product no longer resolves are skipped silently.
func (c *Cart) Materialize(cat *catalog.Catalog) ([]models.CartLine, int) {
	lines := make([]models.CartLine, 0, len(c.Entries))
	total := 0

	for _, e := range c.Entries {
		id, err := strconv.Atoi(e.ProductId)
		if err != nil {
			continue
		}

		prod, err := cat.ByID(id)
		if err != nil {
			continue
		}

		subtotal := prod.Price * e.Qty
		lines = append(lines, models.CartLine{
			Product:  prod,
			Qty:      e.Qty,
			Subtotal: subtotal,
		})
		total += subtotal
	}

	return lines, total
}
