package cart_test

import (
	"testing"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]models.Product{
		{Id: 1, Name: "Telefon X", Price: 4999},
		{Id: 2, Name: "Kulaklık Z", Price: 399},
	})
}

func TestAdd_SameProductTwice(t *testing.T) {
	c := cart.New()
	c.Add("1")
	c.Add("1")

	assert.Len(t, c.Entries, 1)
	assert.Equal(t, 2, c.Entries[0].Qty)
}

func TestAdd_KeepsInsertionOrder(t *testing.T) {
	c := cart.New()
	c.Add("2")
	c.Add("1")
	c.Add("2")

	assert.Equal(t, []cart.Entry{
		{ProductId: "2", Qty: 2},
		{ProductId: "1", Qty: 1},
	}, c.Entries)
}

func TestAdd_UnknownProductStillSucceeds(t *testing.T) {
	c := cart.New()
	c.Add("999")

	assert.Equal(t, []cart.Entry{{ProductId: "999", Qty: 1}}, c.Entries)
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(c *cart.Cart)
		remove      string
		wantRemoved bool
		wantLen     int
	}{
		{
			name:        "Existing entry removed entirely",
			setup:       func(c *cart.Cart) { c.Add("1"); c.Add("1"); c.Add("2") },
			remove:      "1",
			wantRemoved: true,
			wantLen:     1,
		},
		{
			name:        "Absent entry is a no-op",
			setup:       func(c *cart.Cart) { c.Add("2") },
			remove:      "1",
			wantRemoved: false,
			wantLen:     1,
		},
		{
			name:        "Empty cart is a no-op",
			setup:       func(c *cart.Cart) {},
			remove:      "1",
			wantRemoved: false,
			wantLen:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cart.New()
			tt.setup(c)

			removed := c.Remove(tt.remove)

			assert.Equal(t, tt.wantRemoved, removed)
			assert.Len(t, c.Entries, tt.wantLen)
		})
	}
}

func TestMaterialize_Total(t *testing.T) {
	c := cart.New()
	c.Add("1")
	c.Add("1")
	c.Add("2")

	lines, total := c.Materialize(testCatalog())

	assert.Len(t, lines, 2)
	assert.Equal(t, 4999*2, lines[0].Subtotal)
	assert.Equal(t, 399, lines[1].Subtotal)
	assert.Equal(t, 10397, total)
}

func TestMaterialize_SkipsUnresolvableEntries(t *testing.T) {
	c := cart.New()
	c.Add("1")
	c.Add("42")
	c.Add("abc")

	lines, total := c.Materialize(testCatalog())

	assert.Len(t, lines, 1)
	assert.Equal(t, "Telefon X", lines[0].Product.Name)
	assert.Equal(t, 4999, total)
}

func TestMaterialize_EmptyCart(t *testing.T) {
	lines, total := cart.New().Materialize(testCatalog())

	assert.Empty(t, lines)
	assert.Equal(t, 0, total)
}
