package catalog

import (
	"errors"

	"storefront/internal/models"
)

var ErrNotFound = errors.New("product not found")

// Catalog is the read-only product list loaded from the config at
// startup. A restart resets it, nothing persists or mutates it.
type Catalog struct {
	products []models.Product
}

func New(products []models.Product) *Catalog {
	return &Catalog{
		products: products,
	}
}

// ByID returns the product with the given id or ErrNotFound.
func (c *Catalog) ByID(id int) (models.Product, error) {
	for _, p := range c.products {
		if p.Id == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// Products returns the catalog in its defined order.
func (c *Catalog) Products() []models.Product {
	return c.products
}
