package catalog_test

import (
	"testing"

	"storefront/internal/catalog"
	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestByID(t *testing.T) {
	cat := catalog.New([]models.Product{
		{Id: 1, Name: "Telefon X", Price: 4999},
		{Id: 2, Name: "Kulaklık Z", Price: 399},
	})

	t.Run("Known product", func(t *testing.T) {
		prod, err := cat.ByID(2)
		assert.NoError(t, err)
		assert.Equal(t, "Kulaklık Z", prod.Name)
	})

	t.Run("Unknown product", func(t *testing.T) {
		_, err := cat.ByID(42)
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestProducts_KeepsDefinedOrder(t *testing.T) {
	products := []models.Product{
		{Id: 3, Name: "Tablet Pro"},
		{Id: 1, Name: "Telefon X"},
	}

	cat := catalog.New(products)

	assert.Equal(t, products, cat.Products())
}
