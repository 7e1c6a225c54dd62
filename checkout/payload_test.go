package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a12frin-shagufta/vanshika-pearl/models"
)

type fakeCatalog map[string]models.Product

func (f fakeCatalog) ProductByID(id string) (models.Product, bool) {
	p, ok := f[id]
	return p, ok
}

func TestBuildOrderPayload(t *testing.T) {
	catalog := fakeCatalog{
		"p1": {ID: "p1", Name: "Pearl Necklace", Price: 1000, FinalPrice: 900, Image: "p1.jpg"},
		"p2": {ID: "p2", Name: "Gold Ring", Price: 400, FinalPrice: 400},
	}
	lines := []models.CartLine{
		{ProductID: "p1", Quantity: 2, CartKey: "p1__default__fn___ln_", EngravingFirstName: "Ada"},
		{ProductID: "p2", Quantity: 1, CartKey: "p2__default__fn___ln_"},
	}

	order := BuildOrderPayload(lines, catalog, models.ShippingDetails{Name: "Ada"})

	require.Len(t, order.Items, 2)
	assert.Equal(t, 900.0, order.Items[0].UnitPrice)
	assert.Equal(t, 1800.0, order.Items[0].Total)
	assert.Equal(t, "Ada", order.Items[0].EngravingFirstName)
	assert.Equal(t, "p1__default__fn___ln_", order.Items[0].Key)
	assert.Equal(t, 2200.0, order.Subtotal)
	assert.Equal(t, DeliveryFee, order.Shipping)
	assert.Equal(t, 2450.0, order.Total)
	assert.NotEmpty(t, order.OrderRef)
}

func TestBuildOrderPayloadSkipsOrphanedLines(t *testing.T) {
	catalog := fakeCatalog{
		"p1": {ID: "p1", Name: "Pearl Necklace", Price: 500, FinalPrice: 500},
	}
	lines := []models.CartLine{
		{ProductID: "p1", Quantity: 1, CartKey: "k1"},
		{ProductID: "gone", Quantity: 3, CartKey: "k2"},
	}

	order := BuildOrderPayload(lines, catalog, models.ShippingDetails{})

	require.Len(t, order.Items, 1)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, 500.0, order.Subtotal)
}

func TestBuildOrderPayloadFreeShipping(t *testing.T) {
	catalog := fakeCatalog{
		"p1": {ID: "p1", Name: "Pearl Set", Price: 3000, FinalPrice: 3000},
	}
	lines := []models.CartLine{{ProductID: "p1", Quantity: 1, CartKey: "k1"}}

	order := BuildOrderPayload(lines, catalog, models.ShippingDetails{})

	assert.Zero(t, order.Shipping)
	assert.Equal(t, 3000.0, order.Total)
}

func TestBuildOrderPayloadEmptyCart(t *testing.T) {
	order := BuildOrderPayload(nil, fakeCatalog{}, models.ShippingDetails{})

	assert.Empty(t, order.Items)
	assert.Zero(t, order.Subtotal)
	assert.Zero(t, order.Shipping)
	assert.Zero(t, order.Total)
}

func TestBuildOrderPayloadUnannotatedPriceFallback(t *testing.T) {
	// Catalog loaded before annotation, or a zero final price: fall back to
	// the base price.
	catalog := fakeCatalog{"p1": {ID: "p1", Name: "Ring", Price: 250}}
	lines := []models.CartLine{{ProductID: "p1", Quantity: 2, CartKey: "k1"}}

	order := BuildOrderPayload(lines, catalog, models.ShippingDetails{})

	require.Len(t, order.Items, 1)
	assert.Equal(t, 250.0, order.Items[0].UnitPrice)
}

func TestLineImagePrefersVariantMedia(t *testing.T) {
	p := models.Product{
		ID:    "p1",
		Image: "product.jpg",
		Media: []models.Media{
			{Type: models.MediaTypeImage, URL: "gold.jpg", VariantID: "v1"},
			{Type: models.MediaTypeImage, URL: "silver.jpg", VariantID: "v2"},
		},
	}

	assert.Equal(t, "silver.jpg", lineImage(p, models.CartLine{ProductID: "p1", VariantID: "v2"}))
	assert.Equal(t, "product.jpg", lineImage(p, models.CartLine{ProductID: "p1"}))
}
