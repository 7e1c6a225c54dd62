package checkout

import (
	"time"

	"github.com/google/uuid"

	"github.com/a12frin-shagufta/vanshika-pearl/models"
)

const (
	// DeliveryFee is charged on orders below the free-shipping threshold.
	DeliveryFee = 250.0
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold = 3000.0
)

// Catalog is the read-only product lookup the payload builder needs.
type Catalog interface {
	ProductByID(id string) (models.Product, bool)
}

// BuildOrderPayload resolves the cart lines against the catalog into the
// order-creation payload. Lines whose product no longer exists in the catalog
// are skipped silently; the engraving text is trimmed the same way the cart
// key normalization trims it.
func BuildOrderPayload(lines []models.CartLine, catalog Catalog, shipping models.ShippingDetails) models.OrderRequest {
	items := make([]models.OrderItem, 0, len(lines))
	var subtotal float64

	for _, line := range lines {
		product, ok := catalog.ProductByID(line.ProductID)
		if !ok {
			continue
		}

		unit := product.FinalPrice
		if unit <= 0 {
			unit = product.Price
		}
		total := unit * float64(line.Quantity)

		items = append(items, models.OrderItem{
			ProductID:          line.ProductID,
			Key:                line.CartKey,
			Name:               product.Name,
			Image:              lineImage(product, line),
			VariantColor:       line.VariantColor,
			Quantity:           line.Quantity,
			UnitPrice:          unit,
			Total:              total,
			EngravingFirstName: line.EngravingFirstName,
			EngravingLastName:  line.EngravingLastName,
		})
		subtotal += total
	}

	shippingCost := DeliveryFee
	if subtotal >= FreeShippingThreshold || len(items) == 0 {
		shippingCost = 0
	}

	return models.OrderRequest{
		ShippingDetails: shipping,
		Items:           items,
		Subtotal:        subtotal,
		Shipping:        shippingCost,
		Total:           subtotal + shippingCost,
		OrderRef:        generateOrderRef(),
	}
}

// lineImage picks the image shown on the order line: the first image of the
// line's variant, then the product image, then any normalized media entry.
func lineImage(p models.Product, line models.CartLine) string {
	if line.VariantID != "" {
		for _, m := range p.Media {
			if m.VariantID == line.VariantID && m.Type == models.MediaTypeImage {
				return m.URL
			}
		}
	}
	if p.Image != "" {
		return p.Image
	}
	if len(p.Media) > 0 {
		return p.Media[0].URL
	}
	return ""
}

// generateOrderRef yields a unique, sortable order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
