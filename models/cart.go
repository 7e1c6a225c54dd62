package models

// CartLine is one distinct purchasable selection in the guest cart. The JSON
// field names are fixed: they are the persisted storage schema as well as the
// API shape, so renaming any of them breaks saved carts.
type CartLine struct {
	ProductID          string `json:"productId"`
	VariantID          string `json:"variantId,omitempty"`
	VariantColor       string `json:"variantColor,omitempty"`
	Quantity           int    `json:"quantity"`
	EngravingFirstName string `json:"engravingFirstName,omitempty"`
	EngravingLastName  string `json:"engravingLastName,omitempty"`
	CartKey            string `json:"cartKey"`
}

// Personalization carries the optional engraving text attached to a cart line.
type Personalization struct {
	EngravingFirstName string `json:"engravingFirstName"`
	EngravingLastName  string `json:"engravingLastName"`
}
