package models

// OrderItem is one cart line resolved against the catalog for the backend's
// order-creation endpoint: unit price is the discounted price at checkout
// time, Total the line total.
type OrderItem struct {
	ProductID          string  `json:"productId"`
	Key                string  `json:"key"`
	Name               string  `json:"name"`
	Image              string  `json:"image,omitempty"`
	VariantColor       string  `json:"variantColor,omitempty"`
	Quantity           int     `json:"quantity"`
	UnitPrice          float64 `json:"unitPrice"`
	Total              float64 `json:"total"`
	EngravingFirstName string  `json:"engravingFirstName,omitempty"`
	EngravingLastName  string  `json:"engravingLastName,omitempty"`
}

// ShippingDetails is the customer/shipping half of an order.
type ShippingDetails struct {
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
	Note       string `json:"note,omitempty"`
}

// OrderRequest is the payload posted to the backend's /api/order/create.
type OrderRequest struct {
	ShippingDetails
	Items    []OrderItem `json:"items"`
	Subtotal float64     `json:"subtotal"`
	Shipping float64     `json:"shipping"`
	Total    float64     `json:"total"`
	OrderRef string      `json:"orderRef"`
}
