package models

// Product mirrors the backend's product list wire format. The annotation
// fields (FinalPrice, AppliedDiscountPercent, AppliedOfferID, Media) are
// computed locally after ingestion and are never sent by the backend.
type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`

	Category     CategoryRef `json:"category"`
	CategoryID   string      `json:"categoryId,omitempty"`
	CategoryName string      `json:"categoryName,omitempty"`
	Subcategory  string      `json:"subcategory,omitempty"`

	// Difficulty selects which discount rule inside an offer applies.
	Difficulty string `json:"difficulty,omitempty"`

	Stock    int       `json:"stock"`
	Image    string    `json:"image,omitempty"`
	Videos   []string  `json:"videos,omitempty"`
	Variants []Variant `json:"variants,omitempty"`

	FinalPrice             float64 `json:"finalPrice"`
	AppliedDiscountPercent float64 `json:"appliedDiscountPercent"`
	AppliedOfferID         string  `json:"appliedOfferId,omitempty"`
	Media                  []Media `json:"media,omitempty"`
}

// Variant is a purchasable configuration of a product (usually a color),
// possibly with its own stock and media. A nil Stock means the product-level
// stock applies.
type Variant struct {
	ID     string   `json:"_id"`
	Color  string   `json:"color,omitempty"`
	Stock  *int     `json:"stock,omitempty"`
	Images []string `json:"images,omitempty"`
	Videos []string `json:"videos,omitempty"`
}
