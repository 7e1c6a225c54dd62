package models

import "time"

// Offer is a time-bounded, category-scoped discount rule set fetched from the
// backend's /api/offer/active endpoint.
type Offer struct {
	ID     string `json:"_id"`
	Title  string `json:"title,omitempty"`
	Active bool   `json:"active"`

	// ExpiresAt is optional; a nil value means the offer never expires.
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`

	// Categories scopes the offer. Empty means the offer applies globally.
	// Entries may arrive as ids, names or embedded category objects.
	Categories           []CategoryRef `json:"categories,omitempty"`
	ApplyToSubcategories bool          `json:"applyToSubcategories,omitempty"`

	DiscountRules []DiscountRule `json:"discountRules,omitempty"`
}

// DiscountRule maps a product difficulty tag to a discount percentage.
type DiscountRule struct {
	Difficulty         string  `json:"difficulty"`
	DiscountPercentage float64 `json:"discountPercentage"`
}
