package models

// MediaType discriminates normalized media entries.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// Media is the strict internal media shape produced at ingestion. Variant
// media carry the variant id and color; product-level fallbacks use color
// "default". Poster is only set for videos.
type Media struct {
	Type      MediaType `json:"type"`
	URL       string    `json:"url"`
	VariantID string    `json:"variantId,omitempty"`
	Color     string    `json:"color,omitempty"`
	Poster    string    `json:"poster,omitempty"`
}
