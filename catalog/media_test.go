package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a12frin-shagufta/vanshika-pearl/models"
)

func TestNormalizeMediaVariants(t *testing.T) {
	p := models.Product{
		ID:    "p1",
		Image: "product.jpg",
		Variants: []models.Variant{
			{ID: "v1", Color: "gold", Images: []string{"g1.jpg", "g2.jpg"}, Videos: []string{"g.mp4"}},
			{ID: "v2", Color: "silver", Videos: []string{"s.mp4"}},
		},
	}

	media := NormalizeMedia(p)
	require.Len(t, media, 4)

	assert.Equal(t, models.Media{Type: models.MediaTypeImage, URL: "g1.jpg", VariantID: "v1", Color: "gold"}, media[0])
	assert.Equal(t, models.Media{Type: models.MediaTypeImage, URL: "g2.jpg", VariantID: "v1", Color: "gold"}, media[1])

	// Variant video poster prefers the variant's first image.
	assert.Equal(t, "g1.jpg", media[2].Poster)
	// A variant without images falls back to the product image.
	assert.Equal(t, "product.jpg", media[3].Poster)
	assert.Equal(t, "s.mp4", media[3].URL)
}

func TestNormalizeMediaProductFallback(t *testing.T) {
	p := models.Product{ID: "p1", Image: "main.jpg", Videos: []string{"a.mp4", "b.mp4"}}

	media := NormalizeMedia(p)
	require.Len(t, media, 2)

	assert.Equal(t, models.MediaTypeImage, media[0].Type)
	assert.Equal(t, "main.jpg", media[0].URL)
	assert.Equal(t, "default", media[0].Color)

	// Only the first product-level video is used.
	assert.Equal(t, models.MediaTypeVideo, media[1].Type)
	assert.Equal(t, "a.mp4", media[1].URL)
	assert.Equal(t, "main.jpg", media[1].Poster)
}

func TestNormalizeMediaVideoFirstFramePoster(t *testing.T) {
	p := models.Product{ID: "p1", Videos: []string{"only.mp4"}}

	media := NormalizeMedia(p)
	require.Len(t, media, 1)
	assert.Equal(t, "only.mp4#t=0.5", media[0].Poster)
}

func TestNormalizeMediaEmptyProduct(t *testing.T) {
	assert.Empty(t, NormalizeMedia(models.Product{ID: "p1"}))
}
