package catalog

import "github.com/a12frin-shagufta/vanshika-pearl/models"

// NormalizeMedia flattens a product's variant images and videos into the
// strict internal media shape. This is the only place that looks at the
// backend's loose media fields; everything downstream consumes models.Media.
//
// Video posters fall back through: first image of the owning variant, the
// product-level image, then the video's own first frame.
func NormalizeMedia(p models.Product) []models.Media {
	var media []models.Media

	for _, v := range p.Variants {
		for _, url := range v.Images {
			media = append(media, models.Media{
				Type:      models.MediaTypeImage,
				URL:       url,
				VariantID: v.ID,
				Color:     v.Color,
			})
		}
		for _, url := range v.Videos {
			media = append(media, models.Media{
				Type:      models.MediaTypeVideo,
				URL:       url,
				VariantID: v.ID,
				Color:     v.Color,
				Poster:    videoPoster(v.Images, p.Image, url),
			})
		}
	}
	if len(media) > 0 {
		return media
	}

	// No variant media at all: fall back to the product-level image and the
	// first product-level video.
	if p.Image != "" {
		media = append(media, models.Media{
			Type:  models.MediaTypeImage,
			URL:   p.Image,
			Color: "default",
		})
	}
	if len(p.Videos) > 0 {
		media = append(media, models.Media{
			Type:   models.MediaTypeVideo,
			URL:    p.Videos[0],
			Color:  "default",
			Poster: videoPoster(nil, p.Image, p.Videos[0]),
		})
	}
	return media
}

func videoPoster(variantImages []string, productImage, videoURL string) string {
	if len(variantImages) > 0 {
		return variantImages[0]
	}
	if productImage != "" {
		return productImage
	}
	return videoURL + "#t=0.5"
}
