package catalogControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/a12frin-shagufta/vanshika-pearl/catalog"
	"github.com/a12frin-shagufta/vanshika-pearl/models"
	"github.com/a12frin-shagufta/vanshika-pearl/offers"
)

// GetProducts lists the annotated catalog with optional in-memory filters:
// search (name/description substring), category (canonicalized match against
// the product's category or subcategory), min_price / max_price (on the
// final price).
func GetProducts(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := strings.ToLower(c.Query("search"))
		category := c.Query("category")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")

		var minPrice, maxPrice float64
		var hasMin, hasMax bool
		if minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			minPrice, hasMin = mp, true
		}
		if maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			maxPrice, hasMax = mp, true
		}
		categoryCanon := offers.Canonical(category)

		products := store.Products()
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if search != "" &&
				!strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.Description), search) {
				continue
			}
			if categoryCanon != "" && !matchesCategory(p, categoryCanon) {
				continue
			}
			if hasMin && p.FinalPrice < minPrice {
				continue
			}
			if hasMax && p.FinalPrice > maxPrice {
				continue
			}
			filtered = append(filtered, p)
		}

		c.JSON(http.StatusOK, gin.H{
			"products": filtered,
			"loading":  !store.Loaded(),
		})
	}
}

func matchesCategory(p models.Product, canon string) bool {
	name := p.Category.Name
	if name == "" {
		name = p.CategoryName
	}
	return offers.Canonical(name) == canon || offers.Canonical(p.Subcategory) == canon
}

// GetProductByID returns a single annotated product.
// URL param: /storefront/products/:id
func GetProductByID(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, ok := store.ProductByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetCategories lists the catalog categories.
func GetCategories(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": store.Categories()})
	}
}

// GetOffers lists the currently valid offers.
func GetOffers(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"offers": store.Offers()})
	}
}
