package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a12frin-shagufta/vanshika-pearl/cart"
	"github.com/a12frin-shagufta/vanshika-pearl/models"
)

type AddToCartInput struct {
	ProductID          string `json:"product_id" binding:"required"`
	Quantity           int    `json:"quantity"`
	VariantID          string `json:"variant_id"`
	VariantColor       string `json:"variant_color"`
	EngravingFirstName string `json:"engraving_first_name"`
	EngravingLastName  string `json:"engraving_last_name"`
}

// UpdateQuantityInput deliberately has no minimum binding: like AddToCart,
// any quantity below 1 is coerced to 1 rather than rejected.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// GET /cart
func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Items())
	}
}

// GET /cart/count
func GetCartCount(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"count": store.GetCartCount()})
	}
}

// POST /cart
func AddToCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Quantity is coerced, not rejected: anything below 1 becomes 1.
		store.AddToCart(input.ProductID, input.Quantity, input.VariantID, input.VariantColor, models.Personalization{
			EngravingFirstName: input.EngravingFirstName,
			EngravingLastName:  input.EngravingLastName,
		})

		c.JSON(http.StatusCreated, store.Items())
	}
}

// PUT /cart/:cart_key
func UpdateQuantityByKey(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartKey := c.Param("cart_key")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store.UpdateQuantityByKey(cartKey, input.Quantity)
		c.JSON(http.StatusOK, store.Items())
	}
}

// DELETE /cart/:cart_key
func RemoveFromCartByKey(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.RemoveFromCartByKey(c.Param("cart_key"))
		c.JSON(http.StatusOK, store.Items())
	}
}

// DELETE /cart
func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.ClearCart()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
