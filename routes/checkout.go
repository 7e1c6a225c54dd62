package routes

import (
	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/a12frin-shagufta/vanshika-pearl/controllers/checkout"
)

// SetupCheckoutRoutes registers the checkout handoff endpoints.
func SetupCheckoutRoutes(r *gin.Engine, deps Deps) {
	checkoutGroup := r.Group("/checkout")
	{
		checkoutGroup.GET("/preview", checkoutControllers.Preview(deps.Cart, deps.Catalog)) // GET /checkout/preview
		checkoutGroup.POST("/", checkoutControllers.PlaceOrder(deps.Cart, deps.Catalog, deps.Checkout)) // POST /checkout
	}
}
