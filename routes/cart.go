package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/a12frin-shagufta/vanshika-pearl/controllers/cart"
)

// SetupCartRoutes registers all "/cart/*" endpoints. The cart is the guest
// cart: identity-free and persisted locally.
func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("/", cartControllers.GetCart(deps.Cart))                        // GET /cart
		cartGroup.GET("/count", cartControllers.GetCartCount(deps.Cart))              // GET /cart/count
		cartGroup.POST("/", cartControllers.AddToCart(deps.Cart))                     // POST /cart
		cartGroup.PUT("/:cart_key", cartControllers.UpdateQuantityByKey(deps.Cart))   // PUT /cart/:cart_key
		cartGroup.DELETE("/:cart_key", cartControllers.RemoveFromCartByKey(deps.Cart)) // DELETE /cart/:cart_key
		cartGroup.DELETE("/", cartControllers.ClearCart(deps.Cart))                   // DELETE /cart
	}
}
