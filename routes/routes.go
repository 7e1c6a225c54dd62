package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/a12frin-shagufta/vanshika-pearl/cart"
	"github.com/a12frin-shagufta/vanshika-pearl/catalog"
	"github.com/a12frin-shagufta/vanshika-pearl/checkout"
	catalogControllers "github.com/a12frin-shagufta/vanshika-pearl/controllers/catalog"
)

// Deps carries the stores and services the route groups wire up.
type Deps struct {
	Cart     *cart.Store
	Catalog  *catalog.Store
	Checkout *checkout.Service
	Refresh  *catalogControllers.RefreshHub
}

// SetupRoutes is the single entry-point that wires up the storefront, cart
// and checkout route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupStorefrontRoutes(r, deps)
	SetupCartRoutes(r, deps)
	SetupCheckoutRoutes(r, deps)
}
