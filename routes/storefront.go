package routes

import (
	"github.com/gin-gonic/gin"

	catalogControllers "github.com/a12frin-shagufta/vanshika-pearl/controllers/catalog"
)

// SetupStorefrontRoutes registers all "/storefront/*" endpoints (read-only
// catalog views).
func SetupStorefrontRoutes(r *gin.Engine, deps Deps) {
	storefront := r.Group("/storefront")
	{
		storefront.GET("/products", catalogControllers.GetProducts(deps.Catalog))        // GET /storefront/products
		storefront.GET("/products/:id", catalogControllers.GetProductByID(deps.Catalog)) // GET /storefront/products/:id
		storefront.GET("/categories", catalogControllers.GetCategories(deps.Catalog))    // GET /storefront/categories
		storefront.GET("/offers", catalogControllers.GetOffers(deps.Catalog))            // GET /storefront/offers

		// catalog export + refresh notifications
		storefront.GET("/export-excel", catalogControllers.ExportProductsToExcel(deps.Catalog)) // GET /storefront/export-excel
		storefront.GET("/ws", deps.Refresh.Handler())                                          // GET /storefront/ws
	}
}
