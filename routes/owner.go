package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/cache"
	"github.com/amirhosin100/AmirShop/cart"
	marketControllers "github.com/amirhosin100/AmirShop/controllers/market"
	productControllers "github.com/amirhosin100/AmirShop/controllers/product"
	"github.com/amirhosin100/AmirShop/middleware"
)

// SetupOwnerRoutes registers all "/owner/*" endpoints for marketers.
func SetupOwnerRoutes(r *gin.Engine, db *gorm.DB, ledger *cart.Ledger, inv *cache.Invalidator) {
	ownerGroup := r.Group("/owner")
	ownerGroup.Use(middleware.ValidateToken)
	{
		productGroup := ownerGroup.Group("/products")
		{
			productGroup.POST("", productControllers.CreateProduct(db, inv))
			productGroup.PUT("/:product_id", productControllers.UpdateProduct(db, inv, ledger))
			productGroup.DELETE("/:product_id", productControllers.DeleteProduct(db, inv, ledger))
			productGroup.GET("/export", productControllers.ExportProductsToExcel(db))
		}

		marketGroup := ownerGroup.Group("/markets")
		{
			marketGroup.POST("", marketControllers.CreateMarket(db, inv))
			marketGroup.PUT("/:market_id", marketControllers.UpdateMarket(db, inv))
		}
	}
}
