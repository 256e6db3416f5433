package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/cache"
	"github.com/amirhosin100/AmirShop/cart"
	"github.com/amirhosin100/AmirShop/events"
	"github.com/amirhosin100/AmirShop/services"
)

// SetupRoutes is the single entry-point that wires up User, Owner, and
// Admin route groups around the shared ledger, cache, and publisher.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store cache.Cache, pub *events.Publisher) {
	ledger := cart.NewLedger(db)
	inv := cache.NewInvalidator(store)
	productSvc := services.NewProductService(store)
	marketSvc := services.NewMarketService(store)
	categorySvc := services.NewCategoryService(store)

	SetupUserRoutes(r, db, ledger, pub, productSvc, marketSvc, categorySvc)
	SetupOwnerRoutes(r, db, ledger, inv)
	SetupAdminRoutes(r, db, inv)
}
