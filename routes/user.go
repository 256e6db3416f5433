package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/cart"
	cartControllers "github.com/amirhosin100/AmirShop/controllers/cart"
	categoryControllers "github.com/amirhosin100/AmirShop/controllers/category"
	marketControllers "github.com/amirhosin100/AmirShop/controllers/market"
	productControllers "github.com/amirhosin100/AmirShop/controllers/product"
	"github.com/amirhosin100/AmirShop/events"
	"github.com/amirhosin100/AmirShop/middleware"
	"github.com/amirhosin100/AmirShop/services"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(
	r *gin.Engine,
	db *gorm.DB,
	ledger *cart.Ledger,
	pub *events.Publisher,
	productSvc *services.ProductService,
	marketSvc *services.MarketService,
	categorySvc *services.CategoryService,
) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(ledger))
			cartGroup.POST("/add/:product_id", cartControllers.AddToCart(db, ledger))
			cartGroup.POST("/set/:product_id", cartControllers.SetItemQuantity(db, ledger))
			cartGroup.POST("/decrease/:product_id", cartControllers.DecreaseCartItem(db, ledger))
			cartGroup.DELETE("/remove/:product_id", cartControllers.RemoveCartItem(db, ledger))
			cartGroup.POST("/clear", cartControllers.ClearCart(ledger))
			cartGroup.POST("/checkout", cartControllers.Checkout(ledger, pub))
			cartGroup.GET("/info/list", cartControllers.GetCartInfoList(db))
			cartGroup.GET("/info/detail/:id", cartControllers.GetCartInfoDetail(db))
		}

		// ──────────────── Browse Catalog ────────────────
		userGroup.GET("/products", productControllers.GetProducts(db, productSvc))
		userGroup.GET("/products/:product_id", productControllers.GetProductByID(db, productSvc))
		userGroup.GET("/markets", marketControllers.GetMarkets(db, marketSvc))
		userGroup.GET("/markets/:market_id", marketControllers.GetMarketByID(db, marketSvc))
		userGroup.GET("/categories", categoryControllers.GetCategories(db, categorySvc))
		userGroup.GET("/categories/:category_id", categoryControllers.GetCategoryByID(db, categorySvc))
	}
}
