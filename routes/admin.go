package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/cache"
	cartControllers "github.com/amirhosin100/AmirShop/controllers/cart"
	categoryControllers "github.com/amirhosin100/AmirShop/controllers/category"
	"github.com/amirhosin100/AmirShop/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, inv *cache.Invalidator) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", categoryControllers.CreateCategory(db, inv))
			categoryAdmin.PUT("/:category_id", categoryControllers.UpdateCategory(db, inv))
			categoryAdmin.DELETE("/:category_id", categoryControllers.DeleteCategory(db, inv))
		}

		subCategoryAdmin := adminGroup.Group("/subcategories")
		{
			subCategoryAdmin.POST("", categoryControllers.CreateSubCategory(db, inv))
			subCategoryAdmin.DELETE("/:subcategory_id", categoryControllers.DeleteSubCategory(db, inv))
		}

		adminGroup.PUT("/cartinfo/:id/status", cartControllers.UpdateCartInfoStatus(db))
	}
}
