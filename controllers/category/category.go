package categoryControllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/models"
	"github.com/amirhosin100/AmirShop/services"
)

// GET /user/categories
// The list never embeds subcategories, which is why subcategory writes
// leave it alone.
func GetCategories(db *gorm.DB, svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if data, ok := svc.LoadCategoryList(); ok {
			c.Data(http.StatusOK, "application/json", data)
			return
		}

		var categories []models.Category
		if err := db.Order("title").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		payload, err := json.Marshal(categories)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize categories"})
			return
		}
		svc.SaveCategoryList(payload)
		c.Data(http.StatusOK, "application/json", payload)
	}
}

// GET /user/categories/:category_id
func GetCategoryByID(db *gorm.DB, svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("category_id")

		if data, ok := svc.LoadCategoryDetail(categoryID); ok {
			c.Data(http.StatusOK, "application/json", data)
			return
		}

		var category models.Category
		err := db.Preload("SubCategories").First(&category, "id = ?", categoryID).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Category does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
			}
			return
		}

		payload, err := json.Marshal(category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize category"})
			return
		}
		svc.SaveCategoryDetail(payload, categoryID)
		c.Data(http.StatusOK, "application/json", payload)
	}
}
