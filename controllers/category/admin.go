package categoryControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/cache"
	"github.com/amirhosin100/AmirShop/models"
)

type categoryInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type subCategoryInput struct {
	CategoryID string `json:"category_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
}

// POST /admin/categories
func CreateCategory(db *gorm.DB, inv *cache.Invalidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input categoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := models.Category{
			ID:          uuid.NewString(),
			Title:       input.Title,
			Description: input.Description,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		inv.Category(category.ID)
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /admin/categories/:category_id
func UpdateCategory(db *gorm.DB, inv *cache.Invalidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("category_id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Category does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			}
			return
		}

		var input categoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category.Title = input.Title
		category.Description = input.Description
		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		inv.Category(category.ID)
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /admin/categories/:category_id
func DeleteCategory(db *gorm.DB, inv *cache.Invalidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Delete(&models.Category{}, "id = ?", c.Param("category_id"))
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category does not exist"})
			return
		}

		inv.Category(c.Param("category_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

// POST /admin/subcategories
func CreateSubCategory(db *gorm.DB, inv *cache.Invalidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input subCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category does not exist"})
			return
		}

		sub := models.SubCategory{
			ID:         uuid.NewString(),
			CategoryID: input.CategoryID,
			Title:      input.Title,
		}
		if err := db.Create(&sub).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subcategory"})
			return
		}

		// Only the parent detail embeds subcategories; the list stays put.
		inv.SubCategory(input.CategoryID)
		c.JSON(http.StatusCreated, sub)
	}
}

// DELETE /admin/subcategories/:subcategory_id
func DeleteSubCategory(db *gorm.DB, inv *cache.Invalidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub models.SubCategory
		if err := db.First(&sub, "id = ?", c.Param("subcategory_id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Subcategory does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subcategory"})
			}
			return
		}

		if err := db.Delete(&sub).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subcategory"})
			return
		}

		inv.SubCategory(sub.CategoryID)
		c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted"})
	}
}
