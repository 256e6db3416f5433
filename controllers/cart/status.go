package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/models"
)

type statusInput struct {
	Status string `json:"status" binding:"required"`
}

// PUT /admin/cartinfo/:id/status
// Moves a snapshot through the status machine: pending → paid | canceled.
// Terminal states never transition again.
func UpdateCartInfoStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var info models.CartInfo
		if err := db.First(&info, "id = ?", c.Param("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Cart info not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart info"})
			}
			return
		}

		var input statusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}

		if !info.CanTransition(input.Status) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "cannot transition from " + info.Status + " to " + input.Status,
			})
			return
		}

		info.Status = input.Status
		if err := db.Save(&info).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart info"})
			return
		}
		c.JSON(http.StatusOK, info)
	}
}
