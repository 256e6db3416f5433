package marketControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/cache"
	"github.com/amirhosin100/AmirShop/models"
)

type marketInput struct {
	Name         string `json:"name" binding:"required"`
	Bio          string `json:"bio"`
	NumberPhone1 string `json:"number_phone_1"`
	NumberPhone2 string `json:"number_phone_2"`
	Website      string `json:"website"`
	IsActive     *bool  `json:"is_active"`
}

func callerMarketer(c *gin.Context, db *gorm.DB) (*models.Marketer, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	var marketer models.Marketer
	if err := db.First(&marketer, "user_id = ?", userIDVal.(string)).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Marketer profile required"})
		return nil, false
	}
	return &marketer, true
}

// POST /owner/markets
func CreateMarket(db *gorm.DB, inv *cache.Invalidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		marketer, ok := callerMarketer(c, db)
		if !ok {
			return
		}

		var input marketInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		market := models.Market{
			ID:           uuid.NewString(),
			MarketerID:   marketer.ID,
			Name:         input.Name,
			Bio:          input.Bio,
			NumberPhone1: input.NumberPhone1,
			NumberPhone2: input.NumberPhone2,
			Website:      input.Website,
			IsActive:     true,
		}
		if err := db.Create(&market).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create market"})
			return
		}

		inv.Market(market.ID)
		c.JSON(http.StatusCreated, market)
	}
}

// PUT /owner/markets/:market_id
func UpdateMarket(db *gorm.DB, inv *cache.Invalidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		marketer, ok := callerMarketer(c, db)
		if !ok {
			return
		}

		var market models.Market
		if err := db.First(&market, "id = ?", c.Param("market_id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Market does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch market"})
			}
			return
		}
		if market.MarketerID != marketer.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Market belongs to another marketer"})
			return
		}

		var input marketInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		market.Name = input.Name
		market.Bio = input.Bio
		market.NumberPhone1 = input.NumberPhone1
		market.NumberPhone2 = input.NumberPhone2
		market.Website = input.Website
		if input.IsActive != nil {
			market.IsActive = *input.IsActive
		}

		if err := db.Save(&market).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update market"})
			return
		}

		inv.Market(market.ID)
		c.JSON(http.StatusOK, market)
	}
}
