package marketControllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/models"
	"github.com/amirhosin100/AmirShop/services"
)

const pageSize = 10

type marketListPage struct {
	Page  int             `json:"page"`
	Count int             `json:"count"`
	Data  []models.Market `json:"data"`
}

// GET /user/markets
// Active markets only, read-through cached per page.
func GetMarkets(db *gorm.DB, svc *services.MarketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page is not an integer"})
			return
		}

		if data, ok := svc.LoadMarketList(page); ok {
			c.Data(http.StatusOK, "application/json", data)
			return
		}

		query := db.Model(&models.Market{}).Where("is_active = ?", true)

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch markets"})
			return
		}
		pages := int((total + pageSize - 1) / pageSize)
		if pages == 0 {
			pages = 1
		}
		if page > pages {
			c.JSON(http.StatusNotFound, gin.H{"error": "page is empty"})
			return
		}

		var markets []models.Market
		err = query.Order("created_at DESC, name").
			Limit(pageSize).
			Offset((page - 1) * pageSize).
			Find(&markets).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch markets"})
			return
		}

		payload, err := json.Marshal(marketListPage{Page: page, Count: pages, Data: markets})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize markets"})
			return
		}
		svc.SaveMarketList(payload, page)
		c.Data(http.StatusOK, "application/json", payload)
	}
}

// GET /user/markets/:market_id
func GetMarketByID(db *gorm.DB, svc *services.MarketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		marketID := c.Param("market_id")

		if data, ok := svc.LoadMarketDetail(marketID); ok {
			c.Data(http.StatusOK, "application/json", data)
			return
		}

		var market models.Market
		err := db.Where("id = ? AND is_active = ?", marketID, true).First(&market).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Market does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve market"})
			}
			return
		}

		payload, err := json.Marshal(market)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize market"})
			return
		}
		svc.SaveMarketDetail(payload, marketID)
		c.Data(http.StatusOK, "application/json", payload)
	}
}
