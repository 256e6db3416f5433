package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/cache"
	"github.com/amirhosin100/AmirShop/cart"
	"github.com/amirhosin100/AmirShop/models"
)

type productInput struct {
	MarketID      string  `json:"market_id" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         uint    `json:"price" binding:"required"`
	PercentageOff uint    `json:"percentage_off"`
	Stock         uint    `json:"stock"`
	CategoryID    *string `json:"category_id"`
}

// ownedMarket loads the market and verifies it belongs to the caller's
// marketer profile.
func ownedMarket(c *gin.Context, db *gorm.DB, marketID string) (*models.Market, bool) {
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

	var market models.Market
	if err := db.First(&market, "id = ?", marketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Market does not exist"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate market"})
		}
		return nil, false
	}
	if market.MarketerID != marketer.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Market belongs to another marketer"})
		return nil, false
	}
	return &market, true
}

// POST /owner/products
func CreateProduct(db *gorm.DB, inv *cache.Invalidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input productInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.PercentageOff > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "percentage_off must be between 0 and 100"})
			return
		}
		if _, ok := ownedMarket(c, db, input.MarketID); !ok {
			return
		}

		product := models.Product{
			ID:            uuid.NewString(),
			MarketID:      input.MarketID,
			CategoryID:    input.CategoryID,
			Name:          input.Name,
			Description:   input.Description,
			Price:         input.Price,
			PercentageOff: input.PercentageOff,
			DiscountPrice: models.DiscountPrice(input.Price, input.PercentageOff),
			Stock:         input.Stock,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		inv.Product(product.ID)
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /owner/products/:product_id
// A price or discount change refreshes every cart item holding the product,
// then evicts the cached pages the update made stale.
func UpdateProduct(db *gorm.DB, inv *cache.Invalidator, ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("product_id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}
		if _, ok := ownedMarket(c, db, product.MarketID); !ok {
			return
		}

		var input productInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.PercentageOff > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "percentage_off must be between 0 and 100"})
			return
		}
		if input.MarketID != product.MarketID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Products cannot move between markets"})
			return
		}

		priceChanged := product.Price != input.Price || product.PercentageOff != input.PercentageOff

		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.PercentageOff = input.PercentageOff
		product.DiscountPrice = models.DiscountPrice(input.Price, input.PercentageOff)
		product.Stock = input.Stock
		product.CategoryID = input.CategoryID

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		if priceChanged {
			if err := ledger.RefreshProduct(&product); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh cart items"})
				return
			}
		}
		inv.Product(product.ID)
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /owner/products/:product_id
func DeleteProduct(db *gorm.DB, inv *cache.Invalidator, ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("product_id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}
		if _, ok := ownedMarket(c, db, product.MarketID); !ok {
			return
		}

		// Settle carts holding the product before the row disappears.
		if err := ledger.RemoveProductItems(product.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle carts"})
			return
		}
		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		inv.Product(product.ID)
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
