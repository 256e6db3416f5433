package cartControllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/cart"
	"github.com/amirhosin100/AmirShop/events"
	"github.com/amirhosin100/AmirShop/models"
)

// POST /user/cart/checkout
// Snapshots the cart into a CartInfo row, empties the live cart and emits a
// CartCheckedOut event. Event publishing is best-effort.
func Checkout(ledger *cart.Ledger, pub *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		info, err := ledger.Checkout(userID)
		if err != nil {
			if errors.Is(err, cart.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to checkout cart"})
			return
		}

		var lines []cart.CheckoutLine
		if err := json.Unmarshal(info.Items, &lines); err != nil {
			log.Printf("⚠️ failed to decode checkout snapshot %s: %v", info.ID, err)
		}
		items := make([]events.CartItemEvent, 0, len(lines))
		for _, line := range lines {
			items = append(items, events.CartItemEvent{
				ProductID:  line.ProductID,
				Quantity:   line.Quantity,
				FinalPrice: line.FinalPrice,
			})
		}
		pub.PublishCartCheckedOut(events.CartCheckedOut{
			CartInfoID: info.ID,
			UserID:     userID,
			Items:      items,
			Amount:     info.Amount,
		})

		c.JSON(http.StatusCreated, info)
	}
}

// GET /user/cart/info/list
func GetCartInfoList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var infos []models.CartInfo
		err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&infos).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart history"})
			return
		}
		c.JSON(http.StatusOK, infos)
	}
}

// GET /user/cart/info/detail/:id
func GetCartInfoDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var info models.CartInfo
		err := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&info).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Cart info not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart info"})
			}
			return
		}
		c.JSON(http.StatusOK, info)
	}
}
