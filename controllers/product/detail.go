package productControllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/models"
	"github.com/amirhosin100/AmirShop/services"
)

// GET /user/products/:product_id
func GetProductByID(db *gorm.DB, svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("product_id")

		if data, ok := svc.LoadProductDetail(productID); ok {
			c.Data(http.StatusOK, "application/json", data)
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{
					"message": fmt.Sprintf("Product with id %s does not exist", productID),
				})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		payload, err := json.Marshal(product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize product"})
			return
		}
		svc.SaveProductDetail(payload, productID)
		c.Data(http.StatusOK, "application/json", payload)
	}
}
