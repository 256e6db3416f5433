package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/models"
)

// GET /owner/products/export
// Exports the caller's products across all of their markets.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var marketer models.Marketer
		if err := db.First(&marketer, "user_id = ?", userIDVal.(string)).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Marketer profile required"})
			return
		}

		var products []models.Product
		err := db.Preload("Market").
			Joins("JOIN markets ON markets.id = products.market_id").
			Where("markets.marketer_id = ?", marketer.ID).
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Market", "Name", "Price", "PercentageOff",
			"DiscountPrice", "Stock", "Score", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Market.Name)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(int(p.Price))
			row.AddCell().SetValue(int(p.PercentageOff))
			row.AddCell().SetValue(int(p.DiscountPrice))
			row.AddCell().SetValue(int(p.Stock))
			row.AddCell().SetValue(int(p.Score))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
