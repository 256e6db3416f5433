package productControllers

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

type productListPage struct {
	Page  int              `json:"page"`
	Count int              `json:"count"`
	Data  []models.Product `json:"data"`
}

// GET /user/products
// Read-through: cached by (page, q). Requests carrying the extra filters
// (price range, market name, min score, category) bypass the cache, since
// the key space is scoped to page and name query only.
func GetProducts(db *gorm.DB, svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		pageStr := c.DefaultQuery("page", "1")
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page is not an integer"})
			return
		}
		q := c.Query("q")

		filtered := c.Query("min_price") != "" || c.Query("max_price") != "" ||
			c.Query("market_name") != "" || c.Query("min_score") != "" ||
			c.Query("category") != ""

		if !filtered {
			if data, ok := svc.LoadProductList(page, q); ok {
				c.Data(http.StatusOK, "application/json", data)
				return
			}
		}

		query := db.Model(&models.Product{})
		if q != "" {
			query = query.Where("name ILIKE ?", "%"+q+"%")
		}
		query, ok := applyFilters(c, query)
		if !ok {
			return
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
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

		var products []models.Product
		err = query.Order("created_at DESC, name").
			Limit(pageSize).
			Offset((page - 1) * pageSize).
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		payload, err := json.Marshal(productListPage{Page: page, Count: pages, Data: products})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize products"})
			return
		}
		if !filtered {
			svc.SaveProductList(payload, page, q)
		}
		c.Data(http.StatusOK, "application/json", payload)
	}
}

func applyFilters(c *gin.Context, query *gorm.DB) (*gorm.DB, bool) {
	if minPrice := c.Query("min_price"); minPrice != "" {
		mp, err := strconv.ParseUint(minPrice, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
			return nil, false
		}
		query = query.Where("price >= ?", mp)
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		mp, err := strconv.ParseUint(maxPrice, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
			return nil, false
		}
		query = query.Where("price <= ?", mp)
	}
	if marketName := c.Query("market_name"); marketName != "" {
		query = query.
			Joins("JOIN markets ON markets.id = products.market_id").
			Where("markets.name ILIKE ?", "%"+marketName+"%")
	}
	if minScore := c.Query("min_score"); minScore != "" {
		ms, err := strconv.ParseUint(minScore, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_score"})
			return nil, false
		}
		query = query.Where("score >= ?", ms)
	}
	if categoryID := c.Query("category"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	return query, true
}
