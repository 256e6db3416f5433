package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/cart"
	"github.com/amirhosin100/AmirShop/models"
)

type CartItemResponse struct {
	ID          string `json:"id"`
	Product     string `json:"product"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	FinalPrice  uint   `json:"final_price"`
}

type CartResponse struct {
	ID     string             `json:"id"`
	Amount uint               `json:"amount"`
	Items  []CartItemResponse `json:"items"`
}

func cartResponse(c *models.Cart) CartResponse {
	resp := CartResponse{ID: c.ID, Amount: c.Amount, Items: []CartItemResponse{}}
	for _, item := range c.Items {
		resp.Items = append(resp.Items, CartItemResponse{
			ID:          item.ID,
			Product:     item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			FinalPrice:  item.FinalPrice,
		})
	}
	return resp
}

func itemResponse(item *models.CartItem, product *models.Product) CartItemResponse {
	return CartItemResponse{
		ID:          item.ID,
		Product:     item.ProductID,
		ProductName: product.Name,
		Quantity:    item.Quantity,
		FinalPrice:  item.FinalPrice,
	}
}

func currentUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userIDVal.(string), true
}

// fetchProduct resolves :product_id or writes the 404 contract for missing
// products, which is distinct from the item-not-in-cart error.
func fetchProduct(c *gin.Context, db *gorm.DB) (*models.Product, bool) {
	productID := c.Param("product_id")

	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product does not exist"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
		}
		return nil, false
	}
	return &product, true
}

// GET /user/cart
func GetCart(ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		userCart, err := ledger.GetOrCreateCart(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(userCart))
	}
}

// POST /user/cart/add/:product_id
// Always +1 semantics; any quantity in the request body is ignored.
func AddToCart(db *gorm.DB, ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		product, ok := fetchProduct(c, db)
		if !ok {
			return
		}

		item, err := ledger.AddOne(userID, product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, itemResponse(item, product))
	}
}

type setQuantityInput struct {
	Quantity *int `json:"quantity"`
}

// POST /user/cart/set/:product_id
func SetItemQuantity(db *gorm.DB, ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		product, ok := fetchProduct(c, db)
		if !ok {
			return
		}

		var input setQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "quantity must be an integer"})
			return
		}
		if input.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "quantity is required"})
			return
		}

		item, err := ledger.SetQuantity(userID, product, *input.Quantity)
		if err != nil {
			if errors.Is(err, cart.ErrInvalidQuantity) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be positive"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, itemResponse(item, product))
	}
}

// POST /user/cart/decrease/:product_id
func DecreaseCartItem(db *gorm.DB, ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		product, ok := fetchProduct(c, db)
		if !ok {
			return
		}

		item, err := ledger.DecreaseOne(userID, product)
		if err != nil {
			if errors.Is(err, cart.ErrItemNotInCart) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "product doesn't exist in cart"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, itemResponse(item, product))
	}
}

// DELETE /user/cart/remove/:product_id
func RemoveCartItem(db *gorm.DB, ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		product, ok := fetchProduct(c, db)
		if !ok {
			return
		}

		if err := ledger.Remove(userID, product); err != nil {
			if errors.Is(err, cart.ErrItemNotInCart) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "product doesn't exist in cart"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product has been removed"})
	}
}

// POST /user/cart/clear
func ClearCart(ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		userCart, err := ledger.Clear(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(userCart))
	}
}
