package cartControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amirhosin100/AmirShop/cart"
	cartControllers "github.com/amirhosin100/AmirShop/controllers/cart"
	"github.com/amirhosin100/AmirShop/models"
)

const testUserID = "user-1"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "cart.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Market{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.CartInfo{},
	)
	require.NoError(t, err)
	return db
}

// newRouter registers the cart endpoints behind a stub authenticator.
func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ledger := cart.NewLedger(db)

	r := gin.New()
	group := r.Group("/user/cart")
	group.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	})
	group.GET("", cartControllers.GetCart(ledger))
	group.POST("/add/:product_id", cartControllers.AddToCart(db, ledger))
	group.POST("/set/:product_id", cartControllers.SetItemQuantity(db, ledger))
	group.POST("/decrease/:product_id", cartControllers.DecreaseCartItem(db, ledger))
	group.DELETE("/remove/:product_id", cartControllers.RemoveCartItem(db, ledger))
	group.POST("/clear", cartControllers.ClearCart(ledger))
	group.POST("/checkout", cartControllers.Checkout(ledger, nil))
	group.GET("/info/list", cartControllers.GetCartInfoList(db))
	r.PUT("/admin/cartinfo/:id/status", cartControllers.UpdateCartInfoStatus(db))
	return r
}

func seedProduct(t *testing.T, db *gorm.DB, price, percentageOff uint) *models.Product {
	t.Helper()

	product := models.Product{
		ID:            uuid.NewString(),
		MarketID:      uuid.NewString(),
		Name:          "Test Product",
		Price:         price,
		PercentageOff: percentageOff,
		DiscountPrice: models.DiscountPrice(price, percentageOff),
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func do(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddToCartIgnoresBodyQuantity(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	product := seedProduct(t, db, 100_000, 20)

	// body quantity must be ignored: always +1
	w := do(r, http.MethodPost, "/user/cart/add/"+product.ID, []byte(`{"quantity": 99}`))
	require.Equal(t, http.StatusCreated, w.Code)

	var item cartControllers.CartItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	require.Equal(t, 1, item.Quantity)
	require.Equal(t, uint(80_000), item.FinalPrice)
	require.Equal(t, "Test Product", item.ProductName)

	w = do(r, http.MethodPost, "/user/cart/add/"+product.ID, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	require.Equal(t, 2, item.Quantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := do(r, http.MethodPost, "/user/cart/add/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Product does not exist")
}

func TestSetItemQuantityValidation(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	product := seedProduct(t, db, 100_000, 20)

	// missing quantity is distinct from an invalid one
	w := do(r, http.MethodPost, "/user/cart/set/"+product.ID, []byte(`{}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "quantity is required")

	w = do(r, http.MethodPost, "/user/cart/set/"+product.ID, []byte(`{"quantity": "two"}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "quantity must be an integer")

	w = do(r, http.MethodPost, "/user/cart/set/"+product.ID, []byte(`{"quantity": 0}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Quantity must be positive")

	w = do(r, http.MethodPost, "/user/cart/set/"+product.ID, []byte(`{"quantity": -3}`))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/user/cart/set/"+product.ID, []byte(`{"quantity": 4}`))
	require.Equal(t, http.StatusOK, w.Code)

	var item cartControllers.CartItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	require.Equal(t, 4, item.Quantity)
	require.Equal(t, uint(320_000), item.FinalPrice)
}

func TestDecreaseAndRemoveErrors(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	product := seedProduct(t, db, 100_000, 20)

	// state error, not a 404: the product exists, the relationship doesn't
	w := do(r, http.MethodPost, "/user/cart/decrease/"+product.ID, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "doesn't exist in cart")

	w = do(r, http.MethodDelete, "/user/cart/remove/"+product.ID, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "doesn't exist in cart")
}

func TestCartLifecycle(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	product := seedProduct(t, db, 100_000, 20) // discount_price = 80_000

	getCart := func() cartControllers.CartResponse {
		w := do(r, http.MethodGet, "/user/cart", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp cartControllers.CartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}

	require.Equal(t, uint(0), getCart().Amount)

	do(r, http.MethodPost, "/user/cart/add/"+product.ID, nil)
	require.Equal(t, uint(80_000), getCart().Amount)

	do(r, http.MethodPost, "/user/cart/add/"+product.ID, nil)
	require.Equal(t, uint(160_000), getCart().Amount)

	do(r, http.MethodPost, "/user/cart/decrease/"+product.ID, nil)
	require.Equal(t, uint(80_000), getCart().Amount)

	w := do(r, http.MethodDelete, "/user/cart/remove/"+product.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := getCart()
	require.Equal(t, uint(0), resp.Amount)
	require.Empty(t, resp.Items)
}

func TestClearCart(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	product := seedProduct(t, db, 100_000, 20)

	do(r, http.MethodPost, "/user/cart/add/"+product.ID, nil)

	w := do(r, http.MethodPost, "/user/cart/clear", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp cartControllers.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Empty(t, resp.Items)
	require.Equal(t, uint(0), resp.Amount)
}

func TestCheckout(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	product := seedProduct(t, db, 100_000, 20)

	w := do(r, http.MethodPost, "/user/cart/checkout", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "cart is empty")

	do(r, http.MethodPost, "/user/cart/set/"+product.ID, []byte(`{"quantity": 2}`))

	w = do(r, http.MethodPost, "/user/cart/checkout", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var info models.CartInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	require.Equal(t, models.CartInfoPending, info.Status)
	require.Equal(t, uint(160_000), info.Amount)

	// live cart is now empty
	w = do(r, http.MethodGet, "/user/cart", nil)
	var resp cartControllers.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Empty(t, resp.Items)
	require.Equal(t, uint(0), resp.Amount)

	// snapshot shows up in the user's history
	w = do(r, http.MethodGet, "/user/cart/info/list", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), info.ID)
}

func TestCartInfoStatusMachine(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	product := seedProduct(t, db, 100_000, 20)

	do(r, http.MethodPost, "/user/cart/add/"+product.ID, nil)
	w := do(r, http.MethodPost, "/user/cart/checkout", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var info models.CartInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))

	w = do(r, http.MethodPut, "/admin/cartinfo/"+info.ID+"/status", []byte(`{"status": "shipped"}`))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPut, "/admin/cartinfo/"+info.ID+"/status", []byte(`{"status": "paid"}`))
	require.Equal(t, http.StatusOK, w.Code)

	// paid is terminal
	w = do(r, http.MethodPut, "/admin/cartinfo/"+info.ID+"/status", []byte(`{"status": "canceled"}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "cannot transition")
}
