package cart

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amirhosin100/AmirShop/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "ledger.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Marketer{},
		&models.Market{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.CartInfo{},
	)
	require.NoError(t, err)
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, price, percentageOff uint) *models.Product {
	t.Helper()

	product := models.Product{
		ID:            uuid.NewString(),
		MarketID:      uuid.NewString(),
		Name:          "product-" + uuid.NewString()[:8],
		Price:         price,
		PercentageOff: percentageOff,
		DiscountPrice: models.DiscountPrice(price, percentageOff),
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func cartAmount(t *testing.T, db *gorm.DB, cartID string) uint {
	t.Helper()

	var cart models.Cart
	require.NoError(t, db.First(&cart, "id = ?", cartID).Error)
	return cart.Amount
}

// sumFinalPrices recomputes the invariant side independently of the ledger.
func sumFinalPrices(t *testing.T, db *gorm.DB, cartID string) uint {
	t.Helper()

	var items []models.CartItem
	require.NoError(t, db.Where("cart_id = ?", cartID).Find(&items).Error)
	var sum uint
	for _, item := range items {
		sum += item.FinalPrice
	}
	return sum
}

func TestGetOrCreateCartIdempotent(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)

	cart1, err := ledger.GetOrCreateCart("user-1")
	require.NoError(t, err)
	require.Equal(t, uint(0), cart1.Amount)

	cart2, err := ledger.GetOrCreateCart("user-1")
	require.NoError(t, err)
	require.Equal(t, cart1.ID, cart2.ID)

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", "user-1").Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestAddOneIncrementsByExactlyOne(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	product := seedProduct(t, db, 100_000, 20) // discount_price = 80_000

	item, err := ledger.AddOne("user-1", product)
	require.NoError(t, err)
	require.Equal(t, 1, item.Quantity)
	require.Equal(t, uint(80_000), item.FinalPrice)

	item, err = ledger.AddOne("user-1", product)
	require.NoError(t, err)
	require.Equal(t, 2, item.Quantity)
	require.Equal(t, uint(160_000), item.FinalPrice)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", item.CartID).Count(&count).Error)
	require.Equal(t, int64(1), count)
	require.Equal(t, uint(160_000), cartAmount(t, db, item.CartID))
}

func TestSetQuantity(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	product := seedProduct(t, db, 100_000, 20)

	item, err := ledger.SetQuantity("user-1", product, 5)
	require.NoError(t, err)
	require.Equal(t, 5, item.Quantity)
	require.Equal(t, uint(400_000), item.FinalPrice)
	require.Equal(t, uint(400_000), cartAmount(t, db, item.CartID))

	item, err = ledger.SetQuantity("user-1", product, 1)
	require.NoError(t, err)
	require.Equal(t, 1, item.Quantity)
	require.Equal(t, uint(80_000), cartAmount(t, db, item.CartID))
}

func TestSetQuantityRejectsNonPositiveWithoutMutation(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	product := seedProduct(t, db, 100_000, 20)

	existing, err := ledger.AddOne("user-1", product)
	require.NoError(t, err)

	_, err = ledger.SetQuantity("user-1", product, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = ledger.SetQuantity("user-1", product, -5)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	var item models.CartItem
	require.NoError(t, db.First(&item, "id = ?", existing.ID).Error)
	require.Equal(t, 1, item.Quantity)
	require.Equal(t, uint(80_000), cartAmount(t, db, item.CartID))
}

func TestDecreaseOneFloorsAtOne(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	product := seedProduct(t, db, 100_000, 20)
	other := seedProduct(t, db, 200_000, 0)

	_, err := ledger.AddOne("user-1", product)
	require.NoError(t, err)
	_, err = ledger.AddOne("user-1", product) // quantity = 2
	require.NoError(t, err)

	item, err := ledger.DecreaseOne("user-1", product)
	require.NoError(t, err)
	require.Equal(t, 1, item.Quantity)
	require.Equal(t, uint(80_000), item.FinalPrice)

	// never deletes, never goes below 1
	item, err = ledger.DecreaseOne("user-1", product)
	require.NoError(t, err)
	require.Equal(t, 1, item.Quantity)
	require.Equal(t, uint(80_000), cartAmount(t, db, item.CartID))

	_, err = ledger.DecreaseOne("user-1", other)
	require.ErrorIs(t, err, ErrItemNotInCart)
}

func TestRemove(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	product := seedProduct(t, db, 100_000, 20)

	item, err := ledger.AddOne("user-1", product)
	require.NoError(t, err)

	require.NoError(t, ledger.Remove("user-1", product))
	require.Equal(t, uint(0), cartAmount(t, db, item.CartID))

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", item.CartID).Count(&count).Error)
	require.Equal(t, int64(0), count)

	require.ErrorIs(t, ledger.Remove("user-1", product), ErrItemNotInCart)
}

func TestClearKeepsCartRow(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	product1 := seedProduct(t, db, 100_000, 20)
	product2 := seedProduct(t, db, 200_000, 0)

	_, err := ledger.AddOne("user-1", product1)
	require.NoError(t, err)
	_, err = ledger.AddOne("user-1", product2)
	require.NoError(t, err)
	_, err = ledger.AddOne("user-1", product1)
	require.NoError(t, err)

	cart, err := ledger.Clear("user-1")
	require.NoError(t, err)
	require.Empty(t, cart.Items)
	require.Equal(t, uint(0), cart.Amount)

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", "user-1").Count(&count).Error)
	require.Equal(t, int64(1), count)
}

// Full walkthrough: add, add, decrease, remove, with the amount
// matching the independent sum after every step.
func TestAmountInvariantThroughSequence(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	product := seedProduct(t, db, 100_000, 20) // discount_price = 80_000

	item, err := ledger.AddOne("user-1", product)
	require.NoError(t, err)
	cartID := item.CartID
	require.Equal(t, uint(80_000), cartAmount(t, db, cartID))
	require.Equal(t, sumFinalPrices(t, db, cartID), cartAmount(t, db, cartID))

	_, err = ledger.AddOne("user-1", product)
	require.NoError(t, err)
	require.Equal(t, uint(160_000), cartAmount(t, db, cartID))
	require.Equal(t, sumFinalPrices(t, db, cartID), cartAmount(t, db, cartID))

	_, err = ledger.DecreaseOne("user-1", product)
	require.NoError(t, err)
	require.Equal(t, uint(80_000), cartAmount(t, db, cartID))
	require.Equal(t, sumFinalPrices(t, db, cartID), cartAmount(t, db, cartID))

	require.NoError(t, ledger.Remove("user-1", product))
	require.Equal(t, uint(0), cartAmount(t, db, cartID))
}

func TestRefreshProductUpdatesFinalPrices(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	product := seedProduct(t, db, 100_000, 20) // discount_price = 80_000

	item, err := ledger.SetQuantity("user-1", product, 2)
	require.NoError(t, err)
	require.Equal(t, uint(160_000), cartAmount(t, db, item.CartID))

	// Discount goes from 20% to 50%
	product.PercentageOff = 50
	product.DiscountPrice = models.DiscountPrice(product.Price, product.PercentageOff)
	require.NoError(t, db.Save(product).Error)

	require.NoError(t, ledger.RefreshProduct(product))

	var refreshed models.CartItem
	require.NoError(t, db.First(&refreshed, "id = ?", item.ID).Error)
	require.Equal(t, uint(100_000), refreshed.FinalPrice)
	require.Equal(t, uint(100_000), cartAmount(t, db, item.CartID))
}

func TestRemoveProductItemsSettlesCarts(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	product := seedProduct(t, db, 100_000, 20)
	other := seedProduct(t, db, 200_000, 0)

	_, err := ledger.AddOne("user-1", product)
	require.NoError(t, err)
	item, err := ledger.AddOne("user-1", other)
	require.NoError(t, err)
	_, err = ledger.AddOne("user-2", product)
	require.NoError(t, err)

	require.NoError(t, ledger.RemoveProductItems(product.ID))

	require.Equal(t, uint(200_000), cartAmount(t, db, item.CartID))

	cart2, err := ledger.GetOrCreateCart("user-2")
	require.NoError(t, err)
	require.Equal(t, uint(0), cart2.Amount)
	require.Empty(t, cart2.Items)
}

func TestCheckoutSnapshotsAndEmptiesCart(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	product := seedProduct(t, db, 100_000, 20)

	_, err := ledger.SetQuantity("user-1", product, 2)
	require.NoError(t, err)

	info, err := ledger.Checkout("user-1")
	require.NoError(t, err)
	require.Equal(t, models.CartInfoPending, info.Status)
	require.Equal(t, uint(160_000), info.Amount)

	var lines []CheckoutLine
	require.NoError(t, json.Unmarshal(info.Items, &lines))
	require.Len(t, lines, 1)
	require.Equal(t, product.ID, lines[0].ProductID)
	require.Equal(t, product.Name, lines[0].ProductName)
	require.Equal(t, 2, lines[0].Quantity)
	require.Equal(t, uint(160_000), lines[0].FinalPrice)

	cart, err := ledger.GetOrCreateCart("user-1")
	require.NoError(t, err)
	require.Empty(t, cart.Items)
	require.Equal(t, uint(0), cart.Amount)

	// Snapshot survives independently of the live cart
	_, err = ledger.AddOne("user-1", product)
	require.NoError(t, err)
	var stored models.CartInfo
	require.NoError(t, db.First(&stored, "id = ?", info.ID).Error)
	require.Equal(t, uint(160_000), stored.Amount)

	_, err = ledger.Checkout("user-2")
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestUniqueCartProductConstraint(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	product := seedProduct(t, db, 100_000, 20)

	item, err := ledger.AddOne("user-1", product)
	require.NoError(t, err)

	duplicate := models.CartItem{
		ID:        uuid.NewString(),
		CartID:    item.CartID,
		ProductID: product.ID,
		Quantity:  5,
	}
	require.Error(t, db.Create(&duplicate).Error)
}
