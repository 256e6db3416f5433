package cart

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/models"
)

// Ledger is the single write path for carts and cart items. Every mutating
// operation runs in one transaction and ends by recomputing the owning
// cart's amount from a fresh aggregate, so Cart.Amount always equals the
// sum of its items' final prices once the call returns.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// GetOrCreateCart returns the user's cart with items loaded, creating an
// empty cart (amount=0) on first use. Never creates a duplicate.
func (l *Ledger) GetOrCreateCart(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := l.db.
		Where(models.Cart{UserID: userID}).
		Attrs(models.Cart{ID: uuid.NewString()}).
		FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	if err := l.db.Preload("Items.Product").First(&cart, "id = ?", cart.ID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddOne adds the product to the user's cart with quantity 1, or increments
// the existing line by exactly 1. Client-supplied quantities are never used.
func (l *Ledger) AddOne(userID string, product *models.Product) (*models.CartItem, error) {
	var item *models.CartItem
	err := l.db.Transaction(func(tx *gorm.DB) error {
		cart, err := l.cartForUpdate(tx, userID)
		if err != nil {
			return err
		}

		var existing models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&existing).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			existing = models.CartItem{
				ID:        uuid.NewString(),
				CartID:    cart.ID,
				ProductID: product.ID,
				Quantity:  1,
			}
		case err != nil:
			return err
		default:
			existing.Quantity++
		}

		if err := saveItem(tx, &existing, product); err != nil {
			return err
		}
		item = &existing
		return recomputeAmount(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// SetQuantity creates or overwrites the line for (cart, product) with the
// given quantity. Fails with ErrInvalidQuantity before any mutation when
// quantity is not positive.
func (l *Ledger) SetQuantity(userID string, product *models.Product, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var item *models.CartItem
	err := l.db.Transaction(func(tx *gorm.DB) error {
		cart, err := l.cartForUpdate(tx, userID)
		if err != nil {
			return err
		}

		var existing models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&existing).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			existing = models.CartItem{
				ID:        uuid.NewString(),
				CartID:    cart.ID,
				ProductID: product.ID,
			}
		case err != nil:
			return err
		}
		existing.Quantity = quantity

		if err := saveItem(tx, &existing, product); err != nil {
			return err
		}
		item = &existing
		return recomputeAmount(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// DecreaseOne decrements the line's quantity by 1, flooring at 1. A line
// with quantity 1 is returned unchanged, never deleted. Fails with
// ErrItemNotInCart when the product has no line in the user's cart.
func (l *Ledger) DecreaseOne(userID string, product *models.Product) (*models.CartItem, error) {
	var item *models.CartItem
	err := l.db.Transaction(func(tx *gorm.DB) error {
		cart, err := l.cartForUpdate(tx, userID)
		if err != nil {
			return err
		}

		var existing models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			return ErrItemNotInCart
		}
		if err != nil {
			return err
		}

		if existing.Quantity > 1 {
			existing.Quantity--
		}
		if err := saveItem(tx, &existing, product); err != nil {
			return err
		}
		item = &existing
		return recomputeAmount(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Remove deletes the product's line from the user's cart entirely.
func (l *Ledger) Remove(userID string, product *models.Product) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		cart, err := l.cartForUpdate(tx, userID)
		if err != nil {
			return err
		}

		res := tx.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).Delete(&models.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrItemNotInCart
		}
		return recomputeAmount(tx, cart.ID)
	})
}

// Clear deletes every item in the user's cart, keeping the cart row with
// amount settled to 0. Returns the emptied cart.
func (l *Ledger) Clear(userID string) (*models.Cart, error) {
	var cartID string
	err := l.db.Transaction(func(tx *gorm.DB) error {
		cart, err := l.cartForUpdate(tx, userID)
		if err != nil {
			return err
		}
		cartID = cart.ID

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return recomputeAmount(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := l.db.Preload("Items").First(&cart, "id = ?", cartID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// RefreshProduct re-saves every cart item referencing the product so final
// prices pick up the current discount price, then recomputes the affected
// carts. Called whenever a product's price or percentage_off changes.
func (l *Ledger) RefreshProduct(product *models.Product) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("product_id = ?", product.ID).Find(&items).Error; err != nil {
			return err
		}

		carts := make(map[string]struct{}, len(items))
		for i := range items {
			if err := saveItem(tx, &items[i], product); err != nil {
				return err
			}
			carts[items[i].CartID] = struct{}{}
		}
		for cartID := range carts {
			if err := recomputeAmount(tx, cartID); err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveProductItems drops every line referencing the product and settles
// the affected carts. Called before a product row is deleted.
func (l *Ledger) RemoveProductItems(productID string) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("product_id = ?", productID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}

		if err := tx.Where("product_id = ?", productID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		carts := make(map[string]struct{}, len(items))
		for i := range items {
			carts[items[i].CartID] = struct{}{}
		}
		for cartID := range carts {
			if err := recomputeAmount(tx, cartID); err != nil {
				return err
			}
		}
		return nil
	})
}

// CheckoutLine is one serialized cart line inside a CartInfo snapshot.
type CheckoutLine struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	FinalPrice  uint   `json:"final_price"`
}

// Checkout freezes the user's cart into a CartInfo row (status pending) and
// empties the live cart. Fails with ErrEmptyCart when there is nothing to
// snapshot.
func (l *Ledger) Checkout(userID string) (*models.CartInfo, error) {
	var info models.CartInfo
	err := l.db.Transaction(func(tx *gorm.DB) error {
		cart, err := l.cartForUpdate(tx, userID)
		if err != nil {
			return err
		}

		var items []models.CartItem
		if err := tx.Preload("Product").Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		lines := make([]CheckoutLine, 0, len(items))
		for _, it := range items {
			lines = append(lines, CheckoutLine{
				ProductID:   it.ProductID,
				ProductName: it.Product.Name,
				Quantity:    it.Quantity,
				FinalPrice:  it.FinalPrice,
			})
		}
		blob, err := json.Marshal(lines)
		if err != nil {
			return err
		}

		info = models.CartInfo{
			ID:        uuid.NewString(),
			UserID:    userID,
			Amount:    cart.Amount,
			Items:     blob,
			Status:    models.CartInfoPending,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&info).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return recomputeAmount(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (l *Ledger) cartForUpdate(tx *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := tx.
		Where(models.Cart{UserID: userID}).
		Attrs(models.Cart{ID: uuid.NewString()}).
		FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// saveItem persists the item with its final price derived from the current
// product discount price. Every item write goes through here.
func saveItem(tx *gorm.DB, item *models.CartItem, product *models.Product) error {
	item.FinalPrice = models.FinalPrice(item.Quantity, product.DiscountPrice)
	return tx.Save(item).Error
}

// recomputeAmount settles the cart's amount from a fresh SUM over its
// remaining items. A full aggregate, not a delta: insensitive to mutation
// ordering and forced to exactly 0 for an empty cart.
func recomputeAmount(tx *gorm.DB, cartID string) error {
	var total uint
	err := tx.Model(&models.CartItem{}).
		Where("cart_id = ?", cartID).
		Select("COALESCE(SUM(final_price), 0)").
		Scan(&total).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.Cart{}).Where("id = ?", cartID).Update("amount", total).Error
}
