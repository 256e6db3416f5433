package models

import (
	"encoding/json"
	"time"
)

type Cart struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"uniqueIndex;not null" json:"-"` // one cart per user
	Amount    uint       `gorm:"default:0" json:"amount"`       // derived, never set by clients
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

type CartItem struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	CartID     string    `gorm:"uniqueIndex:idx_cart_product;not null" json:"-"`
	ProductID  string    `gorm:"uniqueIndex:idx_cart_product;not null" json:"product"`
	Product    Product   `gorm:"foreignKey:ProductID" json:"-"`
	Quantity   int       `gorm:"default:1" json:"quantity"`
	FinalPrice uint      `gorm:"default:0" json:"final_price"` // quantity × product discount price
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// CartInfo statuses. Paid and canceled are terminal.
const (
	CartInfoPending  = "pending"
	CartInfoPaid     = "paid"
	CartInfoCanceled = "canceled"
)

// CartInfo is a frozen snapshot of a checked-out cart. It does not reference
// live cart rows; Items holds the serialized lines as they were at checkout.
type CartInfo struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	UserID    string          `gorm:"index;not null" json:"-"`
	Amount    uint            `gorm:"not null" json:"amount"`
	Items     json.RawMessage `gorm:"type:jsonb" json:"items"`
	Status    string          `gorm:"default:pending;index" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"-"`
}

// CanTransition reports whether the status machine allows moving to next.
func (ci *CartInfo) CanTransition(next string) bool {
	if ci.Status != CartInfoPending {
		return false
	}
	return next == CartInfoPaid || next == CartInfoCanceled
}
