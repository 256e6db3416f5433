package models

import "time"

type Product struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	MarketID      string    `gorm:"index;not null" json:"market_id"`
	Market        Market    `gorm:"foreignKey:MarketID" json:"-"`
	CategoryID    *string   `gorm:"index" json:"category_id"`
	Name          string    `gorm:"not null;index" json:"name"`
	Description   string    `json:"description"`
	Price         uint      `gorm:"not null" json:"price"`
	PercentageOff uint      `gorm:"default:0" json:"percentage_off"`
	DiscountPrice uint      `gorm:"default:0" json:"discount_price"`
	Stock         uint      `gorm:"default:0" json:"stock"`
	Score         uint      `gorm:"default:0" json:"score"` // maintained by the comment subsystem
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DiscountPrice applies percentage_off to price with integer truncation.
// Callers must set Product.DiscountPrice through this before persisting.
func DiscountPrice(price, percentageOff uint) uint {
	return price - price*percentageOff/100
}

// FinalPrice is a cart line's total: quantity times the product's discount price.
func FinalPrice(quantity int, discountPrice uint) uint {
	return uint(quantity) * discountPrice
}
