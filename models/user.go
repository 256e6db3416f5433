package models

import "time"

type User struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Phone     string `gorm:"unique;not null" json:"phone"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Cart      Cart   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Marketer is the seller profile attached to a user account.
type Marketer struct {
	ID           string `gorm:"primaryKey" json:"id"`
	UserID       string `gorm:"uniqueIndex;not null" json:"user_id"`
	NationalCode string `json:"national_code"`
	Age          int    `json:"age"`
	City         string `json:"city"`
	Province     string `json:"province"`
	Address      string `json:"address"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
