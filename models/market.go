package models

import "time"

type Market struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	MarketerID   string    `gorm:"index;not null" json:"marketer_id"`
	Name         string    `gorm:"not null;index" json:"name"`
	Bio          string    `json:"bio"`
	NumberPhone1 string    `json:"number_phone_1"`
	NumberPhone2 string    `json:"number_phone_2"`
	Website      string    `json:"website"`
	IsActive     bool      `gorm:"default:true;index" json:"is_active"`
	Products     []Product `gorm:"foreignKey:MarketID;constraint:OnDelete:RESTRICT" json:"-"` // markets with live products cannot be deleted
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
