package models

type Category struct {
	ID            string        `gorm:"primaryKey" json:"id"`
	Title         string        `gorm:"unique;not null" json:"title"`
	Description   string        `json:"description"`
	SubCategories []SubCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"sub_categories"`
}

type SubCategory struct {
	ID         string `gorm:"primaryKey" json:"id"`
	CategoryID string `gorm:"uniqueIndex:idx_category_title;not null" json:"category_id"`
	Title      string `gorm:"uniqueIndex:idx_category_title;not null" json:"title"`
}
