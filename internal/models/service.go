package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `json:"duration"`
	Price       float64 `json:"price"`
	ImageURL    string  `gorm:"size:255" json:"imageUrl"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
