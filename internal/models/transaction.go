package models

import "time"

// Transaction represents a recorded purchase. Emissions is derived as
// amount * emissions_factor(naics_code) / 100 and is recomputed whenever
// amount or category changes. IDs are sequence-backed and strictly
// increasing across the whole table.
type Transaction struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	CategoryID uint      `gorm:"not null" json:"category_id"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Date       time.Time `gorm:"not null" json:"date"`
	Emissions  float64   `gorm:"not null" json:"emissions"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
