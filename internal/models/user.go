package models

import "time"

// User represents the user model in the database. TotalEmissions and
// MonthlyEmissions are denormalized caches of the user's transaction
// emissions; they are re-derived from the transactions table inside the
// same storage transaction as every mutation.
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Username         string    `gorm:"uniqueIndex:idx_users_identity;not null" json:"username"`
	Email            string    `gorm:"uniqueIndex:idx_users_identity;not null" json:"email"`
	Password         string    `gorm:"not null" json:"-"`
	TotalEmissions   float64   `gorm:"not null;default:0" json:"total_emissions"`
	MonthlyEmissions float64   `gorm:"not null;default:0" json:"monthly_emissions"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}
