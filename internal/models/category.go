package models

// Category is static reference data mapping a purchase category to a NAICS
// code. Many categories may share a NAICS code. Loaded once at startup and
// never mutated at runtime.
type Category struct {
	ID        uint   `gorm:"primaryKey" json:"category_id"`
	Name      string `gorm:"not null;index" json:"category_name"`
	NaicsCode string `gorm:"not null;index" json:"naics_code"`

	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"-"`
}
