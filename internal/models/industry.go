package models

// Industry holds the emission factor for a NAICS industry code.
// EmissionsFactor is kg CO2e emitted per 100 USD spent. Static reference
// data, keyed by NAICS code.
type Industry struct {
	NaicsCode       string  `gorm:"primaryKey" json:"naics_code"`
	Title           string  `gorm:"not null" json:"title"`
	Description     string  `json:"description"`
	EmissionsFactor float64 `gorm:"not null" json:"emissions_factor"`
}
