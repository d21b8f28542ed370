package services

import (
	"time"

	"greenchain/internal/emissions"
	"greenchain/internal/models"
	"greenchain/internal/pagination"
)

// UserServicer defines the contract for identity-related business logic.
type UserServicer interface {
	// LoginOrRegister upserts a user by username+email. The boolean is true
	// when a new user was created.
	LoginOrRegister(username, email, password string) (*models.User, bool, error)
	GetUserByID(id uint) (*models.User, error)
}

// SearchResult is one category hit of a search query, enriched with the
// industry's emission factor when the NAICS code resolves. A category match
// always wins over emission-factor availability: an unresolvable code sets
// NotFound instead of dropping the row.
type SearchResult struct {
	CategoryID     uint     `json:"category_id"`
	CategoryName   string   `json:"category_name"`
	NaicsCode      string   `json:"naics_code"`
	EmissionFactor *float64 `json:"emission_factor,omitempty"`
	Description    string   `json:"description,omitempty"`
	NotFound       bool     `json:"not_found,omitempty"`
}

// EmitterSummary is one row of the dashboard's top-emitters view.
type EmitterSummary struct {
	CategoryID      uint    `json:"category_id"`
	CategoryName    string  `json:"category_name"`
	NaicsCode       string  `json:"naics_code"`
	EmissionsFactor float64 `json:"emissions_factor"`
	RiskLevel       string  `json:"risk_level"`
}

// CatalogServicer defines the contract for the read-only reference catalog:
// categories, industries, search, and suggestions.
type CatalogServicer interface {
	ListCategories(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(categoryID uint) (*models.Category, error)
	GetIndustryByCode(naicsCode string) (*models.Industry, error)
	Search(query string) ([]SearchResult, error)
	Suggestions(query string) ([]string, error)
	TopEmitters(limit int) ([]EmitterSummary, error)
}

// BulkTransactionInput is one entry of an atomic batch add.
type BulkTransactionInput struct {
	CategoryID uint
	Amount     float64
	Date       time.Time
}

// CarbonInsights bundles the two aggregation views served by the
// carbon-insights endpoint.
type CarbonInsights struct {
	CategoryInsights []emissions.CategoryInsight `json:"categoryInsights"`
	MonthlyInsights  []emissions.MonthlyInsight  `json:"monthlyInsights"`
}

// TransactionServicer defines the contract for transaction CRUD and the
// derived aggregation views.
type TransactionServicer interface {
	CreateTransaction(userID, categoryID uint, amount float64, date time.Time) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, categoryID *uint, amount float64, date time.Time) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
	GetUserTransactions(userID uint) ([]models.Transaction, error)
	BulkCreate(userID uint, inputs []BulkTransactionInput) ([]models.Transaction, error)
	GetCarbonInsights(userID uint) (*CarbonInsights, error)
}
