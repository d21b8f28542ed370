package services

import (
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"greenchain/internal/emissions"
	apperrors "greenchain/internal/errors"
	"greenchain/internal/models"
)

// serializableTx is the isolation level for every mutating operation.
// Two concurrent writers on the same user's transactions must never leave
// the derived aggregates inconsistent with the transaction log.
var serializableTx = &sql.TxOptions{Isolation: sql.LevelSerializable}

// transactionService handles transaction CRUD and keeps the user's derived
// emission aggregates in sync. Aggregates are recomputed from the
// transaction rows inside the same storage transaction as each mutation,
// never maintained by triggers.
type transactionService struct {
	db      *gorm.DB
	catalog CatalogServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, catalog CatalogServicer) TransactionServicer {
	return &transactionService{db: db, catalog: catalog}
}

// CreateTransaction records a purchase for a user, deriving its emissions
// from the category's industry factor, and updates the user's aggregates.
func (s *transactionService) CreateTransaction(userID, categoryID uint, amount float64, date time.Time) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if date.IsZero() {
		return nil, apperrors.ErrInvalidDate
	}

	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	category, factor, err := s.resolveFactor(categoryID)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Date:       date,
		Emissions:  emissions.Derive(amount, factor),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.refreshUserAggregates(tx, userID)
	}, serializableTx)
	if err != nil {
		return nil, err
	}

	transaction.Category = *category
	return transaction, nil
}

// UpdateTransaction recomputes the emissions of an existing transaction
// from the (possibly changed) category and amount, and corrects the user's
// aggregates for the delta. Passing a nil categoryID keeps the current
// category.
func (s *transactionService) UpdateTransaction(userID, transactionID uint, categoryID *uint, amount float64, date time.Time) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if date.IsZero() {
		return nil, apperrors.ErrInvalidDate
	}

	transaction, err := s.getOwnedTransaction(userID, transactionID)
	if err != nil {
		return nil, err
	}

	newCategoryID := transaction.CategoryID
	if categoryID != nil {
		newCategoryID = *categoryID
	}

	category, factor, err := s.resolveFactor(newCategoryID)
	if err != nil {
		return nil, err
	}

	transaction.CategoryID = newCategoryID
	transaction.Amount = amount
	transaction.Date = date
	transaction.Emissions = emissions.Derive(amount, factor)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.refreshUserAggregates(tx, userID)
	}, serializableTx)
	if err != nil {
		return nil, err
	}

	transaction.Category = *category
	return transaction, nil
}

// DeleteTransaction removes a transaction and subtracts exactly its own
// contribution from the user's aggregates. A transaction whose category no
// longer resolves to an emission factor deletes cleanly; its stored
// emissions simply drop out of the recomputed sums.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	transaction, err := s.getOwnedTransaction(userID, transactionID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.refreshUserAggregates(tx, userID)
	}, serializableTx)
}

// GetUserTransactions lists a user's transactions, newest date first.
// Returns an empty slice for a user with no transactions or an unknown user.
func (s *transactionService) GetUserTransactions(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}

// BulkCreate records a batch of purchases atomically: if any entry fails
// validation or category resolution, none of the batch is committed.
func (s *transactionService) BulkCreate(userID uint, inputs []BulkTransactionInput) ([]models.Transaction, error) {
	if len(inputs) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one transaction is required")
	}

	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	var created []models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		created = created[:0]
		for _, in := range inputs {
			if in.Amount <= 0 {
				return apperrors.ErrInvalidAmount
			}
			if in.Date.IsZero() {
				return apperrors.ErrInvalidDate
			}

			category, factor, err := s.resolveFactor(in.CategoryID)
			if err != nil {
				return err
			}

			transaction := models.Transaction{
				UserID:     userID,
				CategoryID: in.CategoryID,
				Amount:     in.Amount,
				Date:       in.Date,
				Emissions:  emissions.Derive(in.Amount, factor),
			}
			if err := tx.Create(&transaction).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			transaction.Category = *category
			created = append(created, transaction)
		}
		return s.refreshUserAggregates(tx, userID)
	}, serializableTx)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetCarbonInsights derives the per-category and per-month aggregation
// views from the user's full transaction set. Both views are recomputed on
// read; only the current-month total is kept denormalized on the user row.
func (s *transactionService) GetCarbonInsights(userID uint) (*CarbonInsights, error) {
	transactions, err := s.GetUserTransactions(userID)
	if err != nil {
		return nil, err
	}

	return &CarbonInsights{
		CategoryInsights: emissions.ByCategory(transactions),
		MonthlyInsights:  emissions.ByMonth(transactions),
	}, nil
}

// getOwnedTransaction fetches a transaction scoped to its owner. A
// transaction belonging to another user is indistinguishable from a missing
// one.
func (s *transactionService) getOwnedTransaction(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// requireUser verifies the user exists.
func (s *transactionService) requireUser(userID uint) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// resolveFactor resolves a category and its industry's emission factor.
func (s *transactionService) resolveFactor(categoryID uint) (*models.Category, float64, error) {
	category, err := s.catalog.GetCategoryByID(categoryID)
	if err != nil {
		return nil, 0, err
	}
	industry, err := s.catalog.GetIndustryByCode(category.NaicsCode)
	if err != nil {
		return nil, 0, err
	}
	return category, industry.EmissionsFactor, nil
}

// refreshUserAggregates re-derives total_emissions and monthly_emissions
// from the user's transaction rows within the caller's storage transaction.
func (s *transactionService) refreshUserAggregates(tx *gorm.DB, userID uint) error {
	var transactions []models.Transaction
	if err := tx.Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := map[string]interface{}{
		"total_emissions":   emissions.Total(transactions),
		"monthly_emissions": emissions.MonthTotal(transactions, time.Now()),
	}
	if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
