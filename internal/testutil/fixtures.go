package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"greenchain/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique identity.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithIdentity(t, db, fmt.Sprintf("user%d", n), fmt.Sprintf("user%d@test.com", n))
}

// CreateTestUserWithIdentity creates a user with the given username and email.
func CreateTestUserWithIdentity(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestIndustry creates an industry with the given NAICS code and factor.
func CreateTestIndustry(t *testing.T, db *gorm.DB, naicsCode string, factor float64) *models.Industry {
	t.Helper()

	industry := &models.Industry{
		NaicsCode:       naicsCode,
		Title:           fmt.Sprintf("Test Industry %s", naicsCode),
		Description:     fmt.Sprintf("Industry sector for NAICS %s", naicsCode),
		EmissionsFactor: factor,
	}
	if err := db.Create(industry).Error; err != nil {
		t.Fatalf("failed to create test industry: %v", err)
	}
	return industry
}

// CreateTestCategory creates a category pointing at the given NAICS code.
func CreateTestCategory(t *testing.T, db *gorm.DB, name, naicsCode string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:      name,
		NaicsCode: naicsCode,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestCategoryWithFactor creates a category together with a backing
// industry holding the given emission factor.
func CreateTestCategoryWithFactor(t *testing.T, db *gorm.DB, name string, factor float64) *models.Category {
	t.Helper()

	naicsCode := fmt.Sprintf("%06d", 400000+nextID())
	CreateTestIndustry(t, db, naicsCode, factor)
	return CreateTestCategory(t, db, name, naicsCode)
}

// CreateTestTransaction creates a transaction with the given amount and
// pre-derived emissions, dated on the given day.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, categoryID uint, amount, txEmissions float64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Date:       date,
		Emissions:  txEmissions,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// Date builds a calendar date at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
