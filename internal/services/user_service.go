package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"greenchain/internal/emissions"
	apperrors "greenchain/internal/errors"
	"greenchain/internal/models"
)

// userService handles identity-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// LoginOrRegister looks up a user by username and email, creating the user
// on first contact. Passwords are bcrypt-hashed on creation; a login for an
// existing user with a non-matching password fails with invalid credentials.
func (s *userService) LoginOrRegister(username, email, password string) (*models.User, bool, error) {
	if username == "" || email == "" || password == "" {
		return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "username, email, and password are required")
	}

	var user models.User
	err := s.db.Where("username = ? AND email = ?", username, strings.ToLower(email)).First(&user).Error
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			return nil, false, apperrors.ErrInvalidCredentials
		}
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user = models.User{
		Username: username,
		Email:    strings.ToLower(email),
		Password: string(hashedPassword),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, true, nil
}

// GetUserByID retrieves a user profile. The derived emission aggregates are
// recomputed from the transaction log at read time so the monthly figure
// tracks the current calendar month even when no mutation has happened
// since the month rolled over.
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var txs []models.Transaction
	if err := s.db.Where("user_id = ?", id).Find(&txs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	user.TotalEmissions = emissions.Total(txs)
	user.MonthlyEmissions = emissions.MonthTotal(txs, time.Now())

	return &user, nil
}
