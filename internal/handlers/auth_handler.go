package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "greenchain/internal/errors"
	"greenchain/internal/services"
)

// AuthHandler handles identity-related requests.
type AuthHandler struct {
	userService services.UserServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService services.UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// LoginRequest represents the login-or-register request payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// IdentityResponse represents the user identity in the login response.
type IdentityResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Login handles the upsert-by-credentials identity call
// @Summary     Login or register
// @Description Look up a user by username and email, creating the user on first contact. An existing user with a non-matching password is rejected.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User credentials"
// @Success     200 {object} IdentityResponse "Existing user authenticated"
// @Success     201 {object} IdentityResponse "New user created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, created, err := h.userService.LoginOrRegister(req.Username, req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, IdentityResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
