package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greenchain/internal/services"
)

// UserHandler handles user profile requests.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUserByID returns a user profile with freshly derived emission totals
// @Summary     Get user profile
// @Description Get a user's profile, including total and current-month emission aggregates
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       userId path int true "User ID"
// @Success     200 {object} models.User "User profile"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{userId} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	userID, err := parsePathID(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
