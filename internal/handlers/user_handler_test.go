package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "greenchain/internal/errors"
	"greenchain/internal/models"
)

func setupUserRouter(svc *mockUserService) *gin.Engine {
	router := gin.New()
	handler := NewUserHandler(svc)
	router.GET("/api/users/:userId", handler.GetUserByID)
	return router
}

func TestGetUserProfile(t *testing.T) {
	t.Run("returns_profile_with_aggregates", func(t *testing.T) {
		svc := &mockUserService{
			getUserByIDFn: func(id uint) (*models.User, error) {
				return &models.User{
					ID:               id,
					Username:         "alice",
					Email:            "alice@example.com",
					Password:         "secret-hash",
					TotalEmissions:   42.5,
					MonthlyEmissions: 5.5,
				}, nil
			},
		}
		router := setupUserRouter(svc)

		w := doRequest(t, router, http.MethodGet, "/api/users/7", nil)
		assertStatus(t, w, http.StatusOK)

		var body map[string]interface{}
		parseJSON(t, w, &body)
		if body["username"] != "alice" {
			t.Errorf("expected username alice, got %v", body["username"])
		}
		if body["total_emissions"].(float64) != 42.5 {
			t.Errorf("expected total_emissions 42.5, got %v", body["total_emissions"])
		}
		if _, leaked := body["password"]; leaked {
			t.Error("password must never appear on the wire")
		}
	})

	t.Run("returns_404_for_unknown_user", func(t *testing.T) {
		svc := &mockUserService{
			getUserByIDFn: func(id uint) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		router := setupUserRouter(svc)

		w := doRequest(t, router, http.MethodGet, "/api/users/9999", nil)
		assertStatus(t, w, http.StatusNotFound)
		assertErrorBody(t, w)
	})

	t.Run("returns_400_for_non_numeric_id", func(t *testing.T) {
		svc := &mockUserService{}
		router := setupUserRouter(svc)

		w := doRequest(t, router, http.MethodGet, "/api/users/abc", nil)
		assertStatus(t, w, http.StatusBadRequest)
	})
}
