package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"greenchain/internal/handlers"
	"greenchain/internal/logger"
	"greenchain/internal/middleware"
	"greenchain/internal/models"
	"greenchain/internal/services"
	"greenchain/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Category{},
		&models.Industry{},
		&models.Transaction{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	catalogService := services.NewCatalogService(db)
	transactionService := services.NewTransactionService(db, catalogService)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	api := router.Group("/api")

	api.POST("/auth/login", authHandler.Login)

	api.GET("/categories", catalogHandler.ListCategories)
	api.GET("/categories/:id", catalogHandler.GetCategoryByID)
	api.GET("/industries/:naicsCode", catalogHandler.GetIndustryByCode)
	api.GET("/search", catalogHandler.Search)
	api.GET("/suggestions", catalogHandler.Suggestions)
	api.GET("/dashboard/emissions", catalogHandler.DashboardEmissions)

	users := api.Group("/users")
	users.GET("/:userId", userHandler.GetUserByID)
	users.GET("/:userId/transactions", transactionHandler.ListTransactions)
	users.POST("/:userId/transactions", transactionHandler.CreateTransaction)
	users.PUT("/:userId/transactions/:id", transactionHandler.UpdateTransaction)
	users.DELETE("/:userId/transactions/:id", transactionHandler.DeleteTransaction)
	users.POST("/:userId/bulk-transaction", transactionHandler.BulkCreate)
	users.GET("/:userId/carbon-insights", transactionHandler.GetCarbonInsights)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// parseJSONArray parses the response body into a slice of maps.
func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var result []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// seedCatalog inserts an industry and a category pointing at it, returning
// the category ID.
func (app *testApp) seedCatalog(t *testing.T, name, naicsCode string, factor float64) float64 {
	t.Helper()

	industry := models.Industry{
		NaicsCode:       naicsCode,
		Title:           name + " Industry",
		Description:     "Industry sector for " + name,
		EmissionsFactor: factor,
	}
	if err := app.DB.Create(&industry).Error; err != nil {
		t.Fatalf("failed to seed industry: %v", err)
	}

	category := models.Category{Name: name, NaicsCode: naicsCode}
	if err := app.DB.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return float64(category.ID)
}

// loginUser performs the upsert-by-credentials call and returns the user ID.
func (app *testApp) loginUser(t *testing.T, username, email string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":"password123"}`, username, email)
	rec := app.request("POST", "/api/auth/login", body)
	if rec.Code != http.StatusOK && rec.Code != http.StatusCreated {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(float64)
}
