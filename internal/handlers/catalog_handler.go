package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "greenchain/internal/errors"
	"greenchain/internal/pagination"
	"greenchain/internal/services"
)

// dashboardEmittersLimit bounds the dashboard's top-emitters view.
const dashboardEmittersLimit = 10

// CatalogHandler handles reference catalog requests: categories,
// industries, search, suggestions, and the dashboard emissions view.
type CatalogHandler struct {
	catalogService services.CatalogServicer
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService services.CatalogServicer) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCategories returns a paginated category list
// @Summary     List categories
// @Description Get a paginated list of purchase categories
// @Tags        catalog
// @Accept      json
// @Produce     json
// @Param       page  query int false "Page number (default 1)"
// @Param       limit query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Category] "Paginated categories"
// @Failure     400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.catalogService.ListCategories(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCategoryByID returns a single category
// @Summary     Get category by ID
// @Description Get a single purchase category
// @Tags        catalog
// @Accept      json
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {object} models.Category "Category"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *CatalogHandler) GetCategoryByID(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.catalogService.GetCategoryByID(categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// GetIndustryByCode returns one emission factor record
// @Summary     Get industry by NAICS code
// @Description Get the emission factor record for a NAICS code
// @Tags        catalog
// @Accept      json
// @Produce     json
// @Param       naicsCode path string true "NAICS code"
// @Success     200 {object} models.Industry "Industry"
// @Failure     404 {object} ErrorResponse "No emission factor for this code"
// @Router      /industries/{naicsCode} [get]
func (h *CatalogHandler) GetIndustryByCode(c *gin.Context) {
	industry, err := h.catalogService.GetIndustryByCode(c.Param("naicsCode"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, industry)
}

// Search matches categories and enriches them with emission factors
// @Summary     Search categories
// @Description Case-insensitive substring search over category names, enriched with emission factors, capped at 10 results
// @Tags        catalog
// @Accept      json
// @Produce     json
// @Param       query query string true "Search query"
// @Success     200 {array} services.SearchResult "Matching categories"
// @Failure     400 {object} ErrorResponse "Missing query"
// @Failure     404 {object} ErrorResponse "No matches"
// @Router      /search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	results, err := h.catalogService.Search(c.Query("query"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// Suggestions returns autocomplete category names
// @Summary     Category name suggestions
// @Description Distinct category names for autocomplete, optionally filtered by substring, capped at 10. Never fails; returns an empty array instead.
// @Tags        catalog
// @Accept      json
// @Produce     json
// @Param       query query string false "Substring filter"
// @Success     200 {array} string "Category names"
// @Router      /suggestions [get]
func (h *CatalogHandler) Suggestions(c *gin.Context) {
	names, err := h.catalogService.Suggestions(c.Query("query"))
	if err != nil {
		// The suggestion service degrades rather than erroring, but keep
		// the error path for interface changes.
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, names)
}

// DashboardEmissions returns the highest-factor categories with risk tags
// @Summary     Top emitting categories
// @Description Categories with the highest emission factors, tagged with a risk level
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Success     200 {array} services.EmitterSummary "Top emitters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/emissions [get]
func (h *CatalogHandler) DashboardEmissions(c *gin.Context) {
	summaries, err := h.catalogService.TopEmitters(dashboardEmittersLimit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}
