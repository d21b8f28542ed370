package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"greenchain/internal/emissions"
	apperrors "greenchain/internal/errors"
	"greenchain/internal/logger"
	"greenchain/internal/models"
	"greenchain/internal/pagination"
)

// searchResultCap bounds search and suggestion result sets.
const searchResultCap = 10

// catalogService serves the read-only reference catalog. The underlying
// tables are seeded once at startup and never written afterwards.
type catalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new CatalogServicer.
func NewCatalogService(db *gorm.DB) CatalogServicer {
	return &catalogService{db: db}
}

// ListCategories retrieves a paginated list of categories.
func (s *catalogService) ListCategories(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	page.Defaults()

	var total int64
	if err := s.db.Model(&models.Category{}).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := s.db.Scopes(pagination.Paginate(page)).Order("id").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(categories, page.Page, page.Limit, total)
	return &result, nil
}

// GetCategoryByID retrieves a single category.
func (s *catalogService) GetCategoryByID(categoryID uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// GetIndustryByCode retrieves the emission factor record for a NAICS code.
func (s *catalogService) GetIndustryByCode(naicsCode string) (*models.Industry, error) {
	var industry models.Industry
	if err := s.db.Where("naics_code = ?", naicsCode).First(&industry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIndustryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &industry, nil
}

// Search matches categories by case-insensitive substring on the name, in
// storage order, capped at 10, and enriches each hit with the industry's
// emission factor. A hit whose NAICS code does not resolve is kept and
// flagged instead of dropped.
func (s *catalogService) Search(query string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Search query is required")
	}

	var categories []models.Category
	if err := s.db.
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("id").
		Limit(searchResultCap).
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrNoSearchMatches
	}

	results := make([]SearchResult, 0, len(categories))
	for _, cat := range categories {
		result := SearchResult{
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			NaicsCode:    cat.NaicsCode,
		}

		industry, err := s.GetIndustryByCode(cat.NaicsCode)
		switch {
		case err == nil:
			factor := industry.EmissionsFactor
			result.EmissionFactor = &factor
			result.Description = industry.Description
		case errors.Is(err, apperrors.ErrIndustryNotFound):
			result.NotFound = true
		default:
			return nil, err
		}

		results = append(results, result)
	}
	return results, nil
}

// Suggestions returns distinct category names longer than 3 characters,
// optionally filtered by substring match, ordered by name, capped at 10.
// It never fails: autocomplete callers probe it on every keystroke, so
// storage errors degrade to an empty list.
func (s *catalogService) Suggestions(query string) ([]string, error) {
	q := s.db.Model(&models.Category{}).
		Distinct("name").
		Where("LENGTH(name) > 3")

	if query = strings.TrimSpace(query); query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	var names []string
	if err := q.Order("name").Limit(searchResultCap).Pluck("name", &names).Error; err != nil {
		logger.Get().Warnw("suggestion query failed", "error", err.Error())
		return []string{}, nil
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// TopEmitters returns the categories with the highest emission factors,
// tagged with a risk level, for the dashboard view.
func (s *catalogService) TopEmitters(limit int) ([]EmitterSummary, error) {
	if limit <= 0 {
		limit = searchResultCap
	}

	type row struct {
		ID              uint
		Name            string
		NaicsCode       string
		EmissionsFactor float64
	}

	var rows []row
	if err := s.db.Table("categories").
		Select("categories.id, categories.name, categories.naics_code, industries.emissions_factor").
		Joins("JOIN industries ON industries.naics_code = categories.naics_code").
		Order("industries.emissions_factor DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summaries := make([]EmitterSummary, 0, len(rows))
	for _, r := range rows {
		summaries = append(summaries, EmitterSummary{
			CategoryID:      r.ID,
			CategoryName:    r.Name,
			NaicsCode:       r.NaicsCode,
			EmissionsFactor: r.EmissionsFactor,
			RiskLevel:       emissions.RiskLevel(r.EmissionsFactor),
		})
	}
	return summaries, nil
}
