package database

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gorm.io/gorm"

	"greenchain/internal/logger"
	"greenchain/internal/models"
)

// Seed loads the category and industry reference data from CSV files in
// dataDir into their tables. Seeding is idempotent: a table that already
// holds rows is left untouched, so reference data is effectively read-only
// after first startup.
func Seed(db *gorm.DB, dataDir string) error {
	if err := seedIndustries(db, filepath.Join(dataDir, "industries.csv")); err != nil {
		return fmt.Errorf("failed to seed industries: %w", err)
	}
	if err := seedCategories(db, filepath.Join(dataDir, "categories.csv")); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	return nil
}

// seedIndustries reads naics_code,title,description,emissions_factor rows.
func seedIndustries(db *gorm.DB, path string) error {
	var count int64
	if err := db.Model(&models.Industry{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	records, err := readCSV(path)
	if err != nil {
		return err
	}

	industries := make([]models.Industry, 0, len(records))
	for i, rec := range records {
		if len(rec) != 4 {
			return fmt.Errorf("%s: row %d: expected 4 columns, got %d", path, i+2, len(rec))
		}
		factor, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return fmt.Errorf("%s: row %d: invalid emissions factor %q: %w", path, i+2, rec[3], err)
		}
		industries = append(industries, models.Industry{
			NaicsCode:       rec[0],
			Title:           rec[1],
			Description:     rec[2],
			EmissionsFactor: factor,
		})
	}

	if err := db.Create(&industries).Error; err != nil {
		return err
	}
	logger.Get().Infof("Seeded %d industries from %s", len(industries), path)
	return nil
}

// seedCategories reads name,naics_code rows.
func seedCategories(db *gorm.DB, path string) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	records, err := readCSV(path)
	if err != nil {
		return err
	}

	categories := make([]models.Category, 0, len(records))
	for i, rec := range records {
		if len(rec) != 2 {
			return fmt.Errorf("%s: row %d: expected 2 columns, got %d", path, i+2, len(rec))
		}
		categories = append(categories, models.Category{
			Name:      rec[0],
			NaicsCode: rec[1],
		})
	}

	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	logger.Get().Infof("Seeded %d categories from %s", len(categories), path)
	return nil
}

// readCSV returns all data rows of a CSV file, skipping the header.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}
	return records[1:], nil
}
