package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"greenchain/internal/models"
)

func TestCatalogFlow_SearchAndSuggestions(t *testing.T) {
	app := setupApp(t)
	app.seedCatalog(t, "Electronics", "334111", 0.11)
	app.seedCatalog(t, "Electric Utilities", "221122", 4.05)
	app.seedCatalog(t, "Groceries", "445110", 0.55)

	// Search enriches hits with emission factors
	rec := app.request("GET", "/api/search?query=electr", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	results := parseJSONArray(t, rec)
	if len(results) != 2 {
		t.Fatalf("expected 2 matches for 'electr', got %d", len(results))
	}
	if results[0]["category_name"].(string) != "Electronics" {
		t.Errorf("expected Electronics first, got %v", results[0]["category_name"])
	}
	if results[0]["emission_factor"].(float64) != 0.11 {
		t.Errorf("expected factor 0.11, got %v", results[0]["emission_factor"])
	}

	// A blank query is a client error
	rec = app.request("GET", "/api/search?query=", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for blank query, got %d", rec.Code)
	}

	// No match is 404
	rec = app.request("GET", "/api/search?query=zzzzz", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for no matches, got %d", rec.Code)
	}

	// Suggestions are sorted names longer than 3 characters
	rec = app.request("GET", "/api/suggestions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var names []string
	if err := json.Unmarshal(rec.Body.Bytes(), &names); err != nil {
		t.Fatalf("failed to parse suggestions: %v", err)
	}
	want := []string{"Electric Utilities", "Electronics", "Groceries"}
	if len(names) != len(want) {
		t.Fatalf("expected %d suggestions, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected suggestion %q at %d, got %q", want[i], i, names[i])
		}
	}
}

func TestCatalogFlow_SearchKeepsUnresolvableHits(t *testing.T) {
	app := setupApp(t)
	// Category with no industry row behind its NAICS code
	if err := app.DB.Create(&models.Category{Name: "Mystery Goods", NaicsCode: "999999"}).Error; err != nil {
		t.Fatalf("failed to insert category: %v", err)
	}

	rec := app.request("GET", "/api/search?query=mystery", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	results := parseJSONArray(t, rec)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0]["not_found"] != true {
		t.Errorf("expected not_found flag, got %v", results[0])
	}
	if _, present := results[0]["emission_factor"]; present {
		t.Errorf("expected emission_factor to be omitted")
	}
}

func TestCatalogFlow_PaginatedCategories(t *testing.T) {
	app := setupApp(t)
	app.seedCatalog(t, "Electronics", "334111", 0.11)
	app.seedCatalog(t, "Flights", "481111", 2.38)
	app.seedCatalog(t, "Groceries", "445110", 0.55)

	rec := app.request("GET", "/api/categories?page=1&limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	envelope := parseJSON(t, rec)
	if envelope["total"].(float64) != 3 {
		t.Errorf("expected total 3, got %v", envelope["total"])
	}
	if envelope["page"].(float64) != 1 || envelope["limit"].(float64) != 2 {
		t.Errorf("unexpected envelope: %v", envelope)
	}
	if len(envelope["data"].([]interface{})) != 2 {
		t.Errorf("expected 2 rows on page 1")
	}

	rec = app.request("GET", "/api/categories?page=2&limit=2", "")
	envelope = parseJSON(t, rec)
	if len(envelope["data"].([]interface{})) != 1 {
		t.Errorf("expected 1 row on page 2")
	}

	rec = app.request("GET", "/api/categories?limit=1000", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for out-of-range limit, got %d", rec.Code)
	}
}

func TestCatalogFlow_DashboardEmissions(t *testing.T) {
	app := setupApp(t)
	app.seedCatalog(t, "Electronics", "334111", 0.11)
	app.seedCatalog(t, "Gasoline", "447110", 2.91)
	app.seedCatalog(t, "Furniture", "337121", 0.92)

	rec := app.request("GET", "/api/dashboard/emissions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rows := parseJSONArray(t, rec)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0]["category_name"].(string) != "Gasoline" {
		t.Errorf("expected Gasoline first, got %v", rows[0]["category_name"])
	}
	if rows[0]["risk_level"].(string) != "High" {
		t.Errorf("expected High risk, got %v", rows[0]["risk_level"])
	}
	if rows[1]["risk_level"].(string) != "Medium" {
		t.Errorf("expected Medium risk for 0.92, got %v", rows[1]["risk_level"])
	}
	if rows[2]["risk_level"].(string) != "Low" {
		t.Errorf("expected Low risk for 0.11, got %v", rows[2]["risk_level"])
	}
}
