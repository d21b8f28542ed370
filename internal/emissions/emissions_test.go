package emissions

import (
	"testing"
	"time"

	"greenchain/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDerive(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		factor float64
		want   float64
	}{
		{"electronics_purchase", 500, 1.1, 5.5},
		{"low_factor", 500, 0.11, 0.55},
		{"rounds_to_cents", 33.33, 0.62, 0.21},
		{"zero_amount", 0, 2.5, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Derive(tc.amount, tc.factor); got != tc.want {
				t.Errorf("Derive(%v, %v) = %v, want %v", tc.amount, tc.factor, got, tc.want)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	txs := []models.Transaction{
		{Emissions: 5.5},
		{Emissions: 0.55},
		{Emissions: 12.01},
	}
	if got := Total(txs); got != 18.06 {
		t.Errorf("expected 18.06, got %v", got)
	}

	if got := Total(nil); got != 0 {
		t.Errorf("expected 0 for empty set, got %v", got)
	}
}

func TestMonthTotal(t *testing.T) {
	now := date(2024, time.March, 20)
	txs := []models.Transaction{
		{Emissions: 5.5, Date: date(2024, time.March, 1)},
		{Emissions: 2.0, Date: date(2024, time.March, 31)},
		{Emissions: 9.9, Date: date(2024, time.February, 29)},
		{Emissions: 4.4, Date: date(2023, time.March, 15)},
	}

	// Only the two March 2024 transactions count; same month in an earlier
	// year does not.
	if got := MonthTotal(txs, now); got != 7.5 {
		t.Errorf("expected 7.5, got %v", got)
	}
}

func TestImpactLevel(t *testing.T) {
	if got := ImpactLevel(100.01); got != "High" {
		t.Errorf("expected High above threshold, got %q", got)
	}
	if got := ImpactLevel(100); got != "Low" {
		t.Errorf("expected Low at exactly the threshold, got %q", got)
	}
	if got := ImpactLevel(0); got != "Low" {
		t.Errorf("expected Low, got %q", got)
	}
}

func TestRiskLevel(t *testing.T) {
	if got := RiskLevel(2.38); got != "High" {
		t.Errorf("expected High, got %q", got)
	}
	if got := RiskLevel(1.21); got != "Medium" {
		t.Errorf("expected Medium, got %q", got)
	}
	if got := RiskLevel(0.11); got != "Low" {
		t.Errorf("expected Low, got %q", got)
	}
}

func TestByCategory(t *testing.T) {
	txs := []models.Transaction{
		{Amount: 500, Emissions: 55, Category: models.Category{Name: "Flights"}},
		{Amount: 300, Emissions: 60, Category: models.Category{Name: "Flights"}},
		{Amount: 100, Emissions: 1.1, Category: models.Category{Name: "Books"}},
	}

	insights := ByCategory(txs)
	if len(insights) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(insights))
	}

	// Ordered by summed emissions, highest first.
	if insights[0].Category != "Flights" {
		t.Errorf("expected Flights first, got %q", insights[0].Category)
	}
	if insights[0].CategoryEmissions != 115 {
		t.Errorf("expected 115, got %v", insights[0].CategoryEmissions)
	}
	if insights[0].TotalSpent != 800 {
		t.Errorf("expected 800, got %v", insights[0].TotalSpent)
	}
	if insights[0].OrderCount != 2 {
		t.Errorf("expected 2 orders, got %d", insights[0].OrderCount)
	}
	if insights[0].ImpactLevel != "High" {
		t.Errorf("expected High impact, got %q", insights[0].ImpactLevel)
	}
	if insights[1].ImpactLevel != "Low" {
		t.Errorf("expected Low impact, got %q", insights[1].ImpactLevel)
	}
}

func TestByCategoryOrderingIsNonIncreasing(t *testing.T) {
	txs := []models.Transaction{
		{Emissions: 3, Category: models.Category{Name: "A"}},
		{Emissions: 7, Category: models.Category{Name: "B"}},
		{Emissions: 7, Category: models.Category{Name: "C"}},
		{Emissions: 1, Category: models.Category{Name: "D"}},
	}

	insights := ByCategory(txs)
	for i := 1; i < len(insights); i++ {
		if insights[i].CategoryEmissions > insights[i-1].CategoryEmissions {
			t.Fatalf("row %d (%v) exceeds row %d (%v)",
				i, insights[i].CategoryEmissions, i-1, insights[i-1].CategoryEmissions)
		}
	}
}

func TestByMonth(t *testing.T) {
	txs := []models.Transaction{
		{Amount: 100, Emissions: 1.1, Date: date(2024, time.January, 5)},
		{Amount: 200, Emissions: 2.2, Date: date(2024, time.January, 25)},
		{Amount: 50, Emissions: 0.5, Date: date(2024, time.March, 15)},
		{Amount: 75, Emissions: 0.9, Date: date(2023, time.December, 31)},
	}

	insights := ByMonth(txs)
	if len(insights) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(insights))
	}

	// Newest month first.
	if insights[0].Month != "2024-03" || insights[1].Month != "2024-01" || insights[2].Month != "2023-12" {
		t.Errorf("unexpected month order: %v, %v, %v", insights[0].Month, insights[1].Month, insights[2].Month)
	}
	if insights[1].MonthlySpent != 300 {
		t.Errorf("expected 300 spent in 2024-01, got %v", insights[1].MonthlySpent)
	}
	if insights[1].MonthlyEmissions != 3.3 {
		t.Errorf("expected 3.3 emissions in 2024-01, got %v", insights[1].MonthlyEmissions)
	}
}
