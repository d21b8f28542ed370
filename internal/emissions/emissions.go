// Package emissions contains the derivation and aggregation logic for
// carbon-footprint figures. Everything here is a pure function over
// in-memory transaction slices so the same code path serves both the
// PostgreSQL deployment and the in-memory test databases, and so the
// derived user aggregates can always be reproduced from the transaction
// log alone.
package emissions

import (
	"math"
	"sort"
	"time"

	"greenchain/internal/models"
)

// ImpactThreshold is the fixed cutoff above which a category's summed
// emissions are labeled "High" impact.
const ImpactThreshold = 100.0

// Risk-level cutoffs on the raw emission factor (kg CO2e per 100 USD),
// used by the dashboard's top-emitters view.
const (
	riskHighFactor   = 1.5
	riskMediumFactor = 0.75
)

// CategoryInsight is one row of the per-category aggregation view.
type CategoryInsight struct {
	Category          string  `json:"category"`
	TotalSpent        float64 `json:"total_spent"`
	CategoryEmissions float64 `json:"category_emissions"`
	OrderCount        int     `json:"order_count"`
	ImpactLevel       string  `json:"impact_level"`
}

// MonthlyInsight is one row of the per-month aggregation view.
type MonthlyInsight struct {
	Month            string  `json:"month"`
	MonthlySpent     float64 `json:"monthly_spent"`
	MonthlyEmissions float64 `json:"monthly_emissions"`
}

// Round2 rounds to two decimal places, matching the DECIMAL(12,2) storage
// precision of the emission columns.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Derive computes the emissions for a purchase: amount in USD times the
// industry factor (kg CO2e per 100 USD spent).
func Derive(amount, factor float64) float64 {
	return Round2(amount * factor / 100)
}

// Total sums the stored emissions of all transactions.
func Total(txs []models.Transaction) float64 {
	var sum float64
	for _, tx := range txs {
		sum += tx.Emissions
	}
	return Round2(sum)
}

// MonthTotal sums the emissions of transactions dated in the calendar
// month containing now. The figure is month-relative: the same transaction
// set yields a different result once the clock rolls into a new month.
func MonthTotal(txs []models.Transaction, now time.Time) float64 {
	year, month, _ := now.Date()
	var sum float64
	for _, tx := range txs {
		ty, tm, _ := tx.Date.Date()
		if ty == year && tm == month {
			sum += tx.Emissions
		}
	}
	return Round2(sum)
}

// ImpactLevel labels a category's summed emissions. The threshold is fixed,
// not configurable.
func ImpactLevel(categoryEmissions float64) string {
	if categoryEmissions > ImpactThreshold {
		return "High"
	}
	return "Low"
}

// RiskLevel labels a raw emission factor for the dashboard view.
func RiskLevel(factor float64) string {
	switch {
	case factor > riskHighFactor:
		return "High"
	case factor > riskMediumFactor:
		return "Medium"
	default:
		return "Low"
	}
}

// ByCategory groups transactions by category name and returns insight rows
// ordered by summed emissions, highest first. Transactions must have their
// Category association populated; rows with an unresolvable category are
// grouped under their stored emissions unchanged.
func ByCategory(txs []models.Transaction) []CategoryInsight {
	grouped := make(map[string]*CategoryInsight)
	for _, tx := range txs {
		name := tx.Category.Name
		row, ok := grouped[name]
		if !ok {
			row = &CategoryInsight{Category: name}
			grouped[name] = row
		}
		row.TotalSpent += tx.Amount
		row.CategoryEmissions += tx.Emissions
		row.OrderCount++
	}

	insights := make([]CategoryInsight, 0, len(grouped))
	for _, row := range grouped {
		row.TotalSpent = Round2(row.TotalSpent)
		row.CategoryEmissions = Round2(row.CategoryEmissions)
		row.ImpactLevel = ImpactLevel(row.CategoryEmissions)
		insights = append(insights, *row)
	}

	sort.SliceStable(insights, func(i, j int) bool {
		if insights[i].CategoryEmissions != insights[j].CategoryEmissions {
			return insights[i].CategoryEmissions > insights[j].CategoryEmissions
		}
		return insights[i].Category < insights[j].Category
	})
	return insights
}

// ByMonth groups transactions by the calendar month of their date
// ("YYYY-MM") and returns rows ordered by month, newest first.
func ByMonth(txs []models.Transaction) []MonthlyInsight {
	grouped := make(map[string]*MonthlyInsight)
	for _, tx := range txs {
		month := tx.Date.Format("2006-01")
		row, ok := grouped[month]
		if !ok {
			row = &MonthlyInsight{Month: month}
			grouped[month] = row
		}
		row.MonthlySpent += tx.Amount
		row.MonthlyEmissions += tx.Emissions
	}

	insights := make([]MonthlyInsight, 0, len(grouped))
	for _, row := range grouped {
		row.MonthlySpent = Round2(row.MonthlySpent)
		row.MonthlyEmissions = Round2(row.MonthlyEmissions)
		insights = append(insights, *row)
	}

	sort.Slice(insights, func(i, j int) bool {
		return insights[i].Month > insights[j].Month
	})
	return insights
}
