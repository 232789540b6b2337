package analytics

import (
	"fmt"

	"flexicoach/fincoach/internal/models"
	"flexicoach/fincoach/internal/stats"
)

const minConsistencyExpenses = 7

// HealthScore aggregates four weighted factors into a 0-100 financial
// health score: savings rate (30), wants ratio (25), weekly spending
// consistency (20) and emergency buffer (25).
func HealthScore(set *models.TransactionSet) models.HealthReport {
	report := models.HealthReport{Factors: []string{}}
	if set.IsEmpty() {
		report.Rating = "No Data"
		return report
	}

	income := toFloat(set.TotalIncome())
	expenses := toFloat(set.TotalExpenses())
	score := 0

	if income > 0 {
		savingsRate := (income - expenses) / income * 100
		switch {
		case savingsRate >= 20:
			score += 30
			report.Factors = append(report.Factors, "Excellent savings rate")
		case savingsRate >= 10:
			score += 20
			report.Factors = append(report.Factors, "Good savings rate")
		case savingsRate >= 0:
			score += 10
			report.Factors = append(report.Factors, "Low savings rate")
		default:
			report.Factors = append(report.Factors, "Spending exceeds income")
		}
	}

	if expenses > 0 {
		wantsPct := toFloat(set.TotalByLabel(models.LabelWant)) / expenses * 100
		switch {
		case wantsPct <= 30:
			score += 25
			report.Factors = append(report.Factors, "Healthy wants-to-needs balance")
		case wantsPct <= 50:
			score += 15
			report.Factors = append(report.Factors, "Moderate discretionary spending")
		default:
			score += 5
			report.Factors = append(report.Factors, "High discretionary spending")
		}
	}

	score += consistencyFactor(set, &report.Factors)

	span := set.DaySpan()
	months := float64(span) / 30
	if months < 1 {
		months = 1
	}
	monthlyExpenses := expenses / months
	if monthlyExpenses > 0 {
		buffer := (income - expenses) / monthlyExpenses
		switch {
		case buffer >= 3:
			score += 25
			report.Factors = append(report.Factors, "Strong emergency buffer")
		case buffer >= 1:
			score += 15
			report.Factors = append(report.Factors, "Building emergency buffer")
		default:
			score += 5
			report.Factors = append(report.Factors, "Thin emergency buffer")
		}
	}

	report.Score = score
	switch {
	case score >= 80:
		report.Rating = "Excellent"
	case score >= 60:
		report.Rating = "Good"
	case score >= 40:
		report.Rating = "Fair"
	default:
		report.Rating = "Needs Improvement"
	}
	return report
}

// consistencyFactor scores week-to-week spending stability. Fewer than
// eight expense rows cannot support a meaningful variability estimate.
func consistencyFactor(set *models.TransactionSet, factors *[]string) int {
	type isoWeek struct{ year, week int }
	weekly := make(map[isoWeek]float64)
	expenseRows := 0
	for _, tx := range set.Transactions {
		if !tx.IsExpense {
			continue
		}
		expenseRows++
		y, w := tx.Date.ISOWeek()
		weekly[isoWeek{y, w}] += toFloat(tx.Amount)
	}
	if expenseRows <= minConsistencyExpenses {
		return 0
	}

	totals := make([]float64, 0, len(weekly))
	for _, sum := range weekly {
		totals = append(totals, sum)
	}
	cv := stats.CoefficientOfVariation(totals)
	switch {
	case cv < 0.3:
		*factors = append(*factors, "Very consistent weekly spending")
		return 20
	case cv < 0.6:
		*factors = append(*factors, fmt.Sprintf("Fairly consistent weekly spending (cv %.2f)", cv))
		return 10
	default:
		*factors = append(*factors, "Volatile weekly spending")
		return 0
	}
}
