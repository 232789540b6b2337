package analytics

import (
	"fmt"
	"math"

	"flexicoach/fincoach/internal/models"
)

// peerBracket holds anonymized cohort statistics for one income band.
type peerBracket struct {
	ceiling        float64
	label          string
	avgSavingsRate float64
	avgExpense     float64
}

// Cohort figures are static reference data, ordered by ceiling.
var peerBrackets = []peerBracket{
	{30000, "0-30K/month", 12, 25000},
	{50000, "30-50K/month", 18, 38000},
	{75000, "50-75K/month", 22, 55000},
	{math.Inf(1), "75K+/month", 28, 70000},
}

// PeerComparison places the user's savings rate against the cohort in the
// same income bracket.
func PeerComparison(set *models.TransactionSet) models.PeerReport {
	income := toFloat(set.TotalIncome())
	expenses := toFloat(set.TotalExpenses())

	var savingsRate float64
	if income > 0 {
		savingsRate = (income - expenses) / income * 100
	}

	bracket := peerBrackets[len(peerBrackets)-1]
	for _, b := range peerBrackets {
		if income < b.ceiling {
			bracket = b
			break
		}
	}

	var percentile int
	var rank string
	switch {
	case savingsRate > bracket.avgSavingsRate*1.3:
		percentile, rank = 85, "Top 15%"
	case savingsRate > bracket.avgSavingsRate*1.1:
		percentile, rank = 70, "Top 30%"
	case savingsRate > bracket.avgSavingsRate*0.9:
		percentile, rank = 50, "Average"
	default:
		percentile, rank = 30, "Below Average"
	}

	diff := savingsRate - bracket.avgSavingsRate
	direction := "more"
	if diff < 0 {
		direction = "less"
	}
	insight := fmt.Sprintf("You're saving %.1f%% %s than peers in your bracket", math.Abs(diff), direction)

	return models.PeerReport{
		IncomeBracket:      bracket.label,
		YourSavingsRate:    round1(savingsRate),
		PeerAvgSavingsRate: bracket.avgSavingsRate,
		YourExpense:        round2(expenses),
		PeerAvgExpense:     bracket.avgExpense,
		Percentile:         percentile,
		Rank:               rank,
		Insight:            insight,
	}
}
