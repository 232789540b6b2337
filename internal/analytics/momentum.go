package analytics

import (
	"flexicoach/fincoach/internal/models"
)

const minMomentumRows = 7

// Momentum compares the first and second half of the observation window to
// judge whether spending habits are improving.
func Momentum(set *models.TransactionSet) models.MomentumReport {
	if set.Len() < minMomentumRows {
		return models.MomentumReport{
			Momentum: "neutral",
			Score:    50,
			Message:  "Need more data to calculate momentum",
		}
	}

	mid := set.Len() / 2
	first := set.Transactions[:mid]
	second := set.Transactions[mid:]

	firstAvg := halfExpenseAverage(first)
	secondAvg := halfExpenseAverage(second)

	var spendingChange float64
	if firstAvg > 0 {
		spendingChange = (firstAvg - secondAvg) / firstAvg * 100
	}

	savingsImprovement := halfSavingsRate(second) - halfSavingsRate(first)

	score := 50 + spendingChange/2 + savingsImprovement/2
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	var momentum, message string
	switch {
	case score >= 70:
		momentum = "Strong Upward"
		message = "Excellent! Your spending habits are improving significantly."
	case score >= 55:
		momentum = "Positive"
		message = "Good progress! Keep maintaining these habits."
	case score >= 45:
		momentum = "Stable"
		message = "Your habits are stable. Look for improvement opportunities."
	default:
		momentum = "Needs Attention"
		message = "Time to review and adjust your spending patterns."
	}

	return models.MomentumReport{
		Momentum:           momentum,
		Score:              round1(score),
		Message:            message,
		SpendingChange:     round1(spendingChange),
		SavingsImprovement: round1(savingsImprovement),
	}
}

// halfExpenseAverage averages expense spend over all rows in the half, so
// income rows dilute the average rather than being excluded.
func halfExpenseAverage(txs []models.Transaction) float64 {
	if len(txs) == 0 {
		return 0
	}
	var sum float64
	for _, tx := range txs {
		if tx.IsExpense {
			sum += toFloat(tx.Amount)
		}
	}
	return sum / float64(len(txs))
}

func halfSavingsRate(txs []models.Transaction) float64 {
	var income, expenses float64
	for _, tx := range txs {
		if tx.IsExpense {
			expenses += toFloat(tx.Amount)
		} else {
			income += toFloat(tx.Amount)
		}
	}
	if income <= 0 {
		return 0
	}
	return (income - expenses) / income * 100
}
