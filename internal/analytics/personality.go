package analytics

import (
	"flexicoach/fincoach/internal/models"
	"flexicoach/fincoach/internal/stats"
)

const minPersonalityRows = 10

// Personality classifies the user into a spending persona from transaction
// variability, size distribution and frequency.
func Personality(set *models.TransactionSet) models.PersonalityReport {
	if set.Len() < minPersonalityRows {
		return models.PersonalityReport{
			Personality: "New User",
			Traits:      []string{},
		}
	}

	amounts := expenseAmounts(set)
	report := models.PersonalityReport{Traits: []string{}}
	if len(amounts) == 0 {
		report.Personality = "Balanced Spender"
		report.Traits = balancedTraits
		report.Advice = balancedAdvice
		return report
	}

	avg := stats.Mean(amounts)
	cv := stats.CoefficientOfVariation(amounts)

	largeCount := 0
	for _, a := range amounts {
		if a > avg*2 {
			largeCount++
		}
	}
	largeRatio := float64(largeCount) / float64(len(amounts))
	perDay := float64(len(amounts)) / float64(totalDays(set))

	switch {
	case cv < 0.5:
		report.Personality = "Consistent Planner"
		report.Traits = []string{
			"Predictable spending patterns",
			"Good budgeting discipline",
			"Low financial stress",
			"Steady transaction sizes",
		}
		report.Advice = "Your consistency is a strength. Consider automating savings to match."
	case cv > 1.5 && largeRatio > 0.2:
		report.Personality = "Spontaneous Spender"
		report.Traits = []string{
			"Irregular spending spikes",
			"Frequent large purchases",
			"Impulse-driven decisions",
			"Variable monthly totals",
		}
		report.Advice = "Try the 24-hour rule before large purchases to curb impulse spending."
	case perDay > 2:
		report.Personality = "Frequent Shopper"
		report.Traits = []string{
			"Many small transactions",
			"Daily spending habit",
			"Convenience-driven purchases",
			"Death by a thousand cuts risk",
		}
		report.Advice = "Batch your purchases weekly to reduce transaction frequency and impulse buys."
	default:
		report.Personality = "Balanced Spender"
		report.Traits = balancedTraits
		report.Advice = balancedAdvice
	}

	report.SpendingVariability = round2(cv)
	report.TransactionFrequency = round2(perDay)
	return report
}

var balancedTraits = []string{
	"Mix of planned and spontaneous spending",
	"Moderate transaction sizes",
	"Reasonable spending frequency",
	"Room for optimization",
}

const balancedAdvice = "You have balanced habits. Focus on growing your savings rate next."
