package analytics

import (
	"flexicoach/fincoach/internal/models"
)

const minForecastDays = 7

// PredictNextMonth projects next month's spending from the observed daily
// average, overall and per category.
func PredictNextMonth(set *models.TransactionSet) models.Forecast {
	if set.IsEmpty() {
		return models.Forecast{}
	}

	span := set.DaySpan()
	if span < minForecastDays {
		return models.Forecast{Message: "Need more data (at least 2 weeks)"}
	}

	total := toFloat(set.TotalExpenses())
	dailyAvg := total / float64(max(span, 1))

	categorySums := make(map[string]float64)
	for _, tx := range set.Transactions {
		if tx.IsExpense && tx.Category != "" {
			categorySums[tx.Category] += toFloat(tx.Amount)
		}
	}
	predictions := make(map[string]float64, len(categorySums))
	for category, sum := range categorySums {
		predictions[category] = round2(sum / float64(span) * 30)
	}

	confidence := "Low"
	if span > 30 {
		confidence = "Medium"
	}

	return models.Forecast{
		PredictedMonthly:    round2(dailyAvg * 30),
		DailyAverage:        round2(dailyAvg),
		CategoryPredictions: predictions,
		Confidence:          confidence,
	}
}
