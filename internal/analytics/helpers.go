package analytics

import (
	"math"
	"time"

	"flexicoach/fincoach/internal/models"

	"github.com/shopspring/decimal"
)

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// expenseAmounts returns the expense amounts in date order as floats.
func expenseAmounts(set *models.TransactionSet) []float64 {
	var out []float64
	for _, tx := range set.Transactions {
		if tx.IsExpense {
			out = append(out, toFloat(tx.Amount))
		}
	}
	return out
}

// dailyExpenseTotals sums expense amounts per calendar day.
func dailyExpenseTotals(set *models.TransactionSet) map[time.Time]float64 {
	totals := make(map[time.Time]float64)
	for _, tx := range set.Transactions {
		if !tx.IsExpense {
			continue
		}
		day := time.Date(tx.Date.Year(), tx.Date.Month(), tx.Date.Day(), 0, 0, 0, 0, time.UTC)
		totals[day] += toFloat(tx.Amount)
	}
	return totals
}

// totalDays is the inclusive day count of the set's date range.
func totalDays(set *models.TransactionSet) int {
	return set.DaySpan() + 1
}

// weekdayOrder fixes Monday-first iteration so module output is
// deterministic across runs.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}
