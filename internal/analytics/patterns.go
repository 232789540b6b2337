package analytics

import (
	"time"

	"flexicoach/fincoach/internal/dateutils"
	"flexicoach/fincoach/internal/models"
	"flexicoach/fincoach/internal/stats"
)

const (
	outlierMinExpenses = 5
	outlierHeadSize    = 5
	descriptionMaxLen  = 50
)

// DetectPatterns finds the dominant spending weekday, the longest streak of
// consecutive spending days and statistical outlier transactions.
func DetectPatterns(set *models.TransactionSet) models.PatternReport {
	report := models.PatternReport{
		LargeTransactions: []models.OutlierTransaction{},
		DayOfWeekPattern:  map[string]float64{},
	}
	if set.IsEmpty() {
		return report
	}

	daySums := make(map[time.Weekday]float64)
	var expenses []models.Transaction
	for _, tx := range set.Transactions {
		if tx.IsExpense {
			expenses = append(expenses, tx)
			daySums[tx.Date.Weekday()] += toFloat(tx.Amount)
		}
	}

	var best time.Weekday
	bestSum := -1.0
	for _, day := range weekdayOrder {
		sum, ok := daySums[day]
		if !ok {
			continue
		}
		report.DayOfWeekPattern[day.String()] = round2(sum)
		if sum > bestSum {
			best, bestSum = day, sum
		}
	}
	if bestSum >= 0 {
		report.HighestSpendingDay = best.String()
	}

	report.LongestStreak = longestStreak(expenses)
	report.LargeTransactions = outliers(expenses)
	return report
}

// longestStreak counts the maximum run of consecutive calendar days that
// each saw at least one expense.
func longestStreak(expenses []models.Transaction) int {
	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, tx := range expenses {
		day := dateutils.DayKey(tx.Date)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	// expenses arrive in date order, so days is already sorted
	streak, longest := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			streak++
			if streak > longest {
				longest = streak
			}
		} else {
			streak = 1
		}
	}
	return longest
}

// outliers returns up to five expenses above Q75 + 1.5*IQR, earliest first.
// Too few expenses make the quartiles meaningless, so small sets yield none.
func outliers(expenses []models.Transaction) []models.OutlierTransaction {
	out := []models.OutlierTransaction{}
	if len(expenses) <= outlierMinExpenses {
		return out
	}

	amounts := make([]float64, len(expenses))
	for i, tx := range expenses {
		amounts[i] = toFloat(tx.Amount)
	}
	q25 := stats.Quantile(amounts, 0.25)
	q75 := stats.Quantile(amounts, 0.75)
	threshold := q75 + 1.5*(q75-q25)

	for _, tx := range expenses {
		if toFloat(tx.Amount) <= threshold {
			continue
		}
		desc := tx.Description
		if len(desc) > descriptionMaxLen {
			desc = desc[:descriptionMaxLen]
		}
		out = append(out, models.OutlierTransaction{
			Date:        dateutils.ToISODate(tx.Date),
			Description: desc,
			Amount:      round2(toFloat(tx.Amount)),
			Category:    tx.Category,
		})
		if len(out) == outlierHeadSize {
			break
		}
	}
	return out
}
