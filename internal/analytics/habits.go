package analytics

import (
	"flexicoach/fincoach/internal/models"
	"flexicoach/fincoach/internal/stats"
)

const habitsMaxScore = 100

// HabitsScore grades money habits across five 20-point sub-scores:
// spending consistency, mindfulness, planning, impulse control and savings
// discipline.
func HabitsScore(set *models.TransactionSet) models.HabitsReport {
	report := models.HabitsReport{MaxScore: habitsMaxScore}
	if set.IsEmpty() {
		report.Grade = "D"
		report.Message = "Focus on building stronger habits"
		return report
	}

	amounts := expenseAmounts(set)
	days := float64(totalDays(set))

	consistency := 10.0
	if len(amounts) >= 7 {
		daily := dailyExpenseTotals(set)
		totals := make([]float64, 0, len(daily))
		for _, sum := range daily {
			totals = append(totals, sum)
		}
		cv := 1.0
		if m := stats.Mean(totals); m > 0 {
			cv = stats.StdDev(totals) / m
		}
		consistency = 20 - cv*10
		if consistency < 0 {
			consistency = 0
		}
	}

	perDay := float64(len(amounts)) / days
	mindfulness := 20.0
	if perDay > 1.5 {
		mindfulness = 20 - (perDay-1.5)*5
		if mindfulness < 0 {
			mindfulness = 0
		}
	}

	spendingDays := make(map[string]bool)
	for _, tx := range set.Transactions {
		if tx.IsExpense {
			spendingDays[tx.Date.Format("2006-01-02")] = true
		}
	}
	planning := (days - float64(len(spendingDays))) / days * 20

	median := stats.Median(amounts)
	largeCount := 0
	for _, a := range amounts {
		if a > median*3 {
			largeCount++
		}
	}
	impulse := 20 - float64(largeCount)*2
	if impulse < 0 {
		impulse = 0
	}

	income := toFloat(set.TotalIncome())
	expenses := toFloat(set.TotalExpenses())
	var savingsRate float64
	if income > 0 {
		savingsRate = (income - expenses) / income * 100
	}
	savings := savingsRate
	if savings > 20 {
		savings = 20
	}

	total := consistency + mindfulness + planning + impulse + savings
	report.TotalScore = round1(total)
	report.Breakdown = models.HabitsBreakdown{
		Consistency:       round1(consistency),
		Mindfulness:       round1(mindfulness),
		Planning:          round1(planning),
		ImpulseControl:    round1(impulse),
		SavingsDiscipline: round1(savings),
	}

	switch {
	case total >= 90:
		report.Grade = "A+"
	case total >= 80:
		report.Grade = "A"
	case total >= 70:
		report.Grade = "B"
	case total >= 60:
		report.Grade = "C"
	default:
		report.Grade = "D"
	}
	switch {
	case total >= 80:
		report.Message = "Excellent money habits!"
	case total >= 60:
		report.Message = "Good habits with room for improvement"
	default:
		report.Message = "Focus on building stronger habits"
	}
	return report
}
