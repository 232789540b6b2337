package analytics

import (
	"fmt"
	"time"

	"flexicoach/fincoach/internal/dateutils"
	"flexicoach/fincoach/internal/models"
)

const (
	minTriggerRows         = 10
	weekdaySpikeMultiplier = 1.3
	weekendSpikeMultiplier = 1.4
	impulseDayThreshold    = 4
	impulseMinDays         = 2
)

// DetectTriggers surfaces behavioral spending triggers: weekdays that run
// hot, weekend splurges and multi-transaction impulse days.
func DetectTriggers(set *models.TransactionSet) models.TriggerReport {
	report := models.TriggerReport{Triggers: []models.Trigger{}}
	if set.Len() < minTriggerRows {
		return report
	}

	sums := make(map[time.Weekday]float64)
	counts := make(map[time.Weekday]int)
	var overallSum float64
	var overallCount int
	perDay := make(map[time.Time]int)
	var weekendSum, weekdaySum float64
	var weekendCount, weekdayCount int

	for _, tx := range set.Transactions {
		if !tx.IsExpense {
			continue
		}
		amount := toFloat(tx.Amount)
		day := tx.Date.Weekday()
		sums[day] += amount
		counts[day]++
		overallSum += amount
		overallCount++
		perDay[dateutils.DayKey(tx.Date)]++
		if dateutils.IsWeekend(tx.Date) {
			weekendSum += amount
			weekendCount++
		} else {
			weekdaySum += amount
			weekdayCount++
		}
	}
	if overallCount == 0 {
		return report
	}
	overallAvg := overallSum / float64(overallCount)

	for _, day := range weekdayOrder {
		if counts[day] < 2 {
			continue
		}
		mean := sums[day] / float64(counts[day])
		if mean > overallAvg*weekdaySpikeMultiplier {
			report.Triggers = append(report.Triggers, models.Trigger{
				Type:           "High Spending Day",
				Trigger:        day.String(),
				Impact:         fmt.Sprintf("%.0f/transaction (30%% above average)", mean),
				Recommendation: fmt.Sprintf("Plan ahead for %ss - pack lunch or limit eating out", day.String()),
			})
		}
	}

	if weekendCount > 0 && weekdayCount > 0 {
		weekendAvg := weekendSum / float64(weekendCount)
		weekdayAvg := weekdaySum / float64(weekdayCount)
		if weekendAvg > weekdayAvg*weekendSpikeMultiplier {
			report.Triggers = append(report.Triggers, models.Trigger{
				Type:           "Weekend Splurge",
				Trigger:        "Weekends",
				Impact:         fmt.Sprintf("%.0f more per transaction", weekendAvg-weekdayAvg),
				Recommendation: "Set a weekend budget or plan free/low-cost activities",
			})
		}
	}

	impulseDays := 0
	for _, count := range perDay {
		if count >= impulseDayThreshold {
			impulseDays++
		}
	}
	if impulseDays >= impulseMinDays {
		report.Triggers = append(report.Triggers, models.Trigger{
			Type:           "Impulse Spending Pattern",
			Trigger:        "Multiple transactions per day",
			Impact:         fmt.Sprintf("%d days with 4+ transactions", impulseDays),
			Recommendation: "Use the 24-hour rule: wait before non-essential purchases",
		})
	}

	report.Total = len(report.Triggers)
	return report
}
