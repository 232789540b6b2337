package analytics

import (
	"flexicoach/fincoach/internal/models"
)

// Ideal 50/30/20 split and the tolerance bands around it.
const (
	idealNeedsPct   = 50.0
	idealWantsPct   = 30.0
	idealSavingsPct = 20.0

	needsCeilingPct = 55.0
	wantsCeilingPct = 35.0
	savingsFloorPct = 15.0
)

// CompareToBenchmarks scores the needs/wants/savings split against the
// 50/30/20 budgeting rule.
func CompareToBenchmarks(set *models.TransactionSet) models.BenchmarkReport {
	if set.IsEmpty() {
		return models.BenchmarkReport{}
	}

	income := toFloat(set.TotalIncome())
	if income <= 0 {
		return models.BenchmarkReport{Message: "No income data available for comparison"}
	}

	needs := toFloat(set.TotalByLabel(models.LabelNeed))
	wants := toFloat(set.TotalByLabel(models.LabelWant))

	needsPct := needs / income * 100
	wantsPct := wants / income * 100
	savingsPct := (income - needs - wants) / income * 100

	needsVerdict := "High"
	if needsPct <= needsCeilingPct {
		needsVerdict = "Good"
	}
	wantsVerdict := "High"
	if wantsPct <= wantsCeilingPct {
		wantsVerdict = "Good"
	}
	savingsVerdict := "Low"
	if savingsPct >= savingsFloorPct {
		savingsVerdict = "Great"
	}

	return models.BenchmarkReport{
		YourSplit: models.SplitPercents{
			Needs:   round1(needsPct),
			Wants:   round1(wantsPct),
			Savings: round1(savingsPct),
		},
		IdealSplit: models.SplitPercents{
			Needs:   idealNeedsPct,
			Wants:   idealWantsPct,
			Savings: idealSavingsPct,
		},
		Comparison: models.BucketVerdicts{
			Needs:   needsVerdict,
			Wants:   wantsVerdict,
			Savings: savingsVerdict,
		},
	}
}
