// Package budget computes the headline budget plan from a labeled
// transaction set: income/expense/needs/wants totals, a suggested weekly
// budget, the per-category breakdown, the weekly spending series and a set
// of rule-based insight flags.
package budget

import (
	"fmt"
	"sort"

	"flexicoach/fincoach/internal/apperror"
	"flexicoach/fincoach/internal/dateutils"
	"flexicoach/fincoach/internal/logging"
	"flexicoach/fincoach/internal/models"
	"flexicoach/fincoach/internal/stats"

	"github.com/shopspring/decimal"
)

// Flag thresholds, expressed as ratios of the relevant total.
const (
	wantsHighRatio        = 0.50
	wantsLowRatio         = 0.20
	concentrationRatio    = 0.40
	weeklyVolatilityLimit = 0.5
)

// Plan aggregates a labeled TransactionSet into a BudgetPlan. It fails with
// an EmptyDatasetError when the set is empty.
func Plan(set *models.TransactionSet, logger logging.Logger) (models.BudgetPlan, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if set == nil || set.IsEmpty() {
		return models.BudgetPlan{}, &apperror.EmptyDatasetError{Stage: "budget"}
	}

	totalIncome := set.TotalIncome()
	totalExpenses := set.TotalExpenses()
	totalNeeds := set.TotalByLabel(models.LabelNeed)
	totalWants := set.TotalByLabel(models.LabelWant)
	savings := totalIncome.Sub(totalExpenses)

	daySpan := set.DaySpan()
	numWeeks := float64(daySpan) / 7
	if numWeeks < 1 {
		numWeeks = 1
	}
	weeklyBudget := totalExpenses.Div(decimal.NewFromFloat(numWeeks))

	categories := categoryBreakdown(set)
	weekly := weeklySeries(set)
	flags := buildFlags(flagInputs{
		income:     totalIncome,
		expenses:   totalExpenses,
		wants:      totalWants,
		savings:    savings,
		daySpan:    daySpan,
		categories: categories,
		weekly:     weekly,
	})

	logger.Debug("Budget plan generated",
		logging.Field{Key: "categories", Value: len(categories)},
		logging.Field{Key: "weeks", Value: len(weekly)},
		logging.Field{Key: "flags", Value: len(flags)})

	return models.BudgetPlan{
		Summary: models.Summary{
			TotalIncome:           round2(totalIncome),
			TotalExpenses:         round2(totalExpenses),
			TotalNeeds:            round2(totalNeeds),
			TotalWants:            round2(totalWants),
			SavingsPotential:      round2(savings),
			SuggestedWeeklyBudget: round2(weeklyBudget),
		},
		Categories:   categories,
		WeeklySeries: weekly,
		Flags:        flags,
	}, nil
}

// categoryBreakdown totals expenses per category, sorted by amount
// descending with name as tie-break for stable output.
func categoryBreakdown(set *models.TransactionSet) []models.CategoryAmount {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range set.Transactions {
		if !tx.IsExpense {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	out := make([]models.CategoryAmount, 0, len(totals))
	for name, amount := range totals {
		out = append(out, models.CategoryAmount{Name: name, Amount: round2(amount)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// weeklySeries buckets expenses by the Monday of their week, ascending.
func weeklySeries(set *models.TransactionSet) []models.WeeklyBucket {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range set.Transactions {
		if !tx.IsExpense {
			continue
		}
		week := dateutils.ToISODate(dateutils.WeekStart(tx.Date))
		totals[week] = totals[week].Add(tx.Amount)
	}

	out := make([]models.WeeklyBucket, 0, len(totals))
	for week, amount := range totals {
		out = append(out, models.WeeklyBucket{WeekStart: week, TotalSpent: round2(amount)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].WeekStart < out[j].WeekStart
	})
	return out
}

type flagInputs struct {
	income     decimal.Decimal
	expenses   decimal.Decimal
	wants      decimal.Decimal
	savings    decimal.Decimal
	daySpan    int
	categories []models.CategoryAmount
	weekly     []models.WeeklyBucket
}

// buildFlags evaluates the insight rules in fixed order. Each rule is
// independent; a generic note is appended when none fire.
func buildFlags(in flagInputs) []string {
	var flags []string

	if in.savings.IsNegative() {
		flags = append(flags, fmt.Sprintf(
			"Warning: you're spending %.2f more than your income. Time to cut back!",
			round2(in.savings.Abs())))
	} else if in.savings.IsPositive() {
		rate := 0.0
		if in.income.IsPositive() {
			rate = in.savings.Div(in.income).InexactFloat64() * 100
		}
		flags = append(flags, fmt.Sprintf(
			"Great! You have %.2f savings potential (%.1f%% of income).",
			round2(in.savings), rate))
	}

	if in.expenses.IsPositive() {
		wantsPct := in.wants.Div(in.expenses).InexactFloat64()
		if wantsPct > wantsHighRatio {
			flags = append(flags, fmt.Sprintf(
				"%.1f%% of your spending is on wants. Consider reducing discretionary expenses.",
				wantsPct*100))
		} else if wantsPct < wantsLowRatio {
			flags = append(flags, fmt.Sprintf(
				"You're being disciplined: only %.1f%% on wants. Keep it up!",
				wantsPct*100))
		}
	}

	if len(in.categories) > 0 && in.expenses.IsPositive() {
		top := in.categories[0]
		concentration := top.Amount / in.expenses.InexactFloat64()
		if concentration > concentrationRatio {
			flags = append(flags, fmt.Sprintf(
				"High spending concentration: %.1f%% of expenses are in '%s'.",
				concentration*100, top.Name))
		}
	}

	if len(in.weekly) > 1 {
		totals := make([]float64, len(in.weekly))
		for i, bucket := range in.weekly {
			totals[i] = bucket.TotalSpent
		}
		if stats.CoefficientOfVariation(totals) > weeklyVolatilityLimit {
			flags = append(flags,
				"Your weekly spending varies significantly. Try to maintain more consistent spending patterns.")
		}
	}

	if in.income.IsPositive() && in.savings.IsPositive() {
		monthly := monthlyExpenses(in.expenses, in.daySpan)
		if in.savings.LessThan(monthly) {
			flags = append(flags, fmt.Sprintf(
				"Goal: build an emergency fund covering 3-6 months of expenses (%.2f - %.2f).",
				round2(monthly.Mul(decimal.NewFromInt(3))),
				round2(monthly.Mul(decimal.NewFromInt(6)))))
		}
	}

	if len(flags) == 0 {
		flags = append(flags, "Keep tracking your expenses regularly to identify more insights!")
	}

	return flags
}

// monthlyExpenses scales total expenses to a 30-day month. A zero span
// returns the total unscaled.
func monthlyExpenses(expenses decimal.Decimal, daySpan int) decimal.Decimal {
	if daySpan <= 0 {
		return expenses
	}
	return expenses.Mul(decimal.NewFromInt(30)).Div(decimal.NewFromInt(int64(daySpan)))
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
