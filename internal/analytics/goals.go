package analytics

import (
	"flexicoach/fincoach/internal/models"
)

const (
	emergencyFundMonths   = 3
	wantsCutRatio         = 0.10
	eatingOutShareOfMonth = 0.15
	eatingOutCutRatio     = 0.30
)

// GenerateSavingsGoals proposes concrete savings goals sized from the
// observed spending.
func GenerateSavingsGoals(set *models.TransactionSet) []models.SavingsGoal {
	if set.IsEmpty() {
		return nil
	}

	income := toFloat(set.TotalIncome())
	expenses := toFloat(set.TotalExpenses())
	span := set.DaySpan()

	months := float64(span) / 30
	if months < 1 {
		months = 1
	}
	monthlyExpenses := expenses / months

	var goals []models.SavingsGoal

	emergencyTarget := monthlyExpenses * emergencyFundMonths
	currentSavings := income - expenses
	if currentSavings < emergencyTarget {
		if currentSavings < 0 {
			currentSavings = 0
		}
		goals = append(goals, models.SavingsGoal{
			Type:        "Emergency Fund",
			Target:      round2(emergencyTarget),
			Current:     round2(currentSavings),
			Description: "Build an emergency fund covering 3 months of expenses",
			Timeline:    "6-12 months",
			Priority:    "High",
		})
	}

	wants := toFloat(set.TotalByLabel(models.LabelWant))
	if wants > 0 {
		goals = append(goals, models.SavingsGoal{
			Type:        "Reduce Discretionary Spending",
			Target:      round2(wants * wantsCutRatio),
			Description: "Save by cutting wants by 10%",
			Timeline:    "1 month",
			Priority:    "Medium",
		})
	}

	var foodWant float64
	for _, tx := range set.Transactions {
		if tx.IsExpense && tx.Category == models.CategoryFood && tx.NeedVsWant == models.LabelWant {
			foodWant += toFloat(tx.Amount)
		}
	}
	if foodWant > monthlyExpenses*eatingOutShareOfMonth {
		goals = append(goals, models.SavingsGoal{
			Type:        "Cook More at Home",
			Target:      round2(foodWant * eatingOutCutRatio),
			Description: "Save 30% on eating out",
			Timeline:    "1 month",
			Priority:    "Medium",
		})
	}

	return goals
}
