package models

import "time"

// Summary holds the headline figures of a budget plan. Monetary values are
// rounded to two decimal places for presentation.
type Summary struct {
	TotalIncome           float64 `json:"total_income"`
	TotalExpenses         float64 `json:"total_expenses"`
	TotalNeeds            float64 `json:"total_needs"`
	TotalWants            float64 `json:"total_wants"`
	SavingsPotential      float64 `json:"savings_potential"`
	SuggestedWeeklyBudget float64 `json:"suggested_weekly_budget"`
}

// CategoryAmount is one entry of the per-category expense breakdown.
type CategoryAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// WeeklyBucket is one point of the weekly spending series. WeekStart is the
// Monday of the ISO week, formatted as an ISO date.
type WeeklyBucket struct {
	WeekStart  string  `json:"week_start"`
	TotalSpent float64 `json:"total_spent"`
}

// BudgetPlan is the output of the budget aggregator.
type BudgetPlan struct {
	Summary      Summary          `json:"summary"`
	Categories   []CategoryAmount `json:"categories"`
	WeeklySeries []WeeklyBucket   `json:"weekly_series"`
	Flags        []string         `json:"flags"`
}

// OutlierTransaction describes an unusually large expense flagged by pattern
// detection.
type OutlierTransaction struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

// PatternReport summarizes weekday spending behaviour, spending streaks and
// outlier transactions.
type PatternReport struct {
	HighestSpendingDay string             `json:"highest_spending_day,omitempty"`
	LongestStreak      int                `json:"longest_spending_streak"`
	LargeTransactions  []OutlierTransaction `json:"large_transactions"`
	DayOfWeekPattern   map[string]float64 `json:"day_of_week_pattern,omitempty"`
}

// Forecast projects expenses 30 days ahead. When the observed span is too
// short, Message is set and the numeric fields are left at zero.
type Forecast struct {
	Message             string             `json:"message,omitempty"`
	PredictedMonthly    float64            `json:"predicted_monthly_expenses,omitempty"`
	DailyAverage        float64            `json:"daily_average,omitempty"`
	CategoryPredictions map[string]float64 `json:"category_predictions,omitempty"`
	Confidence          string             `json:"confidence,omitempty"`
}

// SplitPercents is a needs/wants/savings percentage triple.
type SplitPercents struct {
	Needs   float64 `json:"needs"`
	Wants   float64 `json:"wants"`
	Savings float64 `json:"savings"`
}

// BucketVerdicts holds the per-bucket verdict against the 50/30/20 rule.
type BucketVerdicts struct {
	Needs   string `json:"needs"`
	Wants   string `json:"wants"`
	Savings string `json:"savings"`
}

// BenchmarkReport compares the user's split to the 50/30/20 rule. With zero
// income only Message is populated.
type BenchmarkReport struct {
	Message    string         `json:"message,omitempty"`
	YourSplit  SplitPercents  `json:"your_split,omitempty"`
	IdealSplit SplitPercents  `json:"ideal_split,omitempty"`
	Comparison BucketVerdicts `json:"comparison,omitempty"`
}

// SavingsGoal is one personalized savings goal.
type SavingsGoal struct {
	Type        string  `json:"type"`
	Target      float64 `json:"target"`
	Current     float64 `json:"current,omitempty"`
	Description string  `json:"description,omitempty"`
	Timeline    string  `json:"timeline"`
	Priority    string  `json:"priority"`
}

// HealthReport is the weighted 0-100 financial health score.
type HealthReport struct {
	Score   int      `json:"score"`
	Rating  string   `json:"rating"`
	Factors []string `json:"factors"`
}

// MomentumReport compares the first and second half of the observed window.
type MomentumReport struct {
	Momentum           string  `json:"momentum"`
	Score              float64 `json:"score"`
	Message            string  `json:"message"`
	SpendingChange     float64 `json:"spending_change"`
	SavingsImprovement float64 `json:"savings_improvement"`
}

// Trigger describes one detected spending trigger.
type Trigger struct {
	Type           string `json:"type"`
	Trigger        string `json:"trigger"`
	Impact         string `json:"impact"`
	Recommendation string `json:"recommendation"`
}

// TriggerReport lists detected spending triggers.
type TriggerReport struct {
	Triggers []Trigger `json:"triggers"`
	Total    int       `json:"total_triggers"`
}

// Challenge is a generated gamified challenge definition. It doubles as the
// definition payload the challenge store accepts when a user starts one.
type Challenge struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Target      float64 `json:"target" yaml:"target"`
	Current     float64 `json:"current" yaml:"current"`
	Reward      string  `json:"reward" yaml:"reward"`
	Difficulty  string  `json:"difficulty" yaml:"difficulty"`
	Points      int     `json:"points" yaml:"points"`
}

// PersonalityReport classifies spending behaviour into one of a fixed set of
// personas.
type PersonalityReport struct {
	Personality          string   `json:"personality"`
	Traits               []string `json:"traits"`
	Advice               string   `json:"advice,omitempty"`
	SpendingVariability  float64  `json:"spending_variability,omitempty"`
	TransactionFrequency float64  `json:"transaction_frequency,omitempty"`
}

// PeerReport compares the user to a static income-bracket peer table.
type PeerReport struct {
	IncomeBracket      string  `json:"income_bracket"`
	YourSavingsRate    float64 `json:"your_savings_rate"`
	PeerAvgSavingsRate float64 `json:"peer_avg_savings_rate"`
	YourExpense        float64 `json:"your_monthly_expense"`
	PeerAvgExpense     float64 `json:"peer_avg_expense"`
	Percentile         int     `json:"percentile"`
	Rank               string  `json:"rank"`
	Insight            string  `json:"insight"`
}

// HabitsBreakdown holds the five sub-scores of the money habits score.
type HabitsBreakdown struct {
	Consistency       float64 `json:"consistency"`
	Mindfulness       float64 `json:"mindfulness"`
	Planning          float64 `json:"planning"`
	ImpulseControl    float64 `json:"impulse_control"`
	SavingsDiscipline float64 `json:"savings_discipline"`
}

// HabitsReport is the 0-100 money habits score with letter grade.
type HabitsReport struct {
	TotalScore float64         `json:"total_score"`
	MaxScore   int             `json:"max_score"`
	Breakdown  HabitsBreakdown `json:"breakdown"`
	Grade      string          `json:"grade"`
	Message    string          `json:"message"`
}

// Analytics bundles the result of every heuristic analyzer, keyed by module
// name in the JSON output.
type Analytics struct {
	Patterns     PatternReport     `json:"patterns"`
	Forecast     Forecast          `json:"forecast"`
	Benchmark    BenchmarkReport   `json:"benchmark"`
	SavingsGoals []SavingsGoal     `json:"savings_goals"`
	Health       HealthReport      `json:"health_score"`
	Momentum     MomentumReport    `json:"momentum"`
	Triggers     TriggerReport     `json:"spending_triggers"`
	Challenges   []Challenge       `json:"smart_challenges"`
	Personality  PersonalityReport `json:"personality"`
	Peers        PeerReport        `json:"peer_comparison"`
	Habits       HabitsReport      `json:"habits_score"`
}

// Report is the full result of one analysis invocation.
type Report struct {
	ID           string           `json:"id"`
	GeneratedAt  time.Time        `json:"generated_at"`
	Summary      Summary          `json:"summary"`
	Categories   []CategoryAmount `json:"categories"`
	WeeklySeries []WeeklyBucket   `json:"weekly_series"`
	Flags        []string         `json:"flags"`
	Analytics    Analytics        `json:"analytics"`
	DroppedRows  int              `json:"dropped_rows,omitempty"`
}
