package analytics

import (
	"testing"

	"flexicoach/fincoach/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPeerComparisonBrackets(t *testing.T) {
	tests := []struct {
		name            string
		income          float64
		expectedBracket string
	}{
		{"low bracket", 20000, "0-30K/month"},
		{"mid bracket", 45000, "30-50K/month"},
		{"upper mid bracket", 60000, "50-75K/month"},
		{"top bracket", 90000, "75K+/month"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set := models.NewTransactionSet([]models.Transaction{
				tx(1, "salary", tc.income, false, models.CategoryIncome, models.LabelIncome),
				tx(2, "rent", 100, true, models.CategoryRent, models.LabelNeed),
			})
			report := PeerComparison(set)
			assert.Equal(t, tc.expectedBracket, report.IncomeBracket)
		})
	}
}

func TestPeerComparisonRanking(t *testing.T) {
	// 50% savings rate in the 0-30K bracket (12% peer avg) is top 15%
	set := models.NewTransactionSet([]models.Transaction{
		tx(1, "salary", 20000, false, models.CategoryIncome, models.LabelIncome),
		tx(2, "rent", 10000, true, models.CategoryRent, models.LabelNeed),
	})

	report := PeerComparison(set)
	assert.Equal(t, 50.0, report.YourSavingsRate)
	assert.Equal(t, 85, report.Percentile)
	assert.Equal(t, "Top 15%", report.Rank)
	assert.Contains(t, report.Insight, "more than peers")
}

func TestPeerComparisonBelowAverage(t *testing.T) {
	// zero savings is below every peer average
	set := models.NewTransactionSet([]models.Transaction{
		tx(1, "salary", 40000, false, models.CategoryIncome, models.LabelIncome),
		tx(2, "spend", 40000, true, models.CategoryOther, models.LabelWant),
	})

	report := PeerComparison(set)
	assert.Equal(t, 30, report.Percentile)
	assert.Equal(t, "Below Average", report.Rank)
	assert.Contains(t, report.Insight, "less than peers")
}
