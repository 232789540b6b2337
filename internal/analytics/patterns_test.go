package analytics

import (
	"testing"

	"flexicoach/fincoach/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPatternsEmptySet(t *testing.T) {
	report := DetectPatterns(models.NewTransactionSet(nil))
	assert.Empty(t, report.HighestSpendingDay)
	assert.Zero(t, report.LongestStreak)
	assert.Empty(t, report.LargeTransactions)
}

func TestDetectPatternsHighestDayAndStreak(t *testing.T) {
	// 2024-03-04 is a Monday; days 4,5,6 form a three-day streak
	set := models.NewTransactionSet([]models.Transaction{
		tx(4, "a", 100, true, models.CategoryOther, models.LabelWant),
		tx(5, "b", 50, true, models.CategoryOther, models.LabelWant),
		tx(6, "c", 50, true, models.CategoryOther, models.LabelWant),
		tx(9, "weekend splurge", 500, true, models.CategoryOther, models.LabelWant),
	})

	report := DetectPatterns(set)
	assert.Equal(t, "Saturday", report.HighestSpendingDay)
	assert.Equal(t, 3, report.LongestStreak)
	assert.Equal(t, 500.0, report.DayOfWeekPattern["Saturday"])
	assert.Equal(t, 100.0, report.DayOfWeekPattern["Monday"])
}

func TestDetectPatternsOutliers(t *testing.T) {
	// five small expenses are not enough for quartile-based outliers
	small := []models.Transaction{
		tx(1, "a", 100, true, "", ""),
		tx(2, "b", 110, true, "", ""),
		tx(3, "c", 95, true, "", ""),
		tx(4, "d", 105, true, "", ""),
		tx(5, "e", 102, true, "", ""),
	}
	report := DetectPatterns(models.NewTransactionSet(small))
	assert.Empty(t, report.LargeTransactions)

	// a sixth row far above the IQR fence is flagged
	withSpike := append(small, tx(6, "laptop purchase at electronics store with a very long description text", 5000, true, models.CategoryShopping, models.LabelWant))
	report = DetectPatterns(models.NewTransactionSet(withSpike))
	require.Len(t, report.LargeTransactions, 1)

	outlier := report.LargeTransactions[0]
	assert.Equal(t, "2024-03-06", outlier.Date)
	assert.Equal(t, 5000.0, outlier.Amount)
	assert.Len(t, outlier.Description, 50)
}
