package analytics

import (
	"testing"
	"time"

	"flexicoach/fincoach/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestHealthScoreEmptySet(t *testing.T) {
	report := HealthScore(models.NewTransactionSet(nil))
	assert.Zero(t, report.Score)
	assert.Equal(t, "No Data", report.Rating)
}

func TestHealthScorePerfect(t *testing.T) {
	// eight identical weekly need expenses, high savings rate, big buffer
	txs := []models.Transaction{
		txOn(date(2024, time.March, 4), "salary", 3000, false, models.CategoryIncome, models.LabelIncome),
	}
	for week := 0; week < 8; week++ {
		txs = append(txs, txOn(date(2024, time.March, 4).AddDate(0, 0, week*7),
			"groceries", 100, true, models.CategoryFood, models.LabelNeed))
	}

	report := HealthScore(models.NewTransactionSet(txs))
	assert.Equal(t, 100, report.Score)
	assert.Equal(t, "Excellent", report.Rating)
	assert.Contains(t, report.Factors, "Excellent savings rate")
	assert.Contains(t, report.Factors, "Very consistent weekly spending")
	assert.Contains(t, report.Factors, "Strong emergency buffer")
}

func TestHealthScoreOverspending(t *testing.T) {
	set := models.NewTransactionSet([]models.Transaction{
		tx(1, "salary", 1000, false, models.CategoryIncome, models.LabelIncome),
		tx(2, "spree", 2000, true, models.CategoryShopping, models.LabelWant),
	})

	report := HealthScore(set)
	assert.Contains(t, report.Factors, "Spending exceeds income")
	assert.Equal(t, "Needs Improvement", report.Rating)
}
