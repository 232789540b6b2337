package analytics

import (
	"testing"
	"time"

	"flexicoach/fincoach/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPredictNextMonthNeedsTwoWeeks(t *testing.T) {
	set := models.NewTransactionSet([]models.Transaction{
		tx(1, "a", 100, true, models.CategoryFood, models.LabelNeed),
		tx(6, "b", 100, true, models.CategoryFood, models.LabelNeed),
	})

	forecast := PredictNextMonth(set)
	assert.Equal(t, "Need more data (at least 2 weeks)", forecast.Message)
	assert.Zero(t, forecast.PredictedMonthly)
}

func TestPredictNextMonthProjection(t *testing.T) {
	// 300 spent over a 30-day span: 10/day, 300/month
	set := models.NewTransactionSet([]models.Transaction{
		tx(1, "a", 150, true, models.CategoryFood, models.LabelNeed),
		tx(31, "b", 150, true, models.CategoryTransport, models.LabelNeed),
	})

	forecast := PredictNextMonth(set)
	assert.Empty(t, forecast.Message)
	assert.Equal(t, 10.0, forecast.DailyAverage)
	assert.Equal(t, 300.0, forecast.PredictedMonthly)
	assert.Equal(t, "Low", forecast.Confidence)
	assert.Equal(t, 150.0, forecast.CategoryPredictions[models.CategoryFood])
}

func TestPredictNextMonthConfidence(t *testing.T) {
	txs := []models.Transaction{
		txOn(date(2024, time.March, 1), "a", 100, true, models.CategoryFood, models.LabelNeed),
		txOn(date(2024, time.April, 5), "b", 100, true, models.CategoryFood, models.LabelNeed),
	}

	forecast := PredictNextMonth(models.NewTransactionSet(txs))
	assert.Equal(t, "Medium", forecast.Confidence)
}
