package analytics

import (
	"testing"

	"flexicoach/fincoach/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMomentumNeedsData(t *testing.T) {
	set := models.NewTransactionSet([]models.Transaction{
		tx(1, "a", 100, true, "", ""),
		tx(2, "b", 100, true, "", ""),
		tx(3, "c", 100, true, "", ""),
	})

	report := Momentum(set)
	assert.Equal(t, "neutral", report.Momentum)
	assert.Equal(t, 50.0, report.Score)
	assert.Equal(t, "Need more data to calculate momentum", report.Message)
}

func TestMomentumImprovingSpend(t *testing.T) {
	// first half spends heavily, second half cools down
	set := models.NewTransactionSet([]models.Transaction{
		tx(1, "a", 500, true, "", ""),
		tx(2, "b", 500, true, "", ""),
		tx(3, "c", 500, true, "", ""),
		tx(4, "d", 500, true, "", ""),
		tx(5, "e", 100, true, "", ""),
		tx(6, "f", 100, true, "", ""),
		tx(7, "g", 100, true, "", ""),
		tx(8, "h", 100, true, "", ""),
	})

	report := Momentum(set)
	assert.Equal(t, 80.0, report.SpendingChange)
	assert.GreaterOrEqual(t, report.Score, 70.0)
	assert.Equal(t, "Strong Upward", report.Momentum)
}

func TestMomentumStable(t *testing.T) {
	var txs []models.Transaction
	for d := 1; d <= 8; d++ {
		txs = append(txs, tx(d, "steady", 200, true, "", ""))
	}

	report := Momentum(models.NewTransactionSet(txs))
	assert.Equal(t, "Stable", report.Momentum)
	assert.Equal(t, 50.0, report.Score)
	assert.Zero(t, report.SpendingChange)
}

func TestMomentumScoreClamped(t *testing.T) {
	// second half explodes, score cannot go below zero
	set := models.NewTransactionSet([]models.Transaction{
		tx(1, "a", 10, true, "", ""),
		tx(2, "b", 10, true, "", ""),
		tx(3, "c", 10, true, "", ""),
		tx(4, "d", 10, true, "", ""),
		tx(5, "e", 5000, true, "", ""),
		tx(6, "f", 5000, true, "", ""),
		tx(7, "g", 5000, true, "", ""),
		tx(8, "h", 5000, true, "", ""),
	})

	report := Momentum(set)
	assert.Equal(t, 0.0, report.Score)
	assert.Equal(t, "Needs Attention", report.Momentum)
}
