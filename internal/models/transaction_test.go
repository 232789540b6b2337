package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestNewTransactionSetSortsByDate(t *testing.T) {
	set := NewTransactionSet([]Transaction{
		{Date: day(10), Description: "later"},
		{Date: day(1), Description: "earlier"},
		{Date: day(10), Description: "later-second"},
	})

	assert.Equal(t, "earlier", set.Transactions[0].Description)
	assert.Equal(t, "later", set.Transactions[1].Description)
	// stable sort keeps input order within the same date
	assert.Equal(t, "later-second", set.Transactions[2].Description)
}

func TestTotals(t *testing.T) {
	set := NewTransactionSet([]Transaction{
		{Date: day(1), Amount: decimal.NewFromInt(5000), IsExpense: false, NeedVsWant: LabelIncome},
		{Date: day(2), Amount: decimal.NewFromInt(1200), IsExpense: true, NeedVsWant: LabelNeed},
		{Date: day(3), Amount: decimal.NewFromInt(300), IsExpense: true, NeedVsWant: LabelWant},
	})

	assert.True(t, set.TotalIncome().Equal(decimal.NewFromInt(5000)))
	assert.True(t, set.TotalExpenses().Equal(decimal.NewFromInt(1500)))
	assert.True(t, set.TotalByLabel(LabelNeed).Equal(decimal.NewFromInt(1200)))
	assert.True(t, set.TotalByLabel(LabelWant).Equal(decimal.NewFromInt(300)))
	assert.Len(t, set.Expenses(), 2)
}

func TestDaySpan(t *testing.T) {
	empty := NewTransactionSet(nil)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.DaySpan())

	single := NewTransactionSet([]Transaction{{Date: day(5)}})
	assert.Equal(t, 0, single.DaySpan())

	span := NewTransactionSet([]Transaction{
		{Date: day(1)},
		{Date: day(15)},
	})
	assert.Equal(t, 14, span.DaySpan())
	assert.Equal(t, day(1), span.MinDate())
	assert.Equal(t, day(15), span.MaxDate())
}
