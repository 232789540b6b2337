package classifier

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"flexicoach/fincoach/internal/logging"
	"flexicoach/fincoach/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfer(t *testing.T) {
	c := New(nil, logging.NewMockLogger())

	tests := []struct {
		name          string
		description   string
		isExpense     bool
		wantCategory  string
		wantLabel     string
	}{
		{"income row", "SALARY MARCH", false, models.CategoryIncome, models.LabelIncome},
		{"food delivery", "SWIGGY ORDER 1234", true, models.CategoryFood, models.LabelWant},
		{"groceries", "DMART SUPERMARKET", true, models.CategoryFood, models.LabelNeed},
		{"rent keyword", "March RENT transfer", true, models.CategoryRent, models.LabelNeed},
		{"ride hailing", "UBER TRIP", true, models.CategoryTransport, models.LabelNeed},
		{"streaming", "NETFLIX.COM", true, models.CategoryEntertainment, models.LabelWant},
		{"utility", "Electricity Bill Payment", true, models.CategoryBills, models.LabelNeed},
		{"unknown falls to other/want", "XYZ 9981 POS", true, models.CategoryOther, models.LabelWant},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			category, label := c.Infer(tc.description, tc.isExpense)
			assert.Equal(t, tc.wantCategory, category)
			assert.Equal(t, tc.wantLabel, label)
		})
	}
}

func TestInferFirstRuleWins(t *testing.T) {
	c := New(nil, logging.NewMockLogger())

	// "loan" appears in the rent rule; earlier rules take precedence over
	// later keyword overlaps.
	category, label := c.Infer("home loan emi", true)
	assert.Equal(t, models.CategoryRent, category)
	assert.Equal(t, models.LabelNeed, label)
}

func TestClassifyDoesNotMutateInput(t *testing.T) {
	c := New(nil, logging.NewMockLogger())
	set := models.NewTransactionSet([]models.Transaction{
		{
			Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Description: "ZOMATO ONLINE",
			Amount:      decimal.NewFromInt(300),
			IsExpense:   true,
		},
	})

	labeled := c.Classify(set)

	assert.Empty(t, set.Transactions[0].Category)
	assert.Equal(t, models.CategoryFood, labeled.Transactions[0].Category)
	assert.Equal(t, models.LabelWant, labeled.Transactions[0].NeedVsWant)
}

func TestClassifyIsIdempotent(t *testing.T) {
	c := New(nil, logging.NewMockLogger())
	set := models.NewTransactionSet([]models.Transaction{
		{Description: "PVR CINEMAS", Amount: decimal.NewFromInt(600), IsExpense: true},
		{Description: "REFUND CASHBACK", Amount: decimal.NewFromInt(50), IsExpense: false},
	})

	once := c.Classify(set)
	twice := c.Classify(once)
	assert.Equal(t, once.Transactions, twice.Transactions)
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")

	content := `rules:
  - category: pets
    label: want
    keywords: [petstore, vet]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "pets", rules[0].Category)

	c := New(rules, logging.NewMockLogger())
	category, label := c.Infer("VET CLINIC", true)
	assert.Equal(t, "pets", category)
	assert.Equal(t, models.LabelWant, label)
}

func TestLoadRulesRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")

	content := `rules:
  - category: pets
    label: maybe
    keywords: [vet]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadRules(path)
	assert.Error(t, err)
}
