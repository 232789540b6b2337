// Package classifier assigns a category and need-vs-want label to each
// transaction from its description alone. Classification is an ordered,
// case-insensitive keyword rule table: non-expense rows are always income,
// the first matching rule wins, and anything unmatched lands in "other" as a
// want so unclassified spend stays under scrutiny.
package classifier

import (
	"strings"

	"flexicoach/fincoach/internal/logging"
	"flexicoach/fincoach/internal/models"
)

// Classifier evaluates the rule table. It holds no mutable state and is safe
// for concurrent use.
type Classifier struct {
	rules  []Rule
	logger logging.Logger
}

// New creates a Classifier over the given rule table. A nil or empty rules
// slice selects the built-in defaults.
func New(rules []Rule, logger logging.Logger) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Classifier{rules: rules, logger: logger}
}

// Infer returns the (category, need-vs-want) pair for a single description.
// It is a pure function of its arguments.
func (c *Classifier) Infer(description string, isExpense bool) (string, string) {
	if !isExpense {
		return models.CategoryIncome, models.LabelIncome
	}

	lower := strings.ToLower(description)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Category, rule.Label
			}
		}
	}

	return models.CategoryOther, models.LabelWant
}

// Classify returns a new TransactionSet with category and need-vs-want
// labels filled in. The input set is not modified.
func (c *Classifier) Classify(set *models.TransactionSet) *models.TransactionSet {
	labeled := make([]models.Transaction, len(set.Transactions))
	for i, tx := range set.Transactions {
		labeled[i] = tx
		labeled[i].Category, labeled[i].NeedVsWant = c.Infer(tx.Description, tx.IsExpense)
	}

	c.logger.Debug("Classified transactions",
		logging.Field{Key: "count", Value: len(labeled)},
		logging.Field{Key: "rules", Value: len(c.rules)})

	// Input is already date-sorted, the copy preserves order.
	return &models.TransactionSet{Transactions: labeled}
}
