// Package models provides the data structures shared across the analysis pipeline.
package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Need-vs-want labels assigned by the classifier.
const (
	LabelNeed   = "need"
	LabelWant   = "want"
	LabelIncome = "income"
)

// Spending categories assigned by the classifier.
const (
	CategoryRent          = "rent"
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryBills         = "bills"
	CategoryHealth        = "health"
	CategoryEntertainment = "entertainment"
	CategoryShopping      = "shopping"
	CategoryEducation     = "education"
	CategoryIncome        = "income"
	CategoryOther         = "other"
)

// Transaction is the canonical form of a single statement row after
// normalization. Amount is always a strictly positive magnitude; direction is
// carried only by IsExpense.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	IsExpense   bool            `json:"is_expense"`
	Category    string          `json:"category,omitempty"`
	NeedVsWant  string          `json:"need_vs_want,omitempty"`
}

// TransactionSet is an ordered sequence of transactions, ascending by date.
// It is built once per analysis invocation and treated as immutable afterwards.
type TransactionSet struct {
	Transactions []Transaction
}

// NewTransactionSet builds a set from the given transactions, sorted ascending
// by date. The sort is stable so rows sharing a date keep their input order.
func NewTransactionSet(txs []Transaction) *TransactionSet {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return &TransactionSet{Transactions: sorted}
}

// Len returns the number of transactions in the set.
func (s *TransactionSet) Len() int {
	return len(s.Transactions)
}

// IsEmpty reports whether the set contains no transactions.
func (s *TransactionSet) IsEmpty() bool {
	return len(s.Transactions) == 0
}

// Expenses returns the expense transactions in date order.
func (s *TransactionSet) Expenses() []Transaction {
	var out []Transaction
	for _, tx := range s.Transactions {
		if tx.IsExpense {
			out = append(out, tx)
		}
	}
	return out
}

// TotalIncome sums the amounts of all non-expense transactions.
func (s *TransactionSet) TotalIncome() decimal.Decimal {
	total := decimal.Zero
	for _, tx := range s.Transactions {
		if !tx.IsExpense {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// TotalExpenses sums the amounts of all expense transactions.
func (s *TransactionSet) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, tx := range s.Transactions {
		if tx.IsExpense {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// TotalByLabel sums the amounts of transactions carrying the given
// need-vs-want label.
func (s *TransactionSet) TotalByLabel(label string) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range s.Transactions {
		if tx.NeedVsWant == label {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// MinDate returns the earliest transaction date, or the zero time for an
// empty set.
func (s *TransactionSet) MinDate() time.Time {
	if s.IsEmpty() {
		return time.Time{}
	}
	return s.Transactions[0].Date
}

// MaxDate returns the latest transaction date, or the zero time for an
// empty set.
func (s *TransactionSet) MaxDate() time.Time {
	if s.IsEmpty() {
		return time.Time{}
	}
	return s.Transactions[len(s.Transactions)-1].Date
}

// DaySpan returns the number of days between the earliest and latest
// transaction dates. A single-day set has a span of zero.
func (s *TransactionSet) DaySpan() int {
	if s.IsEmpty() {
		return 0
	}
	return int(s.MaxDate().Sub(s.MinDate()).Hours() / 24)
}
