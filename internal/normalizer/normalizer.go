// Package normalizer maps arbitrarily-shaped tabular exports into the
// canonical transaction schema. Column names are uncontrolled: each required
// field is resolved against a list of accepted aliases, amounts are cleaned
// of currency notation, and rows whose date or amount cannot be parsed are
// dropped with a warning.
package normalizer

import (
	"regexp"
	"strings"
	"time"

	"flexicoach/fincoach/internal/apperror"
	"flexicoach/fincoach/internal/dateutils"
	"flexicoach/fincoach/internal/logging"
	"flexicoach/fincoach/internal/models"

	"github.com/shopspring/decimal"
)

// Accepted column aliases per logical field, in match priority order.
var (
	dateAliases = []string{
		"date", "transaction_date", "txn_date", "trans_date",
		"posting_date", "value_date", "timestamp",
	}
	descriptionAliases = []string{
		"description", "narration", "particulars", "details",
		"transaction_details", "remarks", "memo",
	}
	amountAliases = []string{
		"amount", "transaction_amount", "value", "debit",
		"credit", "txn_amount",
	}
	debitAliases  = []string{"debit", "debit_amount", "withdrawal"}
	creditAliases = []string{"credit", "credit_amount", "deposit"}
)

// Keywords that mark a row as income when no structural direction signal
// exists.
var incomeKeywords = []string{
	"salary", "credit", "deposit", "refund", "cashback", "interest earned",
}

var columnNameRe = regexp.MustCompile(`[^a-z0-9]+`)

// Result reports non-fatal outcomes of a normalization run.
type Result struct {
	TotalRows   int
	DroppedRows int
}

// rawRow is one row after field resolution but before direction inference.
// Amount keeps its original sign until direction has been decided.
type rawRow struct {
	date     time.Time
	desc     string
	amount   decimal.Decimal
	debitRaw string
}

// Normalize converts uncontrolled tabular rows into a canonical
// TransactionSet. It fails with a SchemaError when a required column cannot
// be resolved and with an EmptyDatasetError when no valid rows survive
// cleaning.
func Normalize(rows []map[string]string, logger logging.Logger) (*models.TransactionSet, Result, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	result := Result{TotalRows: len(rows)}
	if len(rows) == 0 {
		return nil, result, &apperror.EmptyDatasetError{Stage: "normalize"}
	}

	columns := columnIndex(rows[0])

	dateCol, ok := resolveColumn(columns, dateAliases)
	if !ok {
		return nil, result, &apperror.SchemaError{Field: "date", Aliases: dateAliases}
	}
	descCol, ok := resolveColumn(columns, descriptionAliases)
	if !ok {
		return nil, result, &apperror.SchemaError{Field: "description", Aliases: descriptionAliases}
	}
	amountCol, ok := resolveColumn(columns, amountAliases)
	if !ok {
		return nil, result, &apperror.SchemaError{Field: "amount", Aliases: amountAliases}
	}

	debitCol, hasDebit := resolveColumn(columns, debitAliases)
	creditCol, hasCredit := resolveColumn(columns, creditAliases)
	dualColumn := hasDebit && hasCredit && debitCol != creditCol

	var valid []rawRow
	for _, row := range rows {
		date, err := dateutils.ParseDate(row[dateCol])
		if err != nil {
			result.DroppedRows++
			continue
		}
		amount, err := ParseAmount(row[amountCol])
		if err != nil || amount.IsZero() {
			result.DroppedRows++
			continue
		}
		valid = append(valid, rawRow{
			date:     date,
			desc:     strings.TrimSpace(row[descCol]),
			amount:   amount,
			debitRaw: row[debitCol],
		})
	}

	if result.DroppedRows > 0 {
		logger.Warn("Dropped rows with invalid date or amount",
			logging.Field{Key: "dropped", Value: result.DroppedRows},
			logging.Field{Key: "total", Value: result.TotalRows})
	}

	if len(valid) == 0 {
		return nil, result, &apperror.EmptyDatasetError{Stage: "normalize", TotalRows: result.TotalRows}
	}

	txs := inferDirection(valid, dualColumn)

	logger.Info("Normalized transactions",
		logging.Field{Key: "count", Value: len(txs)},
		logging.Field{Key: "dual_column", Value: dualColumn})

	return models.NewTransactionSet(txs), result, nil
}

// inferDirection decides is_expense for every row and forces amounts to
// their positive magnitude. Priority: explicit debit/credit columns, then the
// majority-sign heuristic, then income keywords over an all-expense default.
// A sign tie deliberately falls through to the keyword path.
func inferDirection(rows []rawRow, dualColumn bool) []models.Transaction {
	txs := make([]models.Transaction, 0, len(rows))

	if dualColumn {
		for _, r := range rows {
			txs = append(txs, models.Transaction{
				Date:        r.date,
				Description: r.desc,
				Amount:      r.amount.Abs(),
				IsExpense:   debitPresent(r.debitRaw),
			})
		}
		return txs
	}

	var positives, negatives int
	for _, r := range rows {
		if r.amount.IsPositive() {
			positives++
		} else if r.amount.IsNegative() {
			negatives++
		}
	}

	if negatives > positives {
		for _, r := range rows {
			txs = append(txs, models.Transaction{
				Date:        r.date,
				Description: r.desc,
				Amount:      r.amount.Abs(),
				IsExpense:   r.amount.IsNegative(),
			})
		}
		return txs
	}

	for _, r := range rows {
		txs = append(txs, models.Transaction{
			Date:        r.date,
			Description: r.desc,
			Amount:      r.amount.Abs(),
			IsExpense:   !containsIncomeKeyword(r.desc),
		})
	}
	return txs
}

func containsIncomeKeyword(description string) bool {
	lower := strings.ToLower(description)
	for _, keyword := range incomeKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func debitPresent(raw string) bool {
	amount, err := ParseAmount(raw)
	if err != nil {
		return false
	}
	return !amount.IsZero()
}

// ParseAmount parses the amount notations found in statement exports:
// currency symbols, thousands separators and accounting-style parentheses
// for negative values.
func ParseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(value)
	for _, symbol := range []string{"₹", "$", "€", ","} {
		cleaned = strings.ReplaceAll(cleaned, symbol, "")
	}
	cleaned = strings.Join(strings.Fields(cleaned), "")

	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + cleaned[1:len(cleaned)-1]
	}

	return decimal.NewFromString(cleaned)
}

// NormalizeColumnName lowercases a column header and collapses every run of
// non-alphanumeric characters to a single underscore.
func NormalizeColumnName(name string) string {
	normalized := columnNameRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
	return strings.Trim(normalized, "_")
}

// columnIndex maps normalized column names to the original header spelling.
// The first header claiming a normalized name wins.
func columnIndex(row map[string]string) map[string]string {
	index := make(map[string]string, len(row))
	for original := range row {
		normalized := NormalizeColumnName(original)
		if _, exists := index[normalized]; !exists {
			index[normalized] = original
		}
	}
	return index
}

func resolveColumn(columns map[string]string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		if original, ok := columns[alias]; ok {
			return original, true
		}
	}
	return "", false
}
