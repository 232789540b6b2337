package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"flexicoach/fincoach/internal/dateutils"
	"flexicoach/fincoach/internal/logging"
	"flexicoach/fincoach/internal/models"

	"github.com/gocarina/gocsv"
)

// cleanedRow is the export shape of one normalized transaction.
type cleanedRow struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Type        string `csv:"type"`
	Category    string `csv:"category"`
	NeedVsWant  string `csv:"need_vs_want"`
}

// WriteCleanedCSV exports the normalized, classified transactions to a CSV
// file with a fixed schema.
func WriteCleanedCSV(set *models.TransactionSet, path string, delimiter rune, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}

	rows := make([]cleanedRow, set.Len())
	for i, tx := range set.Transactions {
		txType := "expense"
		if !tx.IsExpense {
			txType = "income"
		}
		rows[i] = cleanedRow{
			Date:        dateutils.ToISODate(tx.Date),
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
			Type:        txType,
			Category:    tx.Category,
			NeedVsWant:  tx.NeedVsWant,
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logger.WithError(cerr).Warn("Failed to close CSV file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.Info("Cleaned transactions written",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: set.Len()})
	return nil
}
