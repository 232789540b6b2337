package normalizer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"flexicoach/fincoach/internal/logging"

	"github.com/gocarina/gocsv"
)

// ReadCSV reads a delimited file with uncontrolled headers into one map per
// row, keyed by the original header spelling.
func ReadCSV(r io.Reader, delimiter rune, logger logging.Logger) ([]map[string]string, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		cr := csv.NewReader(in)
		cr.Comma = delimiter
		cr.TrimLeadingSpace = true
		return cr
	})
	// Reset the reader configuration for other callers of gocsv.
	defer gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		return csv.NewReader(in)
	})

	rows, err := gocsv.CSVToMaps(r)
	if err != nil {
		logger.WithError(err).Error("Failed to read CSV input")
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}

	logger.Info("Read CSV rows", logging.Field{Key: "count", Value: len(rows)})
	return rows, nil
}

// ReadCSVFile opens and reads a delimited file from disk.
func ReadCSVFile(path string, delimiter rune, logger logging.Logger) ([]map[string]string, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	file, err := os.Open(path)
	if err != nil {
		logger.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return ReadCSV(file, delimiter, logger)
}
