// Package report runs the full analysis pipeline over raw CSV rows and
// assembles the result document.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"flexicoach/fincoach/internal/analytics"
	"flexicoach/fincoach/internal/budget"
	"flexicoach/fincoach/internal/classifier"
	"flexicoach/fincoach/internal/logging"
	"flexicoach/fincoach/internal/models"
	"flexicoach/fincoach/internal/normalizer"

	"github.com/google/uuid"
)

// Options configures one analysis invocation.
type Options struct {
	// Rules overrides the built-in classification rules when non-empty.
	Rules  []classifier.Rule
	Logger logging.Logger
}

// Generate normalizes, classifies and analyzes the given raw rows and
// returns the full report together with the cleaned transaction set.
func Generate(ctx context.Context, rows []map[string]string, opts Options) (*models.Report, *models.TransactionSet, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetLogger()
	}

	set, result, err := normalizer.Normalize(rows, logger)
	if err != nil {
		return nil, nil, err
	}

	cls := classifier.New(opts.Rules, logger)
	set = cls.Classify(set)

	plan, err := budget.Plan(set, logger)
	if err != nil {
		return nil, nil, err
	}

	engine := analytics.NewEngine(logger)
	insights, err := engine.Run(ctx, set)
	if err != nil {
		return nil, nil, err
	}

	report := &models.Report{
		ID:           uuid.New().String(),
		GeneratedAt:  time.Now().UTC(),
		Summary:      plan.Summary,
		Categories:   plan.Categories,
		WeeklySeries: plan.WeeklySeries,
		Flags:        plan.Flags,
		Analytics:    insights,
		DroppedRows:  result.DroppedRows,
	}

	logger.Info("Report generated",
		logging.Field{Key: "id", Value: report.ID},
		logging.Field{Key: "transactions", Value: set.Len()},
		logging.Field{Key: "dropped_rows", Value: result.DroppedRows})

	return report, set, nil
}

// GenerateFromFile reads a CSV file and runs Generate over its rows.
func GenerateFromFile(ctx context.Context, path string, delimiter rune, opts Options) (*models.Report, *models.TransactionSet, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetLogger()
	}
	rows, err := normalizer.ReadCSVFile(path, delimiter, logger)
	if err != nil {
		return nil, nil, err
	}
	return Generate(ctx, rows, opts)
}

// WriteJSON writes the report as indented JSON to path, or to stdout when
// path is "-" or empty.
func WriteJSON(report *models.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// ReadJSON loads a previously written report, for use as a chat snapshot.
func ReadJSON(path string) (*models.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &report, nil
}
