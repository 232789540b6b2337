// Package analyze handles the full analysis pipeline command.
package analyze

import (
	"fmt"

	"flexicoach/fincoach/cmd/root"
	"flexicoach/fincoach/internal/apperror"
	"flexicoach/fincoach/internal/classifier"
	"flexicoach/fincoach/internal/logging"
	"flexicoach/fincoach/internal/report"

	"github.com/spf13/cobra"
)

var cleanedCSV string

// Cmd represents the analyze command.
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a bank CSV export and produce a full report",
	Long: `Analyze reads a bank transaction CSV export, normalizes the schema,
classifies every transaction into a category and need/want label, and writes
a JSON report with the budget summary, flags and all analytics modules.`,
	RunE: analyzeFunc,
}

func init() {
	Cmd.Flags().StringVar(&cleanedCSV, "csv", "", "Also write the cleaned transactions to this CSV file")
}

func analyzeFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required (use -i)")
	}
	root.Log.Info("Analyze command called",
		logging.Field{Key: "input", Value: root.SharedFlags.Input})

	opts := report.Options{Logger: root.Log}
	if path := root.Cfg.Rules.File; path != "" {
		rules, err := classifier.LoadRules(path)
		if err != nil {
			return fmt.Errorf("load classification rules: %w", err)
		}
		opts.Rules = rules
	}

	result, set, err := report.GenerateFromFile(cmd.Context(), root.SharedFlags.Input, root.Delimiter(), opts)
	if err != nil {
		if apperror.IsClientError(err) {
			root.Log.WithError(err).Error("Input dataset rejected")
		}
		return err
	}

	if err := report.WriteJSON(result, root.SharedFlags.Output); err != nil {
		return err
	}

	if cleanedCSV != "" {
		if err := report.WriteCleanedCSV(set, cleanedCSV, root.Delimiter(), root.Log); err != nil {
			return err
		}
	}
	return nil
}
