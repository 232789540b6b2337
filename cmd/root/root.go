// Package root contains the root command for the application.
package root

import (
	"flexicoach/fincoach/internal/config"
	"flexicoach/fincoach/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands.
	Log = logging.GetLogger()

	// Cfg holds the loaded configuration, populated before any command runs.
	Cfg *config.Config

	// SharedFlags are the persistent flags accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "fincoach",
		Short: "A CLI tool to analyze bank transaction exports and coach spending habits.",
		Long: `fincoach ingests messy bank CSV exports, normalizes and classifies every
transaction into budget categories and need/want labels, and produces a full
analysis report: budget summary, spending flags, forecasts, health and habit
scores, peer comparison and gamified savings challenges.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to fincoach!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			logging.SetDefault(Log)
			return nil
		},
	}
)

// Init initializes the root command and its persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// Delimiter returns the configured CSV delimiter as a rune.
func Delimiter() rune {
	if Cfg == nil || Cfg.CSV.Delimiter == "" {
		return ','
	}
	return []rune(Cfg.CSV.Delimiter)[0]
}
