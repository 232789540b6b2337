// Package chat handles the coach question command.
package chat

import (
	"fmt"
	"time"

	"flexicoach/fincoach/cmd/root"
	"flexicoach/fincoach/internal/coach"
	"flexicoach/fincoach/internal/models"
	"flexicoach/fincoach/internal/report"

	"github.com/spf13/cobra"
)

var (
	question string
	snapshot string
)

// Cmd represents the chat command.
var Cmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask the AI money coach a question",
	Long: `Chat sends a question to the AI coach together with a previously
generated report snapshot. The command never hard-fails on AI problems: any
model error degrades to built-in advice.`,
	RunE: chatFunc,
}

func init() {
	Cmd.Flags().StringVarP(&question, "question", "q", "", "Question for the coach")
	Cmd.Flags().StringVar(&snapshot, "snapshot", "", "Path to a report JSON to use as financial context")
	_ = Cmd.MarkFlagRequired("question")
}

func chatFunc(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var snap models.Report
	if snapshot != "" {
		loaded, err := report.ReadJSON(snapshot)
		if err != nil {
			return err
		}
		snap = *loaded
	}

	var advisor coach.Advisor
	if root.Cfg.AI.Enabled {
		timeout := time.Duration(root.Cfg.AI.TimeoutSeconds) * time.Second
		gemini, err := coach.NewGeminiAdvisor(ctx, root.Cfg.AI.APIKey, root.Cfg.AI.Model, timeout, root.Log)
		if err != nil {
			root.Log.WithError(err).Warn("Could not initialize AI advisor, using fallback advice")
		} else {
			defer gemini.Close()
			advisor = gemini
		}
	}

	answer := coach.AdviseWithFallback(ctx, advisor, question, snap, root.Log)
	fmt.Println(answer)
	return nil
}
