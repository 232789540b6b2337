// Package challenges handles the challenge tracking commands.
package challenges

import (
	"encoding/json"
	"fmt"
	"os"

	"flexicoach/fincoach/cmd/root"
	"flexicoach/fincoach/internal/challenge"
	"flexicoach/fincoach/internal/models"
	"flexicoach/fincoach/internal/report"

	"github.com/spf13/cobra"
)

var (
	userID      string
	challengeID string
	snapshot    string
	value       float64
)

// Cmd represents the challenges command group.
var Cmd = &cobra.Command{
	Use:   "challenges",
	Short: "Track savings challenges per user",
	Long: `Challenges manages per-user challenge state: start a challenge from a
report snapshot, record progress, list active and completed challenges, or
delete one. With the sqlite store driver the state persists across runs.`,
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a challenge from a report snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := findChallenge(snapshot, challengeID)
		if err != nil {
			return err
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		uc, err := store.Start(cmd.Context(), userID, data)
		if err != nil {
			return err
		}
		return printJSON(uc)
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Update progress on an active challenge",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		uc, err := store.Progress(cmd.Context(), userID, challengeID, value)
		if err != nil {
			return err
		}
		return printJSON(uc)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's active and completed challenges",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		list, err := store.List(cmd.Context(), userID)
		if err != nil {
			return err
		}
		return printJSON(list)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a user's challenge",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		deleted, err := store.Delete(cmd.Context(), userID, challengeID)
		if err != nil {
			return err
		}
		if !deleted {
			root.Log.Warn("Challenge not found, nothing deleted")
		}
		return printJSON(map[string]bool{"deleted": deleted})
	},
}

func init() {
	Cmd.PersistentFlags().StringVarP(&userID, "user", "u", "", "User identifier")
	_ = Cmd.MarkPersistentFlagRequired("user")

	startCmd.Flags().StringVar(&challengeID, "id", "", "Challenge identifier")
	startCmd.Flags().StringVar(&snapshot, "snapshot", "", "Report JSON containing the generated challenges")
	_ = startCmd.MarkFlagRequired("id")
	_ = startCmd.MarkFlagRequired("snapshot")

	progressCmd.Flags().StringVar(&challengeID, "id", "", "Challenge identifier")
	progressCmd.Flags().Float64Var(&value, "value", 0, "New progress value")
	_ = progressCmd.MarkFlagRequired("id")
	_ = progressCmd.MarkFlagRequired("value")

	deleteCmd.Flags().StringVar(&challengeID, "id", "", "Challenge identifier")
	_ = deleteCmd.MarkFlagRequired("id")

	Cmd.AddCommand(startCmd)
	Cmd.AddCommand(progressCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(deleteCmd)
}

// openStore builds the configured challenge store.
func openStore() (challenge.Store, error) {
	if root.Cfg.Store.Driver == "sqlite" {
		return challenge.NewSQLiteStore(root.Cfg.Store.Path)
	}
	return challenge.NewMemoryStore(), nil
}

// findChallenge resolves challenge metadata by ID from a report snapshot.
func findChallenge(snapshotPath, id string) (models.Challenge, error) {
	snap, err := report.ReadJSON(snapshotPath)
	if err != nil {
		return models.Challenge{}, err
	}
	for _, c := range snap.Analytics.Challenges {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Challenge{}, fmt.Errorf("challenge %q not found in snapshot %s", id, snapshotPath)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
