package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/tutormatch/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show marketplace statistics",
	Long: `Display aggregate statistics about the tutor pool and bookings.

Examples:
  tutormatch stats
  tutormatch stats -o json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := db.GetStats(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	return output.Output(outputFmt, stats)
}
