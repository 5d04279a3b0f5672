package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/tutormatch/internal/output"
)

var feeCmd = &cobra.Command{
	Use:   "fee <tutor-id>",
	Short: "Quote a tutor's session fee for a grade",
	Long: `Quote the per-session fee a tutor charges for a grade.

Without --grade the grade 5-9 fee is quoted.

Examples:
  tutormatch fee 3f2a9c1e
  tutormatch fee 3f2a9c1e --grade "11th Grade"`,
	Args: cobra.ExactArgs(1),
	RunE: runFee,
}

var feeGrade string

func init() {
	rootCmd.AddCommand(feeCmd)
	feeCmd.Flags().StringVar(&feeGrade, "grade", "", "Student grade")
}

func runFee(cmd *cobra.Command, args []string) error {
	m, db, err := openMatcher()
	if err != nil {
		return err
	}
	defer db.Close()

	quote, err := m.Quote(cmd.Context(), args[0], feeGrade)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, quote)
}
