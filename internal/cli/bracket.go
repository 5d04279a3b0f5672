package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/tutormatch/internal/matcher"
	"github.com/vijay-prabhu/tutormatch/internal/output"
	"github.com/vijay-prabhu/tutormatch/internal/tutor"
)

var bracketCmd = &cobra.Command{
	Use:   "bracket [grade]",
	Short: "Show the fee bracket for a grade",
	Long: `Show which fee bracket a grade falls into.

Both defaults are shown: filtering assumes the graduation bracket when no
grade is given, fee display assumes grades 5-9. Unrecognized grades resolve
to graduation. With --list the canonical grades are printed.

Examples:
  tutormatch bracket "10th Grade"
  tutormatch bracket
  tutormatch bracket --list`,
	RunE: runBracket,
}

var bracketList bool

func init() {
	rootCmd.AddCommand(bracketCmd)
	bracketCmd.Flags().BoolVar(&bracketList, "list", false, "List the canonical grades")
}

func runBracket(cmd *cobra.Command, args []string) error {
	if bracketList {
		return output.Output(outputFmt, tutor.Grades)
	}
	return output.Output(outputFmt, matcher.Bracket(strings.Join(args, " ")))
}
