package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/tutormatch/internal/filter"
	"github.com/vijay-prabhu/tutormatch/internal/output"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search tutors by criteria",
	Long: `Search the tutor pool. A tutor matches when it satisfies every criterion given.

Without any criteria the top rated tutors are shown (browse mode).
Budgets compare against the fee for --grade, or the graduation fee when no
grade is given.

Examples:
  tutormatch search
  tutormatch search --subject Mathematics --location bangalore
  tutormatch search --subjects Physics,Chemistry --grade "10th Grade" --max-budget 3000
  tutormatch search --mode home-tuition --min-rating 4.5`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

var searchCriteria criteriaFlags

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCriteria.register(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	req, err := searchCriteria.request(cmd)
	if err != nil {
		return err
	}

	m, db, err := openMatcher()
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := m.Search(ctx, req)
	if err != nil {
		return err
	}

	if len(result.Tutors) == 0 && result.Kind == filter.KindFiltered && outputFmt != "json" {
		fmt.Println("No tutors match these criteria.")
		return nil
	}

	return output.Output(outputFmt, result)
}
