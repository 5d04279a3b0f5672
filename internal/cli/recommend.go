package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/tutormatch/internal/matcher"
	"github.com/vijay-prabhu/tutormatch/internal/output"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank tutors for a student",
	Long: `Rank tutors with an explained score.

The tutors matching the search criteria are scored (or the whole pool with
--all). Points come from rating, subject fit, teaching mode, budget fit,
experience, verification, reviews and distance. Without student flags a
profile is derived from the criteria. Distance uses --lat/--lng, then --near,
then --location, whichever places the student first.

Examples:
  tutormatch recommend --subject Mathematics --grade "7th Grade"
  tutormatch recommend --all --student-subjects Physics --budget-max 2500 --near "Indiranagar, Bangalore"
  tutormatch recommend --location pune --prefer-mode home-tuition --limit 3`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

var (
	recommendCriteria criteriaFlags
	recommendStudent  studentFlags
	recommendAll      bool
	recommendLimit    int
)

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCriteria.register(recommendCmd)
	recommendStudent.register(recommendCmd)
	recommendCmd.Flags().BoolVar(&recommendAll, "all", false, "Score the whole pool instead of the search result")
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 0, "Maximum recommendations (default from config)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	search, err := recommendCriteria.request(cmd)
	if err != nil {
		return err
	}
	student, err := recommendStudent.request(cmd)
	if err != nil {
		return err
	}

	m, db, err := openMatcher()
	if err != nil {
		return err
	}
	defer db.Close()

	recs, err := m.Recommend(ctx, matcher.RecommendRequest{
		Search:  search,
		Student: student,
		Near:    recommendStudent.near,
		All:     recommendAll,
		Limit:   recommendLimit,
	})
	if err != nil {
		return err
	}

	if outputFmt != "json" && len(recs) > 0 {
		terminal := NewTerminal()
		top := recs[0]
		fmt.Fprintln(os.Stderr, terminal.Color(ScoreColor(top.Score),
			fmt.Sprintf("Best match: %s (%.1f points)", top.Tutor.Name, top.Score)))
	}

	return output.Output(outputFmt, recs)
}
