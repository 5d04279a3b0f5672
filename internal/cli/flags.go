package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/tutormatch/internal/validation"
)

// criteriaFlags holds the search criteria shared by search and recommend
type criteriaFlags struct {
	subject   string
	subjects  []string
	grade     string
	location  string
	maxBudget string
	mode      string
	minRating float64
}

func (f *criteriaFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.subject, "subject", "", "Subject the tutor must teach")
	flags.StringSliceVar(&f.subjects, "subjects", nil, "Subjects, any of which the tutor must teach (repeatable or comma separated)")
	flags.StringVar(&f.grade, "grade", "", "Student grade (e.g. \"7th Grade\", \"Graduation\")")
	flags.StringVar(&f.location, "location", "", "City name or part of one")
	flags.StringVar(&f.maxBudget, "max-budget", "", "Maximum fee per session for the grade")
	flags.StringVar(&f.mode, "mode", "", "Teaching mode (home-tuition, center-based, both)")
	flags.Float64Var(&f.minRating, "min-rating", 0, "Minimum rating (0-5)")
}

// request converts the parsed flags to a search request. Unset flags stay
// nil so they are not applied as criteria.
func (f *criteriaFlags) request(cmd *cobra.Command) (validation.SearchRequest, error) {
	req := validation.SearchRequest{
		Subject:      f.subject,
		Subjects:     f.subjects,
		Grade:        f.grade,
		Location:     f.location,
		TeachingMode: f.mode,
	}

	budget, err := parseDecimal("max-budget", f.maxBudget)
	if err != nil {
		return req, err
	}
	req.MaxBudget = budget

	if cmd.Flags().Changed("min-rating") {
		rating := f.minRating
		req.MinRating = &rating
	}

	return req, nil
}

// studentFlags holds the optional student profile used by recommend
type studentFlags struct {
	subjects   []string
	budgetMin  string
	budgetMax  string
	preferMode string
	lat        float64
	lng        float64
	near       string
}

func (f *studentFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSliceVar(&f.subjects, "student-subjects", nil, "Subjects the student wants help with")
	flags.StringVar(&f.budgetMin, "budget-min", "", "Lowest fee the student expects to pay")
	flags.StringVar(&f.budgetMax, "budget-max", "", "Highest fee the student will pay")
	flags.StringVar(&f.preferMode, "prefer-mode", "", "Preferred teaching mode (home-tuition, center-based)")
	flags.Float64Var(&f.lat, "lat", 0, "Student latitude")
	flags.Float64Var(&f.lng, "lng", 0, "Student longitude")
	flags.StringVar(&f.near, "near", "", "Student address, placed by city name")
}

func (f *studentFlags) request(cmd *cobra.Command) (validation.StudentRequest, error) {
	req := validation.StudentRequest{
		Subjects:      f.subjects,
		PreferredMode: f.preferMode,
	}

	var err error
	if req.BudgetMin, err = parseDecimal("budget-min", f.budgetMin); err != nil {
		return req, err
	}
	if req.BudgetMax, err = parseDecimal("budget-max", f.budgetMax); err != nil {
		return req, err
	}
	if req.BudgetMin != nil && req.BudgetMax == nil {
		return req, fmt.Errorf("--budget-min requires --budget-max")
	}

	latSet, lngSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lng")
	if latSet != lngSet {
		return req, fmt.Errorf("--lat and --lng must be given together")
	}
	if latSet {
		lat, lng := f.lat, f.lng
		req.Lat, req.Lng = &lat, &lng
	}

	return req, nil
}

// parseDecimal parses an optional money flag
func parseDecimal(name, value string) (*decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return &d, nil
}
