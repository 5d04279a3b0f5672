package filter

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vijay-prabhu/tutormatch/internal/tutor"
)

// Criteria holds a student's search constraints for a single query.
// Zero values mean the criterion was not supplied.
type Criteria struct {
	Subject      string             `json:"subject,omitempty"`
	Subjects     []string           `json:"subjects,omitempty"`
	Grade        string             `json:"grade,omitempty"`
	Location     string             `json:"location,omitempty"`
	MaxBudget    *decimal.Decimal   `json:"max_budget,omitempty"`
	TeachingMode tutor.TeachingMode `json:"teaching_mode,omitempty"`
	MinRating    *float64           `json:"min_rating,omitempty"`
}

// IsEmpty reports whether no criterion was supplied
func (c Criteria) IsEmpty() bool {
	return c.Subject == "" &&
		len(c.Subjects) == 0 &&
		c.Grade == "" &&
		c.Location == "" &&
		c.MaxBudget == nil &&
		c.TeachingMode == "" &&
		c.MinRating == nil
}

// SearchSubjects returns the subjects to match: the multi-subject list when
// present, otherwise the single subject
func (c Criteria) SearchSubjects() []string {
	if len(c.Subjects) > 0 {
		return c.Subjects
	}
	if c.Subject != "" {
		return []string{c.Subject}
	}
	return nil
}

// Bracket returns the fee bracket used for budget checks
func (c Criteria) Bracket() tutor.Bracket {
	return tutor.ResolveBracket(c.Grade, tutor.DefaultFilterBracket)
}

func (c Criteria) matchSubjects(t *tutor.Tutor) bool {
	if len(c.Subjects) > 0 && !t.TeachesAny(c.Subjects) {
		return false
	}
	// Both subject checks apply when both are supplied
	if c.Subject != "" && !t.Teaches(c.Subject) {
		return false
	}
	return true
}

func (c Criteria) matchLocation(t *tutor.Tutor) bool {
	if c.Location == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Location.City), strings.ToLower(c.Location))
}

func (c Criteria) matchBudget(t *tutor.Tutor) bool {
	if c.MaxBudget == nil {
		return true
	}
	if c.MaxBudget.IsNegative() {
		return false
	}
	return t.Fees.For(c.Bracket()).LessThanOrEqual(*c.MaxBudget)
}

func (c Criteria) matchMode(t *tutor.Tutor) bool {
	if c.TeachingMode == "" {
		return true
	}
	return t.TeachingMode.Offers(c.TeachingMode)
}

func (c Criteria) matchRating(t *tutor.Tutor) bool {
	if c.MinRating == nil {
		return true
	}
	if math.IsNaN(*c.MinRating) {
		return false
	}
	return t.Rating >= *c.MinRating
}
