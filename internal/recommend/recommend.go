// Package recommend ranks tutors for a student with an additive point system.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vijay-prabhu/tutormatch/internal/filter"
	"github.com/vijay-prabhu/tutormatch/internal/geo"
	"github.com/vijay-prabhu/tutormatch/internal/tutor"
)

// Budget is the per-session fee range a student is willing to pay
type Budget struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Valid reports whether both bounds are non-negative
func (b Budget) Valid() bool {
	return !b.Min.IsNegative() && !b.Max.IsNegative()
}

// StudentProfile is the partial student information a recommendation uses.
// Zero values mean the field is unknown.
type StudentProfile struct {
	Subjects      []string           `json:"subjects,omitempty"`
	Grade         string             `json:"grade,omitempty"`
	Coordinates   *geo.Coordinates   `json:"coordinates,omitempty"`
	Budget        *Budget            `json:"budget,omitempty"`
	PreferredMode tutor.TeachingMode `json:"preferred_mode,omitempty"`
}

// Recommendation is a scored, explained ranking entry
type Recommendation struct {
	Tutor    tutor.Tutor `json:"tutor"`
	Score    float64     `json:"score"`
	Distance *float64    `json:"distance,omitempty"`
	Reasons  []string    `json:"reasons"`
}

// Recommend scores every tutor and returns them sorted by score, highest
// first. Tutors with equal scores keep their input order.
func Recommend(tutors []tutor.Tutor, student StudentProfile, c filter.Criteria) []Recommendation {
	recs := make([]Recommendation, 0, len(tutors))
	for i := range tutors {
		recs = append(recs, Score(&tutors[i], student, c))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	return recs
}

// Score evaluates every rule against a single tutor
func Score(t *tutor.Tutor, student StudentProfile, c filter.Criteria) Recommendation {
	rec := Recommendation{
		Tutor:   *t,
		Score:   t.Rating * RatingWeight,
		Reasons: []string{},
	}

	if subjects := criteriaSubjects(c); len(subjects) > 0 && t.TeachesAny(subjects) {
		rec.add(SubjectBonus, ReasonSubjects)
	}

	// Counted again when the profile lists subjects too
	if len(student.Subjects) > 0 && t.TeachesAny(student.Subjects) {
		rec.add(SubjectBonus, ReasonSubjects)
	}

	if student.PreferredMode != "" && t.TeachingMode.Offers(student.PreferredMode) {
		rec.add(ModeBonus, "Offers "+strings.Replace(string(student.PreferredMode), "-", " ", 1))
	}

	if student.Budget != nil && student.Budget.Valid() && student.Grade != "" {
		fee := t.Fees.For(tutor.ResolveBracket(student.Grade, tutor.DefaultFilterBracket))
		switch {
		case fee.GreaterThan(student.Budget.Max):
			rec.Score += OverBudgetPenalty
		case fee.GreaterThanOrEqual(student.Budget.Min):
			rec.add(BudgetBonus, ReasonBudget)
		}
	}

	if t.Experience >= ExperiencedYears {
		rec.add(ExperienceBonus, fmt.Sprintf("%d years of experience", t.Experience))
	}

	if t.Verified {
		rec.add(VerifiedBonus, ReasonVerified)
	}

	if student.Coordinates != nil && student.Coordinates.Valid() && t.HasCoordinates() {
		d := student.Coordinates.DistanceTo(*t.Location.Coordinates)
		rec.Distance = &d
		switch {
		case d <= VeryCloseKm:
			rec.add(VeryCloseBonus, ReasonVeryClose)
		case d <= NearbyKm:
			rec.add(NearbyBonus, ReasonNearby)
		case d > FarKm:
			rec.Score += FarPenalty
		}
	}

	if t.TotalReviews >= ReviewedCount {
		rec.add(ReviewedBonus, ReasonReviewed)
	}

	return rec
}

// Top returns at most n recommendations. n <= 0 returns all of them.
func Top(recs []Recommendation, n int) []Recommendation {
	if n <= 0 || n >= len(recs) {
		return recs
	}
	return recs[:n]
}

// ProfileFromCriteria builds the partial profile a search page derives from
// its criteria: the single subject, the grade, a budget of zero up to the
// ceiling, and the requested teaching mode.
func ProfileFromCriteria(c filter.Criteria, coords *geo.Coordinates) StudentProfile {
	p := StudentProfile{
		Grade:         c.Grade,
		Coordinates:   coords,
		PreferredMode: c.TeachingMode,
	}
	if c.Subject != "" {
		p.Subjects = []string{c.Subject}
	}
	if c.MaxBudget != nil {
		p.Budget = &Budget{Min: decimal.Zero, Max: *c.MaxBudget}
	}
	return p
}

func (r *Recommendation) add(points float64, reason string) {
	r.Score += points
	r.Reasons = append(r.Reasons, reason)
}

func criteriaSubjects(c filter.Criteria) []string {
	subjects := make([]string, 0, len(c.Subjects)+1)
	subjects = append(subjects, c.Subjects...)
	if c.Subject != "" {
		subjects = append(subjects, c.Subject)
	}
	return subjects
}
