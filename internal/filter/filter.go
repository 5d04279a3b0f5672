package filter

import (
	"github.com/vijay-prabhu/tutormatch/internal/tutor"
)

// DefaultBrowseLimit is how many tutors a search without criteria shows
const DefaultBrowseLimit = 6

// Kind identifies which branch produced a Result
type Kind string

const (
	KindBrowse   Kind = "browse"
	KindFiltered Kind = "filtered"
)

// Result is the outcome of running a search
type Result struct {
	Kind   Kind          `json:"kind"`
	Tutors []tutor.Tutor `json:"tutors"`
}

// Config configures a Filter
type Config struct {
	BrowseLimit int
}

// Filter reduces a tutor pool to the candidates satisfying a search.
// It holds no state besides its configuration and is safe for concurrent use.
type Filter struct {
	browseLimit int
}

// New creates a new Filter with the given configuration
func New(cfg Config) *Filter {
	limit := cfg.BrowseLimit
	if limit <= 0 {
		limit = DefaultBrowseLimit
	}
	return &Filter{browseLimit: limit}
}

// Apply runs a search. Without any criteria it returns the browse prefix of
// the pool; otherwise every tutor matching all supplied criteria.
func (f *Filter) Apply(tutors []tutor.Tutor, c Criteria) Result {
	if c.IsEmpty() {
		return Result{Kind: KindBrowse, Tutors: Browse(tutors, f.browseLimit)}
	}
	return Result{Kind: KindFiltered, Tutors: Filtered(tutors, c)}
}

// Filtered returns the tutors matching c, preserving input order
func Filtered(tutors []tutor.Tutor, c Criteria) []tutor.Tutor {
	matched := make([]tutor.Tutor, 0, len(tutors))
	for i := range tutors {
		if Match(&tutors[i], c) {
			matched = append(matched, tutors[i])
		}
	}
	return matched
}

// Browse returns the first n tutors of the pool
func Browse(tutors []tutor.Tutor, n int) []tutor.Tutor {
	if n < 0 {
		n = 0
	}
	if n > len(tutors) {
		n = len(tutors)
	}
	out := make([]tutor.Tutor, n)
	copy(out, tutors[:n])
	return out
}

// Match reports whether a tutor satisfies every supplied criterion.
// With no criteria supplied every tutor matches.
func Match(t *tutor.Tutor, c Criteria) bool {
	return c.matchSubjects(t) &&
		c.matchLocation(t) &&
		c.matchBudget(t) &&
		c.matchMode(t) &&
		c.matchRating(t)
}

// Stats summarizes how a pool fared against a set of criteria
type Stats struct {
	Total          int `json:"total"`
	Matched        int `json:"matched"`
	FailedSubject  int `json:"failed_subject"`
	FailedLocation int `json:"failed_location"`
	FailedBudget   int `json:"failed_budget"`
	FailedMode     int `json:"failed_mode"`
	FailedRating   int `json:"failed_rating"`
}

// GetStats counts, per criterion, how many tutors it rejected.
// A tutor failing several criteria is counted under each.
func GetStats(tutors []tutor.Tutor, c Criteria) Stats {
	stats := Stats{Total: len(tutors)}

	for i := range tutors {
		t := &tutors[i]
		ok := true
		if !c.matchSubjects(t) {
			stats.FailedSubject++
			ok = false
		}
		if !c.matchLocation(t) {
			stats.FailedLocation++
			ok = false
		}
		if !c.matchBudget(t) {
			stats.FailedBudget++
			ok = false
		}
		if !c.matchMode(t) {
			stats.FailedMode++
			ok = false
		}
		if !c.matchRating(t) {
			stats.FailedRating++
			ok = false
		}
		if ok {
			stats.Matched++
		}
	}

	return stats
}
