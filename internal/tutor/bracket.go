package tutor

import "strings"

// Bracket is one of the five fee categories a tutor prices sessions by
type Bracket string

const (
	Grade1to4   Bracket = "grade1to4"
	Grade5to9   Bracket = "grade5to9"
	Grade10     Bracket = "grade10"
	Grade11to12 Bracket = "grade11to12"
	Graduation  Bracket = "graduation"
)

// Brackets lists all brackets in ascending grade order
var Brackets = []Bracket{Grade1to4, Grade5to9, Grade10, Grade11to12, Graduation}

// Default brackets used when no grade is supplied.
//
// Budget filtering and recommendation budget checks assume the most expensive
// bracket. Fee display and booking assume a typical mid-range bracket.
const (
	DefaultFilterBracket  = Graduation
	DefaultDisplayBracket = Grade5to9
)

// Grades lists the canonical grade labels in order
var Grades = []string{
	"1st Grade", "2nd Grade", "3rd Grade", "4th Grade", "5th Grade",
	"6th Grade", "7th Grade", "8th Grade", "9th Grade", "10th Grade",
	"11th Grade", "12th Grade", "Graduation",
}

var gradeBrackets = map[string]Bracket{
	"1st grade":  Grade1to4,
	"2nd grade":  Grade1to4,
	"3rd grade":  Grade1to4,
	"4th grade":  Grade1to4,
	"5th grade":  Grade5to9,
	"6th grade":  Grade5to9,
	"7th grade":  Grade5to9,
	"8th grade":  Grade5to9,
	"9th grade":  Grade5to9,
	"10th grade": Grade10,
	"11th grade": Grade11to12,
	"12th grade": Grade11to12,
	"graduation": Graduation,
}

// ResolveBracket maps a grade label to its fee bracket.
// An empty grade resolves to def; unrecognized labels resolve to Graduation.
func ResolveBracket(grade string, def Bracket) Bracket {
	key := strings.ToLower(strings.TrimSpace(grade))
	if key == "" {
		return def
	}
	if b, ok := gradeBrackets[key]; ok {
		return b
	}
	return Graduation
}

// IsGrade reports whether label is one of the canonical grades
func IsGrade(label string) bool {
	_, ok := gradeBrackets[strings.ToLower(strings.TrimSpace(label))]
	return ok
}

// Valid reports whether b is a known bracket
func (b Bracket) Valid() bool {
	switch b {
	case Grade1to4, Grade5to9, Grade10, Grade11to12, Graduation:
		return true
	}
	return false
}

// Label returns a display label for the bracket
func (b Bracket) Label() string {
	switch b {
	case Grade1to4:
		return "Grades 1-4"
	case Grade5to9:
		return "Grades 5-9"
	case Grade10:
		return "Grade 10"
	case Grade11to12:
		return "Grades 11-12"
	case Graduation:
		return "Graduation"
	default:
		return string(b)
	}
}
