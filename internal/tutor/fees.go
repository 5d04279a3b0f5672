package tutor

import "github.com/shopspring/decimal"

// Ingestion defaults for brackets a tutor did not price
var (
	DefaultFeeGrade1to4   = decimal.NewFromInt(1000)
	DefaultFeeGrade5to9   = decimal.NewFromInt(2000)
	DefaultFeeGrade10     = decimal.NewFromInt(2500)
	DefaultFeeGrade11to12 = decimal.NewFromInt(4000)
	DefaultFeeGraduation  = decimal.NewFromInt(5000)
)

// FeeSchedule holds a tutor's per-session fee for each bracket
type FeeSchedule struct {
	Grade1to4   decimal.Decimal `json:"grade1to4" validate:"gt=0"`
	Grade5to9   decimal.Decimal `json:"grade5to9" validate:"gt=0"`
	Grade10     decimal.Decimal `json:"grade10" validate:"gt=0"`
	Grade11to12 decimal.Decimal `json:"grade11to12" validate:"gt=0"`
	Graduation  decimal.Decimal `json:"graduation" validate:"gt=0"`
}

// For returns the fee for bracket b. Unknown brackets use the graduation fee.
func (f FeeSchedule) For(b Bracket) decimal.Decimal {
	switch b {
	case Grade1to4:
		return f.Grade1to4
	case Grade5to9:
		return f.Grade5to9
	case Grade10:
		return f.Grade10
	case Grade11to12:
		return f.Grade11to12
	default:
		return f.Graduation
	}
}

// WithDefaults returns a copy with every non-positive bracket set to its default
func (f FeeSchedule) WithDefaults() FeeSchedule {
	f.Grade1to4 = orDefault(f.Grade1to4, DefaultFeeGrade1to4)
	f.Grade5to9 = orDefault(f.Grade5to9, DefaultFeeGrade5to9)
	f.Grade10 = orDefault(f.Grade10, DefaultFeeGrade10)
	f.Grade11to12 = orDefault(f.Grade11to12, DefaultFeeGrade11to12)
	f.Graduation = orDefault(f.Graduation, DefaultFeeGraduation)
	return f
}

// Complete reports whether every bracket has a positive fee
func (f FeeSchedule) Complete() bool {
	for _, b := range Brackets {
		if !f.For(b).IsPositive() {
			return false
		}
	}
	return true
}

func orDefault(v, def decimal.Decimal) decimal.Decimal {
	if v.IsPositive() {
		return v
	}
	return def
}

// QuoteFee returns the session fee a tutor charges for grade, resolving an
// empty grade to DefaultDisplayBracket
func QuoteFee(t *Tutor, grade string) (Bracket, decimal.Decimal) {
	b := ResolveBracket(grade, DefaultDisplayBracket)
	return b, t.Fees.For(b)
}
