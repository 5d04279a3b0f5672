package recommend

// Point values for each scoring rule
const (
	RatingWeight      = 20.0
	SubjectBonus      = 30.0
	ModeBonus         = 15.0
	BudgetBonus       = 25.0
	OverBudgetPenalty = -10.0
	ExperienceBonus   = 10.0
	VerifiedBonus     = 5.0
	VeryCloseBonus    = 20.0
	NearbyBonus       = 10.0
	FarPenalty        = -5.0
	ReviewedBonus     = 5.0
)

// Rule thresholds
const (
	ExperiencedYears = 5
	ReviewedCount    = 20
	VeryCloseKm      = 5.0
	NearbyKm         = 10.0
	FarKm            = 20.0
)

// Reasons emitted by the scoring rules
const (
	ReasonSubjects  = "Teaches your required subjects"
	ReasonBudget    = "Fees within your budget"
	ReasonVerified  = "Verified tutor"
	ReasonVeryClose = "Very close to you"
	ReasonNearby    = "Nearby location"
	ReasonReviewed  = "Highly reviewed"
)
