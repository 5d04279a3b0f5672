package tutor

import (
	"time"

	"github.com/vijay-prabhu/tutormatch/internal/geo"
)

// TeachingMode describes where a tutor teaches
type TeachingMode string

const (
	ModeHomeTuition TeachingMode = "home-tuition"
	ModeCenterBased TeachingMode = "center-based"
	ModeBoth        TeachingMode = "both"
)

// Valid reports whether m is one of the known teaching modes
func (m TeachingMode) Valid() bool {
	switch m {
	case ModeHomeTuition, ModeCenterBased, ModeBoth:
		return true
	}
	return false
}

// Offers reports whether a tutor with mode m can serve a student asking for want
func (m TeachingMode) Offers(want TeachingMode) bool {
	return m == ModeBoth || m == want
}

// Location is where a tutor is based
type Location struct {
	Address     string           `json:"address,omitempty"`
	City        string           `json:"city" validate:"required"`
	State       string           `json:"state,omitempty"`
	Coordinates *geo.Coordinates `json:"coordinates,omitempty"`
}

// Availability lists the days and time slots a tutor is free
type Availability struct {
	Days      []string `json:"days,omitempty"`
	TimeSlots []string `json:"time_slots,omitempty"`
}

// Tutor is a candidate in the marketplace
type Tutor struct {
	ID             string       `json:"id"`
	Name           string       `json:"name" validate:"required"`
	Email          string       `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string       `json:"phone,omitempty"`
	Qualifications []string     `json:"qualifications,omitempty"`
	Subjects       []string     `json:"subjects" validate:"min=1,dive,required"`
	Experience     int          `json:"experience" validate:"gte=0"`
	Fees           FeeSchedule  `json:"fees"`
	TeachingMode   TeachingMode `json:"teaching_mode" validate:"teachingmode"`
	Rating         float64      `json:"rating" validate:"gte=0,lte=5"`
	TotalReviews   int          `json:"total_reviews" validate:"gte=0"`
	Verified       bool         `json:"is_verified"`
	Location       Location     `json:"location"`
	Availability   Availability `json:"availability"`
	JoinedAt       time.Time    `json:"joined_at"`
}

// TeachesAny reports whether the tutor teaches at least one of subjects
func (t *Tutor) TeachesAny(subjects []string) bool {
	for _, want := range subjects {
		if t.Teaches(want) {
			return true
		}
	}
	return false
}

// Teaches reports whether subject is in the tutor's subject list
func (t *Tutor) Teaches(subject string) bool {
	for _, s := range t.Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// HasCoordinates reports whether the tutor has a usable geographic position
func (t *Tutor) HasCoordinates() bool {
	return t.Location.Coordinates != nil && t.Location.Coordinates.Valid()
}
