package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vijay-prabhu/tutormatch/internal/filter"
	"github.com/vijay-prabhu/tutormatch/internal/geo"
	"github.com/vijay-prabhu/tutormatch/internal/recommend"
	"github.com/vijay-prabhu/tutormatch/internal/tutor"
)

// DateLayout is the layout booking dates are given in
const DateLayout = "2006-01-02"

// SearchRequest carries search criteria as received from a caller
type SearchRequest struct {
	Subject      string           `json:"subject,omitempty"`
	Subjects     []string         `json:"subjects,omitempty" validate:"omitempty,dive,required"`
	Grade        string           `json:"grade,omitempty" validate:"omitempty,grade"`
	Location     string           `json:"location,omitempty"`
	MaxBudget    *decimal.Decimal `json:"max_budget,omitempty" validate:"omitempty,gte=0"`
	TeachingMode string           `json:"teaching_mode,omitempty" validate:"omitempty,teachingmode"`
	MinRating    *float64         `json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// Criteria converts the request into filter criteria, trimming whitespace
// and dropping blank subjects
func (r SearchRequest) Criteria() filter.Criteria {
	var subjects []string
	for _, s := range r.Subjects {
		if s = strings.TrimSpace(s); s != "" {
			subjects = append(subjects, s)
		}
	}

	return filter.Criteria{
		Subject:      strings.TrimSpace(r.Subject),
		Subjects:     subjects,
		Grade:        strings.TrimSpace(r.Grade),
		Location:     strings.TrimSpace(r.Location),
		MaxBudget:    r.MaxBudget,
		TeachingMode: tutor.TeachingMode(r.TeachingMode),
		MinRating:    r.MinRating,
	}
}

// StudentRequest carries the optional student profile for recommendations
type StudentRequest struct {
	Subjects      []string         `json:"student_subjects,omitempty" validate:"omitempty,dive,required"`
	BudgetMin     *decimal.Decimal `json:"budget_min,omitempty" validate:"omitempty,gte=0"`
	BudgetMax     *decimal.Decimal `json:"budget_max,omitempty" validate:"omitempty,gte=0"`
	PreferredMode string           `json:"preferred_mode,omitempty" validate:"omitempty,teachingmode"`
	Lat           *float64         `json:"lat,omitempty" validate:"omitempty,latitude"`
	Lng           *float64         `json:"lng,omitempty" validate:"omitempty,longitude"`
}

// Coordinates returns the student's position when both components were
// given. A lone latitude or longitude is ignored.
func (r StudentRequest) Coordinates() *geo.Coordinates {
	if r.Lat == nil || r.Lng == nil {
		return nil
	}
	return &geo.Coordinates{Lat: *r.Lat, Lng: *r.Lng}
}

// Empty reports whether no profile field was supplied
func (r StudentRequest) Empty() bool {
	return len(r.Subjects) == 0 &&
		r.BudgetMin == nil &&
		r.BudgetMax == nil &&
		r.PreferredMode == "" &&
		r.Lat == nil &&
		r.Lng == nil
}

// Profile builds a student profile for grade. A budget needs a maximum;
// a missing minimum is zero.
func (r StudentRequest) Profile(grade string, coords *geo.Coordinates) recommend.StudentProfile {
	p := recommend.StudentProfile{
		Subjects:      r.Subjects,
		Grade:         grade,
		Coordinates:   coords,
		PreferredMode: tutor.TeachingMode(r.PreferredMode),
	}
	if c := r.Coordinates(); c != nil {
		p.Coordinates = c
	}
	if r.BudgetMax != nil {
		b := recommend.Budget{Min: decimal.Zero, Max: *r.BudgetMax}
		if r.BudgetMin != nil {
			b.Min = *r.BudgetMin
		}
		p.Budget = &b
	}
	return p
}

// BookingRequest carries a session booking
type BookingRequest struct {
	TutorID       string `json:"tutor_id" validate:"required"`
	StudentName   string `json:"student_name" validate:"required,max=100"`
	Subject       string `json:"subject" validate:"required"`
	Grade         string `json:"grade" validate:"required,grade"`
	ScheduledDate string `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	TimeSlot      string `json:"time_slot" validate:"required"`
	TeachingMode  string `json:"teaching_mode" validate:"required,oneof=home-tuition center-based"`
	Location      string `json:"location" validate:"required"`
	Notes         string `json:"notes,omitempty" validate:"max=500"`
}

// StatusRequest carries a booking status change
type StatusRequest struct {
	ID     string `json:"id" validate:"required,uuid"`
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// DistanceRequest carries two coordinate pairs
type DistanceRequest struct {
	Lat1 float64 `json:"lat1" validate:"latitude"`
	Lng1 float64 `json:"lng1" validate:"longitude"`
	Lat2 float64 `json:"lat2" validate:"latitude"`
	Lng2 float64 `json:"lng2" validate:"longitude"`
}
