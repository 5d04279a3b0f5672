package matcher

import (
	"github.com/shopspring/decimal"

	"github.com/vijay-prabhu/tutormatch/internal/tutor"
	"github.com/vijay-prabhu/tutormatch/internal/validation"
)

// RecommendRequest asks for ranked tutors
type RecommendRequest struct {
	Search  validation.SearchRequest  `json:"criteria"`
	Student validation.StudentRequest `json:"student"`

	// Near is an address placed with the geocoder when no coordinates are given
	Near string `json:"near,omitempty"`

	// All scores the whole pool instead of the search result
	All bool `json:"all,omitempty"`

	// Limit caps the result; 0 uses the configured limit
	Limit int `json:"limit,omitempty" validate:"gte=0"`
}

// ImportResult summarizes a tutor import
type ImportResult struct {
	Read     int      `json:"read"`
	Imported int      `json:"imported"`
	Rejected []string `json:"rejected,omitempty"`
}

// FeeQuote is the session fee a tutor charges for a grade
type FeeQuote struct {
	TutorID   string          `json:"tutor_id"`
	TutorName string          `json:"tutor_name"`
	Grade     string          `json:"grade,omitempty"`
	Bracket   tutor.Bracket   `json:"bracket"`
	Fee       decimal.Decimal `json:"fee"`
}

// BracketInfo shows how a grade resolves under both named defaults
type BracketInfo struct {
	Grade   string        `json:"grade"`
	Known   bool          `json:"known"`
	Filter  tutor.Bracket `json:"filter_bracket"`
	Display tutor.Bracket `json:"display_bracket"`
}

// DistanceResult is the great-circle distance between two places
type DistanceResult struct {
	From       string  `json:"from,omitempty"`
	To         string  `json:"to,omitempty"`
	Lat1       float64 `json:"lat1"`
	Lng1       float64 `json:"lng1"`
	Lat2       float64 `json:"lat2"`
	Lng2       float64 `json:"lng2"`
	Kilometers float64 `json:"km"`
}
