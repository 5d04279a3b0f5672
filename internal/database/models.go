package database

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the state of a booking
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is a known booking status
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking is a session a student booked with a tutor
type Booking struct {
	ID            string          `json:"id"`
	TutorID       string          `json:"tutor_id"`
	StudentName   string          `json:"student_name"`
	Subject       string          `json:"subject"`
	Grade         string          `json:"grade"`
	ScheduledDate string          `json:"scheduled_date"`
	TimeSlot      string          `json:"time_slot"`
	TeachingMode  string          `json:"teaching_mode"`
	Location      string          `json:"location"`
	Fee           decimal.Decimal `json:"fee"`
	Status        BookingStatus   `json:"status"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SubjectCount is the number of tutors teaching a subject
type SubjectCount struct {
	Subject string `json:"subject"`
	Tutors  int    `json:"tutors"`
}

// Stats represents aggregate statistics
type Stats struct {
	TotalTutors       int            `json:"total_tutors"`
	VerifiedTutors    int            `json:"verified_tutors"`
	Cities            int            `json:"cities"`
	AvgRating         float64        `json:"avg_rating"`
	AvgExperience     float64        `json:"avg_experience"`
	TopSubjects       []SubjectCount `json:"top_subjects"`
	TotalBookings     int            `json:"total_bookings"`
	PendingBookings   int            `json:"pending_bookings"`
	ConfirmedBookings int            `json:"confirmed_bookings"`
	CompletedBookings int            `json:"completed_bookings"`
	CancelledBookings int            `json:"cancelled_bookings"`
}

// ListOptions contains options for listing tutors
type ListOptions struct {
	City     *string
	Subject  *string
	Verified *bool
	Limit    int
	Offset   int
}

// BookingListOptions contains options for listing bookings
type BookingListOptions struct {
	TutorID *string
	Status  *BookingStatus
	Limit   int
}

// NullString is a helper to convert *string to sql.NullString
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// NullIfEmpty stores an empty string as NULL
func NullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// NullFloat64 is a helper to convert *float64 to sql.NullFloat64
func NullFloat64(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// StringPtr converts sql.NullString to *string
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// encodeList stores a string slice as a JSON array
func encodeList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(items)
	return string(data)
}

// decodeList parses a JSON array column
func decodeList(data string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}
