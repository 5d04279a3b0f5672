package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vijay-prabhu/tutormatch/internal/tutor"
)

// NewBooking prepares a pending booking with t. The fee is the tutor's quote
// for grade, and mode must be one the tutor offers.
func NewBooking(t *tutor.Tutor, studentName, subject, grade, date, slot string, mode tutor.TeachingMode, location string, notes *string) (*Booking, error) {
	if !t.Teaches(subject) {
		return nil, fmt.Errorf("%s does not teach %s", t.Name, subject)
	}
	if mode == tutor.ModeBoth || !t.TeachingMode.Offers(mode) {
		return nil, fmt.Errorf("%s does not offer %s sessions", t.Name, mode)
	}

	_, fee := tutor.QuoteFee(t, grade)

	return &Booking{
		TutorID:       t.ID,
		StudentName:   studentName,
		Subject:       subject,
		Grade:         grade,
		ScheduledDate: date,
		TimeSlot:      slot,
		TeachingMode:  string(mode),
		Location:      location,
		Fee:           fee,
		Status:        BookingPending,
		Notes:         notes,
	}, nil
}

// CreateBooking inserts a new booking
func (db *DB) CreateBooking(ctx context.Context, b *Booking) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Status == "" {
		b.Status = BookingPending
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO bookings (
			id, tutor_id, student_name, subject, grade, scheduled_date, time_slot,
			teaching_mode, location, fee, status, notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		b.ID, b.TutorID, b.StudentName, b.Subject, b.Grade, b.ScheduledDate, b.TimeSlot,
		b.TeachingMode, b.Location, b.Fee, b.Status, NullString(b.Notes), b.CreatedAt, b.UpdatedAt,
	)
	return err
}

// GetBooking retrieves a booking by ID
func (db *DB) GetBooking(ctx context.Context, id string) (*Booking, error) {
	b := &Booking{}
	var notes sql.NullString

	err := db.QueryRowContext(ctx, `
		SELECT id, tutor_id, student_name, subject, grade, scheduled_date, time_slot,
		       teaching_mode, location, fee, status, notes, created_at, updated_at
		FROM bookings WHERE id = ?
	`, id).Scan(
		&b.ID, &b.TutorID, &b.StudentName, &b.Subject, &b.Grade, &b.ScheduledDate, &b.TimeSlot,
		&b.TeachingMode, &b.Location, &b.Fee, &b.Status, &notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	b.Notes = StringPtr(notes)
	return b, nil
}

// ListBookings retrieves bookings, soonest session first
func (db *DB) ListBookings(ctx context.Context, opts BookingListOptions) ([]Booking, error) {
	query := `
		SELECT id, tutor_id, student_name, subject, grade, scheduled_date, time_slot,
		       teaching_mode, location, fee, status, notes, created_at, updated_at
		FROM bookings WHERE 1=1
	`
	args := []interface{}{}

	if opts.TutorID != nil {
		query += " AND tutor_id = ?"
		args = append(args, *opts.TutorID)
	}
	if opts.Status != nil {
		query += " AND status = ?"
		args = append(args, *opts.Status)
	}

	query += " ORDER BY scheduled_date ASC, created_at ASC"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		b := Booking{}
		var notes sql.NullString

		if err := rows.Scan(
			&b.ID, &b.TutorID, &b.StudentName, &b.Subject, &b.Grade, &b.ScheduledDate, &b.TimeSlot,
			&b.TeachingMode, &b.Location, &b.Fee, &b.Status, &notes, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}

		b.Notes = StringPtr(notes)
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// UpdateBookingStatus moves a booking to status. Completed and cancelled
// bookings are final.
func (db *DB) UpdateBookingStatus(ctx context.Context, id string, status BookingStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid booking status: %s", status)
	}

	existing, err := db.GetBooking(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("booking not found: %s", id)
	}
	if existing.Status == BookingCompleted || existing.Status == BookingCancelled {
		return fmt.Errorf("booking %s is already %s", id, existing.Status)
	}

	_, err = db.ExecContext(ctx, `
		UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?
	`, status, time.Now(), id)
	return err
}
