package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vijay-prabhu/tutormatch/internal/geo"
	"github.com/vijay-prabhu/tutormatch/internal/tutor"
)

const tutorColumns = `
	id, name, email, phone, qualifications, subjects, experience,
	fee_grade1to4, fee_grade5to9, fee_grade10, fee_grade11to12, fee_graduation,
	teaching_mode, rating, total_reviews, is_verified,
	address, city, state, latitude, longitude,
	availability_days, availability_slots, joined_at
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// UpsertTutor inserts a tutor or replaces the stored record with the same ID.
// Missing fee brackets are filled with the ingestion defaults.
func (db *DB) UpsertTutor(ctx context.Context, t *tutor.Tutor) error {
	return upsertTutor(ctx, db, t)
}

// ImportTutors upserts a batch of tutors in a single transaction
func (db *DB) ImportTutors(ctx context.Context, tutors []tutor.Tutor) error {
	return db.Transaction(ctx, func(tx *sql.Tx) error {
		for i := range tutors {
			if err := upsertTutor(ctx, tx, &tutors[i]); err != nil {
				return fmt.Errorf("failed to import tutor %q: %w", tutors[i].Name, err)
			}
		}
		return nil
	})
}

func upsertTutor(ctx context.Context, ex execer, t *tutor.Tutor) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.JoinedAt.IsZero() {
		t.JoinedAt = time.Now().UTC()
	}
	t.Fees = t.Fees.WithDefaults()
	now := time.Now()

	var lat, lng *float64
	if t.Location.Coordinates != nil {
		lat, lng = &t.Location.Coordinates.Lat, &t.Location.Coordinates.Lng
	}

	_, err := ex.ExecContext(ctx, `
		INSERT INTO tutors (`+tutorColumns+`, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, email = excluded.email, phone = excluded.phone,
			qualifications = excluded.qualifications, subjects = excluded.subjects,
			experience = excluded.experience,
			fee_grade1to4 = excluded.fee_grade1to4, fee_grade5to9 = excluded.fee_grade5to9,
			fee_grade10 = excluded.fee_grade10, fee_grade11to12 = excluded.fee_grade11to12,
			fee_graduation = excluded.fee_graduation,
			teaching_mode = excluded.teaching_mode, rating = excluded.rating,
			total_reviews = excluded.total_reviews, is_verified = excluded.is_verified,
			address = excluded.address, city = excluded.city, state = excluded.state,
			latitude = excluded.latitude, longitude = excluded.longitude,
			availability_days = excluded.availability_days,
			availability_slots = excluded.availability_slots,
			joined_at = excluded.joined_at, updated_at = excluded.updated_at
	`,
		t.ID, t.Name, NullIfEmpty(t.Email), NullIfEmpty(t.Phone),
		encodeList(t.Qualifications), encodeList(t.Subjects), t.Experience,
		t.Fees.Grade1to4, t.Fees.Grade5to9, t.Fees.Grade10, t.Fees.Grade11to12, t.Fees.Graduation,
		t.TeachingMode, t.Rating, t.TotalReviews, t.Verified,
		NullIfEmpty(t.Location.Address), t.Location.City, NullIfEmpty(t.Location.State),
		NullFloat64(lat), NullFloat64(lng),
		encodeList(t.Availability.Days), encodeList(t.Availability.TimeSlots), t.JoinedAt,
		now, now,
	)
	return err
}

// GetTutor retrieves a tutor by ID
func (db *DB) GetTutor(ctx context.Context, id string) (*tutor.Tutor, error) {
	row := db.QueryRowContext(ctx, `SELECT `+tutorColumns+` FROM tutors WHERE id = ?`, id)

	t, err := scanTutor(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListTutors retrieves tutors ordered by rating, highest first
func (db *DB) ListTutors(ctx context.Context, opts ListOptions) ([]tutor.Tutor, error) {
	query := `SELECT ` + tutorColumns + ` FROM tutors WHERE 1=1`
	args := []interface{}{}

	if opts.City != nil {
		query += " AND LOWER(city) LIKE LOWER(?)"
		args = append(args, "%"+*opts.City+"%")
	}
	if opts.Subject != nil {
		query += " AND EXISTS (SELECT 1 FROM json_each(tutors.subjects) WHERE value = ?)"
		args = append(args, *opts.Subject)
	}
	if opts.Verified != nil {
		query += " AND is_verified = ?"
		args = append(args, *opts.Verified)
	}

	query += " ORDER BY rating DESC, total_reviews DESC, name ASC, id ASC"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
		if opts.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", opts.Offset)
		}
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tutors []tutor.Tutor
	for rows.Next() {
		t, err := scanTutor(rows)
		if err != nil {
			return nil, err
		}
		tutors = append(tutors, *t)
	}

	return tutors, rows.Err()
}

// DeleteTutor removes a tutor and their bookings
func (db *DB) DeleteTutor(ctx context.Context, id string) error {
	result, err := db.ExecContext(ctx, "DELETE FROM tutors WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("tutor not found: %s", id)
	}
	return nil
}

// ListCities returns the distinct tutor cities in alphabetical order
func (db *DB) ListCities(ctx context.Context) ([]string, error) {
	rows, err := db.QueryContext(ctx, "SELECT DISTINCT city FROM tutors ORDER BY city")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

// GetStats returns aggregate statistics for tutors and bookings
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	if err := db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(is_verified), 0),
			COUNT(DISTINCT LOWER(city)),
			COALESCE(AVG(rating), 0),
			COALESCE(AVG(experience), 0)
		FROM tutors
	`).Scan(
		&stats.TotalTutors, &stats.VerifiedTutors, &stats.Cities,
		&stats.AvgRating, &stats.AvgExperience,
	); err != nil {
		return nil, err
	}

	if err := db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'confirmed' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0)
		FROM bookings
	`).Scan(
		&stats.TotalBookings, &stats.PendingBookings, &stats.ConfirmedBookings,
		&stats.CompletedBookings, &stats.CancelledBookings,
	); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT s.value, COUNT(*) AS n
		FROM tutors, json_each(tutors.subjects) AS s
		GROUP BY s.value
		ORDER BY n DESC, s.value ASC
		LIMIT 5
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sc SubjectCount
		if err := rows.Scan(&sc.Subject, &sc.Tutors); err != nil {
			return nil, err
		}
		stats.TopSubjects = append(stats.TopSubjects, sc)
	}

	return stats, rows.Err()
}

func scanTutor(row rowScanner) (*tutor.Tutor, error) {
	t := &tutor.Tutor{}
	var (
		email, phone, address, state sql.NullString
		qualifications, subjects     string
		days, slots                  string
		lat, lng                     sql.NullFloat64
	)

	if err := row.Scan(
		&t.ID, &t.Name, &email, &phone, &qualifications, &subjects, &t.Experience,
		&t.Fees.Grade1to4, &t.Fees.Grade5to9, &t.Fees.Grade10, &t.Fees.Grade11to12, &t.Fees.Graduation,
		&t.TeachingMode, &t.Rating, &t.TotalReviews, &t.Verified,
		&address, &t.Location.City, &state, &lat, &lng,
		&days, &slots, &t.JoinedAt,
	); err != nil {
		return nil, err
	}

	t.Email = email.String
	t.Phone = phone.String
	t.Location.Address = address.String
	t.Location.State = state.String
	if lat.Valid && lng.Valid {
		t.Location.Coordinates = &geo.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}

	var err error
	if t.Qualifications, err = decodeList(qualifications); err != nil {
		return nil, fmt.Errorf("failed to decode qualifications for %s: %w", t.ID, err)
	}
	if t.Subjects, err = decodeList(subjects); err != nil {
		return nil, fmt.Errorf("failed to decode subjects for %s: %w", t.ID, err)
	}
	if t.Availability.Days, err = decodeList(days); err != nil {
		return nil, fmt.Errorf("failed to decode availability for %s: %w", t.ID, err)
	}
	if t.Availability.TimeSlots, err = decodeList(slots); err != nil {
		return nil, fmt.Errorf("failed to decode time slots for %s: %w", t.ID, err)
	}

	return t, nil
}
