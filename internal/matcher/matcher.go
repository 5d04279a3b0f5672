// Package matcher runs searches, recommendations and bookings against the
// tutor store. It is shared by the CLI and the MCP server.
package matcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vijay-prabhu/tutormatch/internal/config"
	"github.com/vijay-prabhu/tutormatch/internal/database"
	"github.com/vijay-prabhu/tutormatch/internal/filter"
	"github.com/vijay-prabhu/tutormatch/internal/geo"
	"github.com/vijay-prabhu/tutormatch/internal/logging"
	"github.com/vijay-prabhu/tutormatch/internal/recommend"
	"github.com/vijay-prabhu/tutormatch/internal/tutor"
	"github.com/vijay-prabhu/tutormatch/internal/validation"
)

// Matcher orchestrates the tutor store, the filter engine and the scorer
type Matcher struct {
	db       *database.DB
	filter   *filter.Filter
	geocoder *geo.Geocoder
	config   *config.Config
}

// New creates a new Matcher
func New(db *database.DB, cfg *config.Config) *Matcher {
	return &Matcher{
		db:       db,
		filter:   filter.New(filter.Config{BrowseLimit: cfg.Search.BrowseLimit}),
		geocoder: geo.NewGeocoder(cfg.Geocode.Cities),
		config:   cfg,
	}
}

// Geocoder returns the city table used to place addresses
func (m *Matcher) Geocoder() *geo.Geocoder {
	return m.geocoder
}

// Pool loads every stored tutor in listing order
func (m *Matcher) Pool(ctx context.Context) ([]tutor.Tutor, error) {
	tutors, err := m.db.ListTutors(ctx, database.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to load tutors: %w", err)
	}
	return tutors, nil
}

// Search validates the request and runs the filter engine over the pool
func (m *Matcher) Search(ctx context.Context, req validation.SearchRequest) (filter.Result, error) {
	if err := validation.ValidateStruct(&req); err != nil {
		return filter.Result{}, err
	}

	pool, err := m.Pool(ctx)
	if err != nil {
		return filter.Result{}, err
	}

	start := time.Now()
	result := m.filter.Apply(pool, req.Criteria())

	logging.Debug("search completed",
		zap.String("kind", string(result.Kind)),
		zap.Int("pool", len(pool)),
		zap.Int("matched", len(result.Tutors)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return result, nil
}

// Recommend ranks tutors for a student. Without --all it scores the search
// result; otherwise the whole pool. A student profile is derived from the
// criteria when none is given.
func (m *Matcher) Recommend(ctx context.Context, req RecommendRequest) ([]recommend.Recommendation, error) {
	if err := validation.ValidateStruct(&req); err != nil {
		return nil, err
	}

	c := req.Search.Criteria()

	pool, err := m.Pool(ctx)
	if err != nil {
		return nil, err
	}

	candidates := pool
	if !req.All {
		candidates = m.filter.Apply(pool, c).Tutors
	}

	coords := m.studentCoordinates(req, c)

	var student recommend.StudentProfile
	if req.Student.Empty() {
		student = recommend.ProfileFromCriteria(c, coords)
	} else {
		student = req.Student.Profile(c.Grade, coords)
	}

	limit := req.Limit
	if limit == 0 {
		limit = m.config.Recommend.Limit
	}

	recs := recommend.Top(recommend.Recommend(candidates, student, c), limit)

	logging.Debug("recommendations ranked",
		zap.Int("pool", len(pool)),
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(recs)),
		zap.Bool("located", coords != nil),
	)

	return recs, nil
}

// studentCoordinates picks explicit coordinates, then the geocoded --near
// address, then the geocoded search location
func (m *Matcher) studentCoordinates(req RecommendRequest, c filter.Criteria) *geo.Coordinates {
	if coords := req.Student.Coordinates(); coords != nil {
		return coords
	}
	for _, address := range []string{req.Near, c.Location} {
		if address == "" {
			continue
		}
		if coords, ok := m.geocoder.Lookup(address); ok {
			return &coords
		}
	}
	return nil
}

// GetTutor loads a tutor, returning an error when it does not exist
func (m *Matcher) GetTutor(ctx context.Context, id string) (*tutor.Tutor, error) {
	t, err := m.db.GetTutor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tutor: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("tutor not found: %s", id)
	}
	return t, nil
}

// Quote returns the fee a tutor charges for grade. An empty grade is quoted
// at the grade 5-9 rate.
func (m *Matcher) Quote(ctx context.Context, tutorID, grade string) (*FeeQuote, error) {
	if grade != "" && !tutor.IsGrade(grade) {
		return nil, fmt.Errorf("unknown grade: %s", grade)
	}

	t, err := m.GetTutor(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	bracket, fee := tutor.QuoteFee(t, grade)
	return &FeeQuote{
		TutorID:   t.ID,
		TutorName: t.Name,
		Grade:     grade,
		Bracket:   bracket,
		Fee:       fee,
	}, nil
}

// Bracket resolves grade under both the filtering and the display default
func Bracket(grade string) *BracketInfo {
	return &BracketInfo{
		Grade:   grade,
		Known:   tutor.IsGrade(grade),
		Filter:  tutor.ResolveBracket(grade, tutor.DefaultFilterBracket),
		Display: tutor.ResolveBracket(grade, tutor.DefaultDisplayBracket),
	}
}

// Distance measures between two coordinate pairs
func Distance(req validation.DistanceRequest) (*DistanceResult, error) {
	if err := validation.ValidateStruct(&req); err != nil {
		return nil, err
	}
	return &DistanceResult{
		Lat1:       req.Lat1,
		Lng1:       req.Lng1,
		Lat2:       req.Lat2,
		Lng2:       req.Lng2,
		Kilometers: geo.Distance(req.Lat1, req.Lng1, req.Lat2, req.Lng2),
	}, nil
}

// DistanceBetween measures between two addresses placed with the geocoder
func (m *Matcher) DistanceBetween(from, to string) (*DistanceResult, error) {
	a, ok := m.geocoder.Lookup(from)
	if !ok {
		return nil, fmt.Errorf("unknown location: %s (known: %s)", from, strings.Join(m.geocoder.Cities(), ", "))
	}
	b, ok := m.geocoder.Lookup(to)
	if !ok {
		return nil, fmt.Errorf("unknown location: %s (known: %s)", to, strings.Join(m.geocoder.Cities(), ", "))
	}

	return &DistanceResult{
		From:       from,
		To:         to,
		Lat1:       a.Lat,
		Lng1:       a.Lng,
		Lat2:       b.Lat,
		Lng2:       b.Lng,
		Kilometers: a.DistanceTo(b),
	}, nil
}

// Book validates a booking request, quotes the fee and stores a pending booking
func (m *Matcher) Book(ctx context.Context, req validation.BookingRequest) (*database.Booking, error) {
	if err := validation.ValidateStruct(&req); err != nil {
		return nil, err
	}

	t, err := m.GetTutor(ctx, req.TutorID)
	if err != nil {
		return nil, err
	}

	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}

	b, err := database.NewBooking(t, req.StudentName, req.Subject, req.Grade,
		req.ScheduledDate, req.TimeSlot, tutor.TeachingMode(req.TeachingMode), req.Location, notes)
	if err != nil {
		return nil, err
	}

	if err := m.db.CreateBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logging.Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("tutor_id", t.ID),
		zap.String("fee", b.Fee.String()),
	)

	return b, nil
}

// UpdateBookingStatus validates and applies a booking status change
func (m *Matcher) UpdateBookingStatus(ctx context.Context, req validation.StatusRequest) (*database.Booking, error) {
	if err := validation.ValidateStruct(&req); err != nil {
		return nil, err
	}

	if err := m.db.UpdateBookingStatus(ctx, req.ID, database.BookingStatus(req.Status)); err != nil {
		return nil, err
	}

	return m.db.GetBooking(ctx, req.ID)
}

// ImportJSON reads a JSON array of tutors and imports them
func (m *Matcher) ImportJSON(ctx context.Context, r io.Reader, progress ProgressCallback) (*ImportResult, error) {
	newProgressTracker(progress).report(PhaseDecoding, 0, 0, "Reading tutors")
	var tutors []tutor.Tutor
	if err := json.NewDecoder(r).Decode(&tutors); err != nil {
		return nil, fmt.Errorf("failed to decode tutors: %w", err)
	}

	return m.Import(ctx, tutors, progress)
}

// Import applies fee defaults, validates every tutor and stores the valid
// ones in one transaction. Invalid records are reported, not stored.
func (m *Matcher) Import(ctx context.Context, tutors []tutor.Tutor, progress ProgressCallback) (*ImportResult, error) {
	tracker := newProgressTracker(progress)
	result := &ImportResult{Read: len(tutors)}

	valid := make([]tutor.Tutor, 0, len(tutors))
	for i := range tutors {
		t := tutors[i]
		t.Fees = t.Fees.WithDefaults()

		if err := validation.ValidateTutor(&t); err != nil {
			name := t.Name
			if name == "" {
				name = fmt.Sprintf("record %d", i+1)
			}
			result.Rejected = append(result.Rejected, fmt.Sprintf("%s: %v", name, err))
			logging.Warn("tutor rejected", zap.String("name", name), zap.Error(err))
		} else {
			valid = append(valid, t)
		}
		tracker.report(PhaseValidating, i+1, len(tutors), "Validating tutors")
	}

	tracker.report(PhaseStoring, 0, len(valid), "Storing tutors")
	if len(valid) > 0 {
		if err := m.db.ImportTutors(ctx, valid); err != nil {
			return nil, fmt.Errorf("failed to store tutors: %w", err)
		}
	}
	result.Imported = len(valid)
	tracker.report(PhaseStoring, len(valid), len(valid), "Import complete")

	logging.Info("tutors imported",
		zap.Int("read", result.Read),
		zap.Int("imported", result.Imported),
		zap.Int("rejected", len(result.Rejected)),
	)

	return result, nil
}
