package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/vijay-prabhu/tutormatch/internal/database"
	"github.com/vijay-prabhu/tutormatch/internal/filter"
	"github.com/vijay-prabhu/tutormatch/internal/matcher"
	"github.com/vijay-prabhu/tutormatch/internal/recommend"
	"github.com/vijay-prabhu/tutormatch/internal/tutor"
)

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []tutor.Tutor:
		return tutorsTable(w, v)
	case *tutor.Tutor:
		return tutorDetail(w, v)
	case filter.Result:
		return resultTable(w, v)
	case []recommend.Recommendation:
		return recommendationsTable(w, v)
	case []database.Booking:
		return bookingsTable(w, v)
	case *database.Booking:
		return bookingDetail(w, v)
	case *database.Stats:
		return statsTable(w, v)
	case *matcher.FeeQuote:
		return feeQuote(w, v)
	case *matcher.BracketInfo:
		return bracketInfo(w, v)
	case *matcher.DistanceResult:
		return distanceResult(w, v)
	case *matcher.ImportResult:
		return importResult(w, v)
	case []string:
		for _, s := range v {
			fmt.Fprintln(w, s)
		}
		return nil
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func tutorsTable(w io.Writer, tutors []tutor.Tutor) error {
	if len(tutors) == 0 {
		fmt.Fprintln(w, "No tutors found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "City", "Subjects", "Rating", "Exp", "Mode", "Fee 5-9")

	for _, t := range tutors {
		if err := table.Append([]string{
			shortID(t.ID),
			truncate(verifiedName(&t), 28),
			truncate(t.Location.City, 16),
			truncate(strings.Join(t.Subjects, ", "), 30),
			formatRating(t.Rating, t.TotalReviews),
			strconv.Itoa(t.Experience),
			string(t.TeachingMode),
			t.Fees.For(tutor.Grade5to9).StringFixed(0),
		}); err != nil {
			return err
		}
	}

	return table.Render()
}

func tutorDetail(w io.Writer, t *tutor.Tutor) error {
	fmt.Fprintf(w, "Name:        %s\n", verifiedName(t))
	fmt.Fprintf(w, "ID:          %s\n", t.ID)
	if t.Email != "" {
		fmt.Fprintf(w, "Email:       %s\n", t.Email)
	}
	if t.Phone != "" {
		fmt.Fprintf(w, "Phone:       %s\n", t.Phone)
	}
	fmt.Fprintf(w, "Subjects:    %s\n", strings.Join(t.Subjects, ", "))
	if len(t.Qualifications) > 0 {
		fmt.Fprintf(w, "Education:   %s\n", strings.Join(t.Qualifications, "; "))
	}
	fmt.Fprintf(w, "Experience:  %d years\n", t.Experience)
	fmt.Fprintf(w, "Rating:      %s\n", formatRating(t.Rating, t.TotalReviews))
	fmt.Fprintf(w, "Mode:        %s\n", t.TeachingMode)

	location := t.Location.City
	if t.Location.Address != "" {
		location = t.Location.Address + ", " + location
	}
	if t.Location.State != "" {
		location += ", " + t.Location.State
	}
	fmt.Fprintf(w, "Location:    %s\n", location)
	if t.Location.Coordinates != nil {
		fmt.Fprintf(w, "Coordinates: %.4f, %.4f\n", t.Location.Coordinates.Lat, t.Location.Coordinates.Lng)
	}
	if len(t.Availability.Days) > 0 {
		fmt.Fprintf(w, "Available:   %s", strings.Join(t.Availability.Days, ", "))
		if len(t.Availability.TimeSlots) > 0 {
			fmt.Fprintf(w, " (%s)", strings.Join(t.Availability.TimeSlots, ", "))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fees per session:")
	for _, b := range tutor.Brackets {
		fmt.Fprintf(w, "  %-14s %s\n", b.Label(), t.Fees.For(b).StringFixed(0))
	}

	return nil
}

func resultTable(w io.Writer, r filter.Result) error {
	switch r.Kind {
	case filter.KindBrowse:
		fmt.Fprintf(w, "Browsing %d tutors (no criteria given)\n\n", len(r.Tutors))
	default:
		fmt.Fprintf(w, "%d tutors match\n\n", len(r.Tutors))
	}
	return tutorsTable(w, r.Tutors)
}

func recommendationsTable(w io.Writer, recs []recommend.Recommendation) error {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No recommendations.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("#", "Name", "City", "Score", "Distance", "Why")

	for i, r := range recs {
		distance := "-"
		if r.Distance != nil {
			distance = fmt.Sprintf("%.1f km", *r.Distance)
		}

		if err := table.Append([]string{
			strconv.Itoa(i + 1),
			truncate(verifiedName(&r.Tutor), 28),
			truncate(r.Tutor.Location.City, 16),
			strconv.FormatFloat(r.Score, 'f', 1, 64),
			distance,
			strings.Join(r.Reasons, "; "),
		}); err != nil {
			return err
		}
	}

	return table.Render()
}

func bookingsTable(w io.Writer, bookings []database.Booking) error {
	if len(bookings) == 0 {
		fmt.Fprintln(w, "No bookings found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Date", "Slot", "Student", "Subject", "Grade", "Fee", "Status")

	for _, b := range bookings {
		if err := table.Append([]string{
			shortID(b.ID),
			b.ScheduledDate,
			b.TimeSlot,
			truncate(b.StudentName, 20),
			b.Subject,
			b.Grade,
			b.Fee.StringFixed(0),
			string(b.Status),
		}); err != nil {
			return err
		}
	}

	return table.Render()
}

func bookingDetail(w io.Writer, b *database.Booking) error {
	fmt.Fprintf(w, "Booking:     %s\n", b.ID)
	fmt.Fprintf(w, "Tutor:       %s\n", b.TutorID)
	fmt.Fprintf(w, "Student:     %s\n", b.StudentName)
	fmt.Fprintf(w, "Session:     %s, %s (%s)\n", b.Subject, b.Grade, b.TeachingMode)
	fmt.Fprintf(w, "When:        %s %s\n", b.ScheduledDate, b.TimeSlot)
	fmt.Fprintf(w, "Where:       %s\n", b.Location)
	fmt.Fprintf(w, "Fee:         %s\n", b.Fee.StringFixed(2))
	fmt.Fprintf(w, "Status:      %s\n", b.Status)
	if b.Notes != nil && *b.Notes != "" {
		fmt.Fprintf(w, "Notes:       %s\n", *b.Notes)
	}
	return nil
}

func statsTable(w io.Writer, s *database.Stats) error {
	fmt.Fprintln(w, "Tutor Marketplace Statistics")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Tutors:                 %d\n", s.TotalTutors)
	fmt.Fprintf(w, "Verified:               %d\n", s.VerifiedTutors)
	fmt.Fprintf(w, "Cities:                 %d\n", s.Cities)
	if s.TotalTutors > 0 {
		fmt.Fprintf(w, "Average rating:         %.2f\n", s.AvgRating)
		fmt.Fprintf(w, "Average experience:     %.1f years\n", s.AvgExperience)
	}
	fmt.Fprintf(w, "Bookings:               %d\n", s.TotalBookings)
	fmt.Fprintf(w, "  pending:              %d\n", s.PendingBookings)
	fmt.Fprintf(w, "  confirmed:            %d\n", s.ConfirmedBookings)
	fmt.Fprintf(w, "  completed:            %d\n", s.CompletedBookings)
	fmt.Fprintf(w, "  cancelled:            %d\n", s.CancelledBookings)

	if len(s.TopSubjects) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Top subjects:")
		for _, sc := range s.TopSubjects {
			fmt.Fprintf(w, "  %-20s %d\n", sc.Subject, sc.Tutors)
		}
	}

	return nil
}

func feeQuote(w io.Writer, q *matcher.FeeQuote) error {
	grade := q.Grade
	if grade == "" {
		grade = "(not given)"
	}
	fmt.Fprintf(w, "Tutor:       %s\n", q.TutorName)
	fmt.Fprintf(w, "Grade:       %s\n", grade)
	fmt.Fprintf(w, "Bracket:     %s\n", q.Bracket.Label())
	fmt.Fprintf(w, "Fee:         %s per session\n", q.Fee.StringFixed(0))
	return nil
}

func bracketInfo(w io.Writer, b *matcher.BracketInfo) error {
	grade := b.Grade
	if grade == "" {
		grade = "(not given)"
	} else if !b.Known {
		grade += " (unrecognized)"
	}
	fmt.Fprintf(w, "Grade:       %s\n", grade)
	fmt.Fprintf(w, "Filtering:   %s\n", b.Filter)
	fmt.Fprintf(w, "Display:     %s\n", b.Display)
	return nil
}

func distanceResult(w io.Writer, d *matcher.DistanceResult) error {
	from := fmt.Sprintf("%.4f, %.4f", d.Lat1, d.Lng1)
	if d.From != "" {
		from = d.From + " (" + from + ")"
	}
	to := fmt.Sprintf("%.4f, %.4f", d.Lat2, d.Lng2)
	if d.To != "" {
		to = d.To + " (" + to + ")"
	}
	fmt.Fprintf(w, "From:        %s\n", from)
	fmt.Fprintf(w, "To:          %s\n", to)
	fmt.Fprintf(w, "Distance:    %.1f km\n", d.Kilometers)
	return nil
}

func importResult(w io.Writer, r *matcher.ImportResult) error {
	fmt.Fprintf(w, "Read %d tutors, imported %d\n", r.Read, r.Imported)
	if len(r.Rejected) > 0 {
		fmt.Fprintf(w, "Rejected %d:\n", len(r.Rejected))
		for _, msg := range r.Rejected {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	}
	return nil
}

func verifiedName(t *tutor.Tutor) string {
	if t.Verified {
		return t.Name + " ✓"
	}
	return t.Name
}

func formatRating(rating float64, reviews int) string {
	return fmt.Sprintf("%.1f (%d)", rating, reviews)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
