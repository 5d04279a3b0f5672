package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vijay-prabhu/tutormatch/internal/tutor"
)

func money(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func float(v float64) *float64 {
	return &v
}

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

func TestValidateStruct_SearchRequest(t *testing.T) {
	tests := []struct {
		name      string
		input     SearchRequest
		wantErr   bool
		wantField string
	}{
		{
			name:  "empty request",
			input: SearchRequest{},
		},
		{
			name: "all fields valid",
			input: SearchRequest{
				Subject:      "Mathematics",
				Subjects:     []string{"Physics"},
				Grade:        "7th Grade",
				Location:     "Bangalore",
				MaxBudget:    money(2500),
				TeachingMode: "both",
				MinRating:    float(4),
			},
		},
		{
			name:  "grade compares case-insensitively",
			input: SearchRequest{Grade: "graduation"},
		},
		{
			name:      "unknown grade",
			input:     SearchRequest{Grade: "13th Grade"},
			wantErr:   true,
			wantField: "grade",
		},
		{
			name:      "negative budget",
			input:     SearchRequest{MaxBudget: money(-5)},
			wantErr:   true,
			wantField: "max_budget",
		},
		{
			name:      "unknown teaching mode",
			input:     SearchRequest{TeachingMode: "online"},
			wantErr:   true,
			wantField: "teaching_mode",
		},
		{
			name:      "rating above five",
			input:     SearchRequest{MinRating: float(5.5)},
			wantErr:   true,
			wantField: "min_rating",
		},
		{
			name:      "NaN rating",
			input:     SearchRequest{MinRating: float(math.NaN())},
			wantErr:   true,
			wantField: "min_rating",
		},
		{
			name:      "blank subject in list",
			input:     SearchRequest{Subjects: []string{"Physics", ""}},
			wantErr:   true,
			wantField: "subjects[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if got := err.Errors()[0].Field(); got != tt.wantField {
				t.Errorf("Field() = %q, want %q", got, tt.wantField)
			}
		})
	}
}

func TestValidateStruct_BookingRequest(t *testing.T) {
	valid := BookingRequest{
		TutorID:       "t-1",
		StudentName:   "Arjun",
		Subject:       "Mathematics",
		Grade:         "8th Grade",
		ScheduledDate: "2026-11-02",
		TimeSlot:      "4:00 PM - 5:00 PM",
		TeachingMode:  "home-tuition",
		Location:      "Indiranagar, Bangalore",
	}

	if err := ValidateStruct(&valid); err != nil {
		t.Fatalf("expected valid booking, got %v", err)
	}

	tests := []struct {
		name   string
		modify func(*BookingRequest)
		tag    string
	}{
		{"missing student", func(b *BookingRequest) { b.StudentName = "" }, "required"},
		{"bad date", func(b *BookingRequest) { b.ScheduledDate = "02/11/2026" }, "datetime"},
		{"mode both not bookable", func(b *BookingRequest) { b.TeachingMode = "both" }, "oneof"},
		{"bad grade", func(b *BookingRequest) { b.Grade = "Kindergarten" }, "grade"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.modify(&b)

			err := ValidateStruct(&b)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if got := err.Errors()[0].Tag(); got != tt.tag {
				t.Errorf("Tag() = %q, want %q", got, tt.tag)
			}
		})
	}
}

func TestValidateTutor(t *testing.T) {
	valid := tutor.Tutor{
		Name:         "Dr. Priya Sharma",
		Email:        "priya@example.com",
		Subjects:     []string{"Mathematics"},
		Experience:   8,
		Fees:         tutor.FeeSchedule{}.WithDefaults(),
		TeachingMode: tutor.ModeBoth,
		Rating:       4.8,
		Location:     tutor.Location{City: "Bangalore"},
	}

	if err := ValidateTutor(&valid); err != nil {
		t.Fatalf("expected valid tutor, got %v", err)
	}

	tests := []struct {
		name     string
		modify   func(*tutor.Tutor)
		contains string
	}{
		{"no subjects", func(tr *tutor.Tutor) { tr.Subjects = nil }, "subjects must contain at least 1 items"},
		{"rating out of range", func(tr *tutor.Tutor) { tr.Rating = 6 }, "rating must be less than or equal to 5"},
		{"bad mode", func(tr *tutor.Tutor) { tr.TeachingMode = "remote" }, "teaching_mode must be one of"},
		{"missing city", func(tr *tutor.Tutor) { tr.Location.City = "" }, "location.city is required"},
		{"zero fee", func(tr *tutor.Tutor) { tr.Fees.Grade10 = decimal.Zero }, "fees.grade10 must be greater than 0"},
		{"bad email", func(tr *tutor.Tutor) { tr.Email = "not-an-email" }, "email must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := valid
			tt.modify(&tr)

			err := ValidateTutor(&tr)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.contains)
			}
		})
	}
}

func TestSearchRequest_Criteria(t *testing.T) {
	r := SearchRequest{
		Subject:      " Physics ",
		Subjects:     []string{"Mathematics", "  "},
		Grade:        "7th Grade ",
		Location:     " Pune",
		TeachingMode: "center-based",
	}

	c := r.Criteria()

	if c.Subject != "Physics" {
		t.Errorf("Subject = %q, want Physics", c.Subject)
	}
	if len(c.Subjects) != 1 || c.Subjects[0] != "Mathematics" {
		t.Errorf("Subjects = %v, want [Mathematics]", c.Subjects)
	}
	if c.Grade != "7th Grade" || c.Location != "Pune" {
		t.Errorf("Grade/Location = %q/%q, want trimmed values", c.Grade, c.Location)
	}
	if c.TeachingMode != tutor.ModeCenterBased {
		t.Errorf("TeachingMode = %q, want center-based", c.TeachingMode)
	}
	if (SearchRequest{Subjects: []string{" "}}).Criteria().IsEmpty() != true {
		t.Error("blank-only subjects should produce empty criteria")
	}
}

func TestStudentRequest_Profile(t *testing.T) {
	tests := []struct {
		name       string
		req        StudentRequest
		wantBudget bool
		wantMin    int64
		wantCoords bool
	}{
		{"empty", StudentRequest{}, false, 0, false},
		{"max only", StudentRequest{BudgetMax: money(3000)}, true, 0, false},
		{"min and max", StudentRequest{BudgetMin: money(1000), BudgetMax: money(3000)}, true, 1000, false},
		{"min without max", StudentRequest{BudgetMin: money(1000)}, false, 0, false},
		{"full coordinates", StudentRequest{Lat: float(12.97), Lng: float(77.59)}, false, 0, true},
		{"lone latitude", StudentRequest{Lat: float(12.97)}, false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.req.Profile("9th Grade", nil)
			if p.Grade != "9th Grade" {
				t.Errorf("Grade = %q, want 9th Grade", p.Grade)
			}
			if (p.Budget != nil) != tt.wantBudget {
				t.Fatalf("Budget = %+v, wantBudget %v", p.Budget, tt.wantBudget)
			}
			if p.Budget != nil && !p.Budget.Min.Equal(decimal.NewFromInt(tt.wantMin)) {
				t.Errorf("Budget.Min = %s, want %d", p.Budget.Min, tt.wantMin)
			}
			if (p.Coordinates != nil) != tt.wantCoords {
				t.Errorf("Coordinates = %v, wantCoords %v", p.Coordinates, tt.wantCoords)
			}
		})
	}
}

func TestRequestValidationError_Error(t *testing.T) {
	err := ValidateStruct(&DistanceRequest{Lat1: 91, Lng1: 0, Lat2: 0, Lng2: 181})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(err.Errors()))
	}

	msg := err.Error()
	if !strings.Contains(msg, "lat1 must be a valid latitude") || !strings.Contains(msg, "; ") {
		t.Errorf("Error() = %q", msg)
	}
	if (&RequestValidationError{}).Error() != "validation failed" {
		t.Error("empty error should report generic message")
	}
}
