package output

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/vijay-prabhu/tutormatch/internal/tutor"
)

var tutorCSVHeader = []string{
	"id", "name", "email", "phone", "subjects", "experience",
	"fee_grade1to4", "fee_grade5to9", "fee_grade10", "fee_grade11to12", "fee_graduation",
	"teaching_mode", "rating", "total_reviews", "is_verified",
	"city", "state", "latitude", "longitude",
}

// TutorsCSV writes tutors as CSV, one row per tutor. Subjects are joined with ';'.
func TutorsCSV(w io.Writer, tutors []tutor.Tutor) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tutorCSVHeader); err != nil {
		return err
	}

	for _, t := range tutors {
		lat, lng := "", ""
		if t.Location.Coordinates != nil {
			lat = strconv.FormatFloat(t.Location.Coordinates.Lat, 'f', -1, 64)
			lng = strconv.FormatFloat(t.Location.Coordinates.Lng, 'f', -1, 64)
		}

		row := []string{
			t.ID, t.Name, t.Email, t.Phone,
			strings.Join(t.Subjects, ";"),
			strconv.Itoa(t.Experience),
			t.Fees.Grade1to4.String(), t.Fees.Grade5to9.String(), t.Fees.Grade10.String(),
			t.Fees.Grade11to12.String(), t.Fees.Graduation.String(),
			string(t.TeachingMode),
			strconv.FormatFloat(t.Rating, 'f', -1, 64),
			strconv.Itoa(t.TotalReviews),
			strconv.FormatBool(t.Verified),
			t.Location.City, t.Location.State, lat, lng,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
