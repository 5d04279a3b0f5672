package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/tutormatch/internal/output"
	"github.com/vijay-prabhu/tutormatch/internal/validation"
)

var bookCmd = &cobra.Command{
	Use:   "book <tutor-id>",
	Short: "Book a session with a tutor",
	Long: `Book a session with a tutor. The booking starts as pending.

The tutor must teach the subject and offer the teaching mode. The fee is the
tutor's fee for the grade's bracket.

Examples:
  tutormatch book 3f2a9c1e --student "Arjun Mehta" --subject Physics \
    --grade "11th Grade" --date 2026-11-02 --slot "4:00 PM - 5:00 PM" \
    --mode home-tuition --location "Indiranagar, Bangalore"`,
	Args: cobra.ExactArgs(1),
	RunE: runBook,
}

var bookReq validation.BookingRequest

func init() {
	rootCmd.AddCommand(bookCmd)
	bookCmd.Flags().StringVar(&bookReq.StudentName, "student", "", "Student name")
	bookCmd.Flags().StringVar(&bookReq.Subject, "subject", "", "Subject of the session")
	bookCmd.Flags().StringVar(&bookReq.Grade, "grade", "", "Student grade")
	bookCmd.Flags().StringVar(&bookReq.ScheduledDate, "date", "", "Session date ("+validation.DateLayout+")")
	bookCmd.Flags().StringVar(&bookReq.TimeSlot, "slot", "", "Time slot")
	bookCmd.Flags().StringVar(&bookReq.TeachingMode, "mode", "", "Teaching mode (home-tuition, center-based)")
	bookCmd.Flags().StringVar(&bookReq.Location, "location", "", "Session address")
	bookCmd.Flags().StringVar(&bookReq.Notes, "notes", "", "Notes for the tutor")
}

func runBook(cmd *cobra.Command, args []string) error {
	m, db, err := openMatcher()
	if err != nil {
		return err
	}
	defer db.Close()

	req := bookReq
	req.TutorID = args[0]

	booking, err := m.Book(cmd.Context(), req)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, booking)
}
