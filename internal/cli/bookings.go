package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/tutormatch/internal/database"
	"github.com/vijay-prabhu/tutormatch/internal/output"
	"github.com/vijay-prabhu/tutormatch/internal/validation"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List and update bookings",
}

var bookingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookings by scheduled date",
	Long: `List bookings.

Examples:
  tutormatch bookings list
  tutormatch bookings list --tutor 3f2a9c1e --status pending`,
	RunE: runBookingsList,
}

var bookingsStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Change a booking's status",
	Long: `Change a booking's status to pending, confirmed, completed or cancelled.

Completed and cancelled bookings cannot be changed.

Examples:
  tutormatch bookings status 7c9e6679-7425-40de-944b-e07fc1f90ae7 confirmed`,
	Args: cobra.ExactArgs(2),
	RunE: runBookingsStatus,
}

var (
	bookingsTutor  string
	bookingsStatus string
	bookingsLimit  int
)

func init() {
	rootCmd.AddCommand(bookingsCmd)
	bookingsCmd.AddCommand(bookingsListCmd)
	bookingsCmd.AddCommand(bookingsStatusCmd)

	bookingsListCmd.Flags().StringVar(&bookingsTutor, "tutor", "", "Filter by tutor id")
	bookingsListCmd.Flags().StringVar(&bookingsStatus, "status", "", "Filter by status")
	bookingsListCmd.Flags().IntVarP(&bookingsLimit, "limit", "n", 0, "Maximum number of bookings")
}

func runBookingsList(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	opts := database.BookingListOptions{Limit: bookingsLimit}
	if bookingsTutor != "" {
		opts.TutorID = &bookingsTutor
	}
	if bookingsStatus != "" {
		status := database.BookingStatus(bookingsStatus)
		if !status.Valid() {
			return fmt.Errorf("invalid status: %s (use pending, confirmed, completed or cancelled)", bookingsStatus)
		}
		opts.Status = &status
	}

	bookings, err := db.ListBookings(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("failed to list bookings: %w", err)
	}

	return output.Output(outputFmt, bookings)
}

func runBookingsStatus(cmd *cobra.Command, args []string) error {
	m, db, err := openMatcher()
	if err != nil {
		return err
	}
	defer db.Close()

	booking, err := m.UpdateBookingStatus(cmd.Context(), validation.StatusRequest{
		ID:     args[0],
		Status: args[1],
	})
	if err != nil {
		return err
	}

	return output.Output(outputFmt, booking)
}
