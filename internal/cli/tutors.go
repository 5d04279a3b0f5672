package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/tutormatch/internal/database"
	"github.com/vijay-prabhu/tutormatch/internal/output"
)

var tutorsCmd = &cobra.Command{
	Use:   "tutors",
	Short: "Manage the tutor pool",
}

var tutorsImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import tutors from a JSON array",
	Long: `Import tutors from a JSON file holding an array of tutor objects.

Missing fees are filled with the default for their bracket. Tutors with an
existing id are updated; tutors without one get a new id. Invalid records are
reported and skipped.

Examples:
  tutormatch tutors import tutors.json
  cat tutors.json | tutormatch tutors import -`,
	Args: cobra.ExactArgs(1),
	RunE: runTutorsImport,
}

var tutorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tutors by rating",
	Long: `List stored tutors, highest rated first.

Examples:
  tutormatch tutors list
  tutormatch tutors list --city Bangalore --verified
  tutormatch tutors list --subject Physics --limit 5`,
	RunE: runTutorsList,
}

var tutorsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a tutor's full profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runTutorsShow,
}

var tutorsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tutor and their bookings",
	Args:  cobra.ExactArgs(1),
	RunE:  runTutorsDelete,
}

var tutorsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tutors to CSV or JSON",
	Long: `Export every stored tutor to stdout.

Supported formats:
  - csv: Comma-separated values (spreadsheet-compatible)
  - json: JSON array of tutors, re-importable with 'tutors import'

Examples:
  tutormatch tutors export --format=csv > tutors.csv
  tutormatch tutors export --format=json > tutors.json`,
	RunE: runTutorsExport,
}

var (
	listCity     string
	listSubject  string
	listVerified bool
	listLimit    int
	listOffset   int
	exportFormat string
)

func init() {
	rootCmd.AddCommand(tutorsCmd)
	tutorsCmd.AddCommand(tutorsImportCmd)
	tutorsCmd.AddCommand(tutorsListCmd)
	tutorsCmd.AddCommand(tutorsShowCmd)
	tutorsCmd.AddCommand(tutorsDeleteCmd)
	tutorsCmd.AddCommand(tutorsExportCmd)

	tutorsListCmd.Flags().StringVar(&listCity, "city", "", "Filter by city (case-insensitive, partial names match)")
	tutorsListCmd.Flags().StringVar(&listSubject, "subject", "", "Filter by subject")
	tutorsListCmd.Flags().BoolVar(&listVerified, "verified", false, "Only verified tutors")
	tutorsListCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Maximum number of tutors")
	tutorsListCmd.Flags().IntVar(&listOffset, "offset", 0, "Number of tutors to skip")

	tutorsExportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format (csv, json)")
}

func runTutorsImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	m, db, err := openMatcher()
	if err != nil {
		return err
	}
	defer db.Close()

	in := os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	}

	terminal := NewTerminal()
	result, err := m.ImportJSON(ctx, in, importProgress(terminal))
	terminal.ClearLine()
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	return output.Output(outputFmt, result)
}

func runTutorsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	opts := database.ListOptions{
		Limit:  listLimit,
		Offset: listOffset,
	}
	if listCity != "" {
		opts.City = &listCity
	}
	if listSubject != "" {
		opts.Subject = &listSubject
	}
	if listVerified {
		opts.Verified = &listVerified
	}

	tutors, err := db.ListTutors(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list tutors: %w", err)
	}

	if len(tutors) == 0 && outputFmt != "json" {
		fmt.Println("No tutors found. Import some with 'tutormatch tutors import <file>'.")
		return nil
	}

	return output.Output(outputFmt, tutors)
}

func runTutorsShow(cmd *cobra.Command, args []string) error {
	m, db, err := openMatcher()
	if err != nil {
		return err
	}
	defer db.Close()

	t, err := m.GetTutor(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return output.Output(outputFmt, t)
}

func runTutorsDelete(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteTutor(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted tutor %s\n", args[0])
	return nil
}

func runTutorsExport(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	tutors, err := db.ListTutors(cmd.Context(), database.ListOptions{})
	if err != nil {
		return fmt.Errorf("failed to list tutors: %w", err)
	}

	if exportFormat != string(output.FormatCSV) && exportFormat != string(output.FormatJSON) {
		return fmt.Errorf("unknown format: %s (use csv or json)", exportFormat)
	}
	return output.Output(exportFormat, tutors)
}
