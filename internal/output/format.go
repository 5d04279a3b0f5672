package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vijay-prabhu/tutormatch/internal/tutor"
)

// Format names an output rendering selected with --output or --format
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// ParseFormat resolves a format name; empty means table
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", name)
	}
}

// JSON writes indented JSON to w
func JSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Output renders data to stdout
func Output(format string, data interface{}) error {
	return OutputTo(os.Stdout, format, data)
}

// OutputTo renders data to w. CSV is only defined for tutor lists.
func OutputTo(w io.Writer, format string, data interface{}) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}

	switch f {
	case FormatJSON:
		return JSON(w, data)
	case FormatCSV:
		tutors, ok := data.([]tutor.Tutor)
		if !ok {
			return fmt.Errorf("csv output is not supported for %T", data)
		}
		return TutorsCSV(w, tutors)
	default:
		return TableTo(w, data)
	}
}
