package cli

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vijay-prabhu/tutormatch/internal/matcher"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

// Spinner frames for animated progress
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Terminal writes progress to stderr so stdout stays clean for command output
type Terminal struct {
	IsTerminal   bool
	UseColor     bool
	out          *os.File
	spinnerIndex int
}

// NewTerminal creates a new Terminal instance
func NewTerminal() *Terminal {
	isTerminal := term.IsTerminal(int(os.Stderr.Fd()))
	return &Terminal{
		IsTerminal: isTerminal,
		UseColor:   isTerminal, // Only use color in terminal
		out:        os.Stderr,
	}
}

// ClearLine clears the current line (terminal only)
func (t *Terminal) ClearLine() {
	if t.IsTerminal {
		fmt.Fprint(t.out, "\r\033[K")
	}
}

// Print writes msg in place on a terminal, or as its own line otherwise
func (t *Terminal) Print(msg string) {
	if t.IsTerminal {
		fmt.Fprint(t.out, msg)
		t.out.Sync()
		return
	}
	fmt.Fprintln(t.out, msg)
}

// Spinner returns the next spinner frame
func (t *Terminal) Spinner() string {
	if !t.IsTerminal {
		return ""
	}
	frame := spinnerFrames[t.spinnerIndex]
	t.spinnerIndex = (t.spinnerIndex + 1) % len(spinnerFrames)
	return frame
}

// Color wraps text in ANSI color codes (terminal only)
func (t *Terminal) Color(color, text string) string {
	if !t.UseColor {
		return text
	}
	return color + text + ColorReset
}

// FormatETA formats a duration as a human-readable ETA string
func FormatETA(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		if s > 0 {
			return fmt.Sprintf("%dm%ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}

// PhaseColor returns the appropriate color for an import phase
func PhaseColor(phase matcher.ProgressPhase) string {
	switch phase {
	case matcher.PhaseDecoding:
		return ColorCyan
	case matcher.PhaseValidating:
		return ColorPurple
	case matcher.PhaseStoring:
		return ColorGreen
	default:
		return ColorWhite
	}
}

// ScoreColor grades a recommendation score
func ScoreColor(score float64) string {
	switch {
	case score >= 150:
		return ColorGreen
	case score >= 100:
		return ColorYellow
	default:
		return ColorGray
	}
}

// importProgress renders import progress, printing every update in place on
// a terminal and only phase changes otherwise
func importProgress(terminal *Terminal) matcher.ProgressCallback {
	var lastPhase matcher.ProgressPhase

	return func(p matcher.Progress) {
		terminal.ClearLine()

		var msg string
		switch p.Phase {
		case matcher.PhaseDecoding:
			msg = fmt.Sprintf("%s Reading tutors...", terminal.Spinner())
		case matcher.PhaseValidating:
			var eta string
			if etaDur := p.ETA(); etaDur > 0 {
				eta = fmt.Sprintf(" (ETA: %s)", FormatETA(etaDur))
			}
			msg = fmt.Sprintf("Validating: %d/%d tutors (%d%%)%s", p.Current, p.Total, p.Percentage(), eta)
		case matcher.PhaseStoring:
			msg = fmt.Sprintf("%s %s: %d/%d tutors", terminal.Spinner(), p.Description, p.Current, p.Total)
		}

		if terminal.IsTerminal || p.Phase != lastPhase {
			terminal.Print(terminal.Color(PhaseColor(p.Phase), msg))
		}
		lastPhase = p.Phase
	}
}
