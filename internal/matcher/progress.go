package matcher

import "time"

// ProgressPhase names a stage of a tutor import
type ProgressPhase string

const (
	PhaseDecoding   ProgressPhase = "decoding"
	PhaseValidating ProgressPhase = "validating"
	PhaseStoring    ProgressPhase = "storing"
)

// Progress is one import progress update. Current and Total count records
// within the phase; Elapsed is measured from the phase's first update.
type Progress struct {
	Phase       ProgressPhase
	Current     int
	Total       int
	Description string
	Elapsed     time.Duration
}

// ProgressCallback receives import progress updates
type ProgressCallback func(Progress)

// ETA extrapolates the remaining time from the rate so far.
// It is zero until at least one record has been processed.
func (p Progress) ETA() time.Duration {
	if p.Current <= 0 || p.Total <= p.Current || p.Elapsed <= 0 {
		return 0
	}
	perRecord := p.Elapsed / time.Duration(p.Current)
	return perRecord * time.Duration(p.Total-p.Current)
}

// Percentage returns completion within the phase, 0 to 100
func (p Progress) Percentage() int {
	if p.Total <= 0 {
		return 0
	}
	return p.Current * 100 / p.Total
}

// progressTracker stamps updates with the time spent in the current phase
type progressTracker struct {
	callback   ProgressCallback
	now        func() time.Time
	phase      ProgressPhase
	phaseStart time.Time
}

func newProgressTracker(callback ProgressCallback) *progressTracker {
	return &progressTracker{callback: callback, now: time.Now}
}

func (t *progressTracker) report(phase ProgressPhase, current, total int, desc string) {
	if t == nil || t.callback == nil {
		return
	}

	now := t.now()
	if phase != t.phase || t.phaseStart.IsZero() {
		t.phase = phase
		t.phaseStart = now
	}

	t.callback(Progress{
		Phase:       phase,
		Current:     current,
		Total:       total,
		Description: desc,
		Elapsed:     now.Sub(t.phaseStart),
	})
}
