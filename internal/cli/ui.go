package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/polyint/internal/progress"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// It decouples DisplayProgress from a specific spinner implementation,
// facilitating easier testing: starting, stopping, and updating the status
// message is all the progress display needs.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() { rs.s.Start() }

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner is replaceable in tests to avoid terminal output.
var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState encapsulates the aggregated progress of concurrent backends.
// It maintains the individual progress of each backend and computes the
// average, providing a consolidated progress view when multiple backends run
// in parallel.
type ProgressState struct {
	progresses     []float64
	numCalculators int
}

// NewProgressState creates and initializes a new ProgressState for the given
// number of backends.
func NewProgressState(numCalculators int) *ProgressState {
	return &ProgressState{
		progresses:     make([]float64, numCalculators),
		numCalculators: numCalculators,
	}
}

// Update records a new progress value for a specific backend. Updates with
// out-of-range indices are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage computes the average progress across all tracked backends.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numCalculators == 0 {
		return 0.0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numCalculators)
}

// progressBar generates a string representing a textual progress bar.
func progressBar(value float64, length int) string {
	if value > 1.0 {
		value = 1.0
	}
	if value < 0.0 {
		value = 0.0
	}
	count := int(value * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress renders a spinner and aggregated progress bar until the
// progress channel is closed. It is designed to run in its own goroutine;
// wg is signaled on return.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numCalculators int, out io.Writer) {
	defer wg.Done()

	state := NewProgressState(numCalculators)
	spin := newSpinner(spinner.WithWriter(out))
	spin.Start()
	defer spin.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	refresh := func() {
		avg := state.CalculateAverage()
		spin.UpdateSuffix(fmt.Sprintf(" %s %.1f%%", progressBar(avg, ProgressBarWidth), avg*100))
	}
	refresh()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				return
			}
			state.Update(update.CalculatorIndex, update.Value)
		case <-ticker.C:
			refresh()
		}
	}
}
