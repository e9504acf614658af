package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/ZoeyR/rcrypt/internal/sysmon"
)

// ProgressRefreshRate defines how often the search spinner's status line is
// refreshed with elapsed time and system load.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner abstracts the behavior of a terminal spinner, decoupling
// SearchProgress from a specific implementation for easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(s string)
}

// briandownsSpinner adapts spinner.Spinner to the Spinner interface.
type briandownsSpinner struct {
	s *spinner.Spinner
}

func (b briandownsSpinner) Start()                { b.s.Start() }
func (b briandownsSpinner) Stop()                 { b.s.Stop() }
func (b briandownsSpinner) UpdateSuffix(s string) { b.s.Suffix = s }

// NewTerminalSpinner creates a spinner writing to out.
func NewTerminalSpinner(out io.Writer) Spinner {
	return briandownsSpinner{
		s: spinner.New(spinner.CharSets[14], ProgressRefreshRate, spinner.WithWriter(out)),
	}
}

// SearchProgress animates a spinner for the duration of a prime search,
// refreshing the suffix with elapsed time and a system load sample. It owns
// a background goroutine between Start and Stop.
type SearchProgress struct {
	spinner Spinner
	label   string
	done    chan struct{}
	stopped chan struct{}
}

// NewSearchProgress creates a progress display for the given operation label.
func NewSearchProgress(spinner Spinner, label string) *SearchProgress {
	return &SearchProgress{spinner: spinner, label: label}
}

// Start begins the animation and the refresh loop.
func (sp *SearchProgress) Start() {
	sp.done = make(chan struct{})
	sp.stopped = make(chan struct{})
	sp.spinner.UpdateSuffix(fmt.Sprintf(" %s...", sp.label))
	sp.spinner.Start()

	start := time.Now()
	go func() {
		defer close(sp.stopped)
		ticker := time.NewTicker(ProgressRefreshRate)
		defer ticker.Stop()
		for {
			select {
			case <-sp.done:
				return
			case <-ticker.C:
				stats := sysmon.Sample()
				sp.spinner.UpdateSuffix(fmt.Sprintf(" %s... %s [%s]",
					sp.label, time.Since(start).Round(time.Second), stats))
			}
		}
	}()
}

// Stop halts the animation and waits for the refresh loop to exit.
func (sp *SearchProgress) Stop() {
	close(sp.done)
	<-sp.stopped
	sp.spinner.Stop()
}
