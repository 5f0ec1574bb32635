package spinner

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// New starts a spinner with the following structure.
// ⠏ Description...
// It returns a function that stops the spinner and clears the line, so the
// caller can print the outcome in its place.
func New(description string) func() {
	// Show progress while the request is in flight, to avoid the illusion of
	// the CLI being hung.
	bar := progressbar.NewOptions(-1,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stdout),
		progressbar.OptionSetWidth(10),
		progressbar.OptionSetDescription(description),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	// done only tracks completion; the spinner doesn't care about success or
	// failure of the work it decorates.
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				bar.Add(1)
				time.Sleep(100 * time.Millisecond)
			}
		}
	}()

	return func() {
		close(done)
		bar.Finish()
	}
}
