package term

// Input reads batches of logical events from a terminal backend, the
// same contract CrosstermInput/TestingInput expose in scm-record: one
// blocking read, then a zero-timeout drain so bursty input collapses
// into a single render.
type Input interface {
	// NextEvents blocks for at least one event, then drains any
	// additional events that are already queued.
	NextEvents() ([]Event, error)

	// Size reports the current terminal dimensions in cells.
	Size() (width, height int)

	// Close releases the backend, restoring the terminal if needed.
	Close() error
}
