package capture

import (
	"errors"
	"time"

	"github.com/grantcarthew/savectl/internal/wm"
)

// Default retry budget for each wait phase. The window system offers no
// blocking "wait for new window" primitive, so focus transitions are
// inferred by polling for a handle change at a fixed granularity.
const (
	// DefaultAttempts bounds each wait phase.
	DefaultAttempts = 10
	// DefaultInterval is the pause before each poll.
	DefaultInterval = time.Second
)

// ErrWaitTimeout is returned when the retry budget is exhausted without
// the active window handle ever changing.
var ErrWaitTimeout = errors.New("focus did not change")

// Waiter polls for an active-window transition. The same machine serves
// both dialog waits: the open-wait references the browser window's handle,
// the close-wait references the dialog's.
type Waiter struct {
	Backend  wm.Backend
	Attempts int
	Interval time.Duration

	// sleep is replaceable in tests.
	sleep func(time.Duration)
}

// NewWaiter returns a Waiter with the default retry budget.
func NewWaiter(b wm.Backend) *Waiter {
	return &Waiter{Backend: b, Attempts: DefaultAttempts, Interval: DefaultInterval}
}

// WaitForFocusChange polls once per interval until the active window
// handle differs from ref, then returns a fresh snapshot of the newly
// active window. Query errors and empty handles never settle the wait;
// they count against the budget like an unchanged handle. Exhausting the
// budget returns ErrWaitTimeout.
//
// A settled wait only proves that focus moved. It does not prove the new
// window is the one the caller hoped for; callers needing identity must
// check the returned snapshot themselves.
func (w *Waiter) WaitForFocusChange(ref string) (wm.Window, error) {
	pause := w.sleep
	if pause == nil {
		pause = time.Sleep
	}
	for attempt := 0; attempt < w.Attempts; attempt++ {
		pause(w.Interval)
		id, err := w.Backend.ActiveWindow()
		if err != nil || id == "" || id == ref {
			continue
		}
		return wm.Inspect(w.Backend), nil
	}
	return wm.Window{}, ErrWaitTimeout
}
