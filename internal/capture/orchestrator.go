// Package capture drives an installed graphical browser through its own
// save dialog using synthetic input, producing a rendered-HTML file on
// disk. It owns the window-automation state machine: launch, identity
// checks, dialog waits, keystroke injection, and teardown.
package capture

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/grantcarthew/savectl/internal/wm"
)

// Failure classes. Each terminates the run; none are retried beyond the
// polling budgets inside the dialog waits.
var (
	// ErrUnexpectedWindow means an identity assertion failed: the active
	// window's class does not contain the browser name. No cleanup is
	// performed because the orchestrator can no longer trust itself to
	// kill the right target.
	ErrUnexpectedWindow = errors.New("unexpected active window")

	// ErrDialogOpenTimeout means the save dialog never took focus. The
	// browser is killed first, if it can still be identified.
	ErrDialogOpenTimeout = errors.New("save dialog did not open")

	// ErrDialogCloseTimeout means focus never left the save dialog. The
	// save may have silently failed or hung; nothing is killed because
	// the state is ambiguous.
	ErrDialogCloseTimeout = errors.New("save dialog did not close")
)

// Key combinations sent to the browser and its save dialog.
const (
	keySaveDialog = "ctrl+s"
	keySelectAll  = "ctrl+a"
	keyDelete     = "Delete"
	keyConfirm    = "Return"
)

// focusSettle is the pause between activating the browser window and
// sending the save keystroke, giving the window manager time to route
// input to the newly raised window.
const focusSettle = 500 * time.Millisecond

// Launcher starts the browser at a URL, detached. Fire and forget: the
// orchestrator never observes the process or its exit code.
type Launcher func(url string) error

// Session is the mutable state threaded through one capture run.
type Session struct {
	URL      string
	Browser  string
	Wait     time.Duration
	Dir      string
	Filename string

	// IncludeTitle inserts the sanitized window title into the filename.
	IncludeTitle bool

	// KeyDelay is the pause between injected keystrokes.
	KeyDelay time.Duration

	// Attempts and Interval set the retry budget of each dialog wait.
	Attempts int
	Interval time.Duration

	// Current is the most recent active-window snapshot. Stale after any
	// action that can move focus; re-queried at each assertion point.
	Current wm.Window
}

// Orchestrator runs the capture sequence over injected collaborators.
type Orchestrator struct {
	Backend  wm.Backend
	Launch   Launcher
	Identity Identity

	// Sleep is replaceable in tests. Nil means time.Sleep.
	Sleep func(time.Duration)

	// Debugf receives verbose trace lines. Nil discards them.
	Debugf func(format string, args ...any)
}

func (o *Orchestrator) sleep(d time.Duration) {
	if o.Sleep != nil {
		o.Sleep(d)
		return
	}
	time.Sleep(d)
}

func (o *Orchestrator) debugf(format string, args ...any) {
	if o.Debugf != nil {
		o.Debugf(format, args...)
	}
}

func (o *Orchestrator) waiter(s *Session) *Waiter {
	w := NewWaiter(o.Backend)
	if s.Attempts > 0 {
		w.Attempts = s.Attempts
	}
	if s.Interval > 0 {
		w.Interval = s.Interval
	}
	w.sleep = o.Sleep
	return w
}

// assertBrowser re-queries the active window and stores the snapshot in
// the session, failing if it does not belong to the browser.
func (o *Orchestrator) assertBrowser(s *Session) error {
	s.Current = wm.Inspect(o.Backend)
	o.debugf("active window: id=%q title=%q class=%q", s.Current.ID, s.Current.Title, s.Current.Class)
	if !o.Identity(s.Current, s.Browser) {
		return fmt.Errorf("%w: class %q does not contain %q", ErrUnexpectedWindow, s.Current.Class, s.Browser)
	}
	return nil
}

// Run executes the capture sequence and returns the destination path the
// page was saved to. The session's Current window is updated as the run
// progresses. Callers are expected to have validated preconditions (URL,
// destination directory, resolvable browser) before calling.
func (o *Orchestrator) Run(s *Session) (string, error) {
	o.debugf("launching %s %s", s.Browser, s.URL)
	if err := o.Launch(s.URL); err != nil {
		return "", fmt.Errorf("launch browser: %w", err)
	}

	// Fixed page-load budget. Nothing signals load completion, so a slow
	// page and a crashed browser are indistinguishable here: both surface
	// as an identity mismatch below.
	o.debugf("waiting %s for page load", s.Wait)
	o.sleep(s.Wait)

	if err := o.assertBrowser(s); err != nil {
		return "", err
	}
	browser := s.Current

	title := ""
	if s.IncludeTitle {
		title = SanitizeTitle(browser.Title)
		o.debugf("sanitized title: %q", title)
	}

	if err := o.Backend.Activate(browser.ID); err != nil {
		return "", fmt.Errorf("activate browser window: %w", err)
	}
	o.sleep(focusSettle)
	if err := o.Backend.SendKeys(s.KeyDelay, keySaveDialog); err != nil {
		return "", fmt.Errorf("open save dialog: %w", err)
	}

	o.debugf("waiting for save dialog")
	dialog, err := o.waiter(s).WaitForFocusChange(browser.ID)
	if err != nil {
		o.killIfBrowser(s)
		return "", ErrDialogOpenTimeout
	}
	o.debugf("save dialog: id=%q title=%q class=%q", dialog.ID, dialog.Title, dialog.Class)

	path := filepath.Join(s.Dir, WithTitle(s.Filename, title))
	o.debugf("destination: %s", path)

	// The dialog still holds focus; clear its path field and type ours.
	if err := o.Backend.SendKeys(s.KeyDelay, keySelectAll, keyDelete); err != nil {
		return "", fmt.Errorf("clear dialog path field: %w", err)
	}
	if err := o.Backend.TypeText(path, s.KeyDelay); err != nil {
		return "", fmt.Errorf("type destination path: %w", err)
	}
	if err := o.Backend.SendKeys(s.KeyDelay, keyConfirm); err != nil {
		return "", fmt.Errorf("confirm save dialog: %w", err)
	}

	o.debugf("waiting for save dialog to close")
	if _, err := o.waiter(s).WaitForFocusChange(dialog.ID); err != nil {
		return "", ErrDialogCloseTimeout
	}

	if err := o.assertBrowser(s); err != nil {
		return "", err
	}

	o.debugf("closing browser window %q", s.Current.ID)
	if err := o.Backend.Kill(s.Current.ID); err != nil {
		return "", fmt.Errorf("close browser window: %w", err)
	}
	return path, nil
}

// killIfBrowser is the best-effort cleanup after an open-wait timeout:
// kill the active window only when it is still confirmed to be the
// browser, never an innocent bystander that stole focus.
func (o *Orchestrator) killIfBrowser(s *Session) {
	s.Current = wm.Inspect(o.Backend)
	if !o.Identity(s.Current, s.Browser) {
		o.debugf("skipping cleanup: active window %q is not the browser", s.Current.ID)
		return
	}
	o.debugf("killing browser window %q", s.Current.ID)
	if err := o.Backend.Kill(s.Current.ID); err != nil {
		o.debugf("cleanup kill failed: %v", err)
	}
}
