// Package wm provides window-system queries and synthetic input injection.
package wm

import "time"

// Window is a snapshot of one window's identity at a single instant.
// It is not live: the active window changes asynchronously, so callers
// must re-query after any action that can move focus.
type Window struct {
	// ID is the window system's opaque handle for the window.
	ID string
	// Title is the window's title text at snapshot time.
	Title string
	// Class is the window-system class property, typically derived from
	// the owning application's executable name.
	Class string
}

// Backend abstracts the window-system operations savectl needs.
// Query methods are read-only. Input methods target whichever window
// currently holds focus; callers must activate the intended window first.
type Backend interface {
	// ActiveWindow returns the handle of the currently focused window.
	ActiveWindow() (string, error)

	// WindowTitle returns the title text of the given window.
	WindowTitle(id string) (string, error)

	// WindowClass returns the class property of the given window.
	WindowClass(id string) (string, error)

	// Activate gives the given window input focus.
	Activate(id string) error

	// SendKeys sends key combinations (e.g. "ctrl+s", "Return") in order
	// to the focused window, pausing delay between keystrokes.
	SendKeys(delay time.Duration, combos ...string) error

	// TypeText types literal text into the focused window.
	TypeText(text string, delay time.Duration) error

	// Kill forcibly closes the given window, terminating its owner.
	Kill(id string) error
}

// Inspect captures a snapshot of the currently active window. Query
// failures are deliberately swallowed: an unidentifiable window yields
// empty fields, which downstream identity checks treat as "not a match"
// rather than a distinct error.
func Inspect(b Backend) Window {
	var w Window
	id, err := b.ActiveWindow()
	if err != nil || id == "" {
		return w
	}
	w.ID = id
	if title, err := b.WindowTitle(id); err == nil {
		w.Title = title
	}
	if class, err := b.WindowClass(id); err == nil {
		w.Class = class
	}
	return w
}
