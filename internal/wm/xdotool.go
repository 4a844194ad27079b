package wm

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ErrXDoToolNotFound is returned when the xdotool binary cannot be located.
var ErrXDoToolNotFound = errors.New("xdotool not found")

// XDoTool is a Backend backed by the xdotool command-line utility.
// It works on X11 desktops and on Wayland compositors with XWayland.
type XDoTool struct {
	// Bin is the xdotool executable. Empty means "xdotool" from PATH.
	Bin string
}

// Available reports whether the xdotool binary is resolvable.
func (x *XDoTool) Available() error {
	if _, err := exec.LookPath(x.bin()); err != nil {
		return ErrXDoToolNotFound
	}
	return nil
}

func (x *XDoTool) bin() string {
	if x.Bin != "" {
		return x.Bin
	}
	return "xdotool"
}

// run executes one xdotool subcommand and returns its trimmed stdout.
func (x *XDoTool) run(args ...string) (string, error) {
	out, err := exec.Command(x.bin(), args...).Output()
	if err != nil {
		return "", fmt.Errorf("xdotool %s: %w", args[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ActiveWindow returns the focused window's handle as a decimal string.
func (x *XDoTool) ActiveWindow() (string, error) {
	out, err := x.run("getactivewindow")
	if err != nil {
		return "", err
	}
	// xdotool prints a bare decimal window ID; anything else means the
	// query failed in a way the exit code did not report.
	if _, err := strconv.ParseUint(out, 10, 64); err != nil {
		return "", fmt.Errorf("unexpected getactivewindow output %q", out)
	}
	return out, nil
}

// WindowTitle returns the window's title text.
func (x *XDoTool) WindowTitle(id string) (string, error) {
	return x.run("getwindowname", id)
}

// WindowClass returns the window's class property.
func (x *XDoTool) WindowClass(id string) (string, error) {
	return x.run("getwindowclassname", id)
}

// Activate focuses the window and waits for the window manager to apply it.
func (x *XDoTool) Activate(id string) error {
	_, err := x.run("windowactivate", "--sync", id)
	return err
}

// SendKeys sends key combinations to the focused window.
func (x *XDoTool) SendKeys(delay time.Duration, combos ...string) error {
	if len(combos) == 0 {
		return nil
	}
	args := append([]string{"key", "--delay", millis(delay)}, combos...)
	_, err := x.run(args...)
	return err
}

// TypeText types literal text into the focused window. The "--" guard
// keeps text starting with a dash from being parsed as a flag.
func (x *XDoTool) TypeText(text string, delay time.Duration) error {
	_, err := x.run("type", "--delay", millis(delay), "--", text)
	return err
}

// Kill forcibly closes the window.
func (x *XDoTool) Kill(id string) error {
	_, err := x.run("windowkill", id)
	return err
}

func millis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}
