// Package browser provides browser executable detection and detached launch.
package browser

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrBrowserNotFound is returned when no browser executable can be located.
var ErrBrowserNotFound = errors.New("browser not found")

// candidates are the executables searched when no browser is named,
// ordered by preference.
var candidates = []string{
	"firefox",
	"chromium",
	"chromium-browser",
	"google-chrome",
	"google-chrome-stable",
	"brave-browser",
}

// Find resolves the browser executable to launch. An explicit name wins,
// then the SAVECTL_BROWSER environment variable, then the candidate list.
// Returns the bare executable name (used for window-class identity
// matching) and the executable's resolved path.
func Find(name string) (browser, path string, err error) {
	if name == "" {
		name = os.Getenv("SAVECTL_BROWSER")
	}
	if name != "" {
		path, err := exec.LookPath(name)
		if err != nil {
			return "", "", fmt.Errorf("%w: %s", ErrBrowserNotFound, name)
		}
		// Window classes embed the bare executable name, never a path,
		// so the match name is always the basename.
		return filepath.Base(name), path, nil
	}

	for _, c := range candidates {
		if path, err := exec.LookPath(c); err == nil {
			return c, path, nil
		}
	}
	return "", "", ErrBrowserNotFound
}
