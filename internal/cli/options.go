package cli

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// validateURL checks that the target is an absolute http(s) URL. The page
// is never fetched directly; the URL is only handed to the browser, but a
// malformed one should fail here rather than as a cryptic browser error.
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", raw)
	}
	return nil
}

// validateDir checks that the destination directory exists. The save
// dialog types the full path blindly, so a missing directory would only
// surface as a browser-side error box keystroke injection cannot see.
func validateDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("destination directory %q: %v", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("destination %q is not a directory", dir)
	}
	return nil
}

// defaultFilename returns the timestamped default capture name,
// e.g. "20240101T000000.html".
func defaultFilename(now time.Time) string {
	return now.UTC().Format("20060102T150405") + ".html"
}
