package capture

import (
	"strings"

	"github.com/grantcarthew/savectl/internal/wm"
)

// Identity decides whether a window belongs to the named browser. It is
// injectable so stricter matching (exact class equality, PID checks) can
// replace the default without touching the orchestration.
type Identity func(w wm.Window, browser string) bool

// BelongsTo reports whether the window's class property contains the
// browser executable name as a case-sensitive substring. Class strings
// usually embed the executable name (e.g. "Navigator.firefox"), making
// this a usable, if fuzzy, ownership check. An empty class never matches.
func BelongsTo(w wm.Window, browser string) bool {
	if w.Class == "" {
		return false
	}
	return strings.Contains(w.Class, browser)
}
