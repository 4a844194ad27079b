package capture

import (
	"path/filepath"
	"strings"
)

// maxTitleLen caps sanitized titles so composed filenames stay well under
// common filesystem name limits.
const maxTitleLen = 80

// SanitizeTitle reduces a window title to a filesystem-safe fragment:
// control characters, DEL, and the characters  " * / : < > ? \ |  are
// removed, the result is truncated to maxTitleLen runes, and surrounding
// whitespace is trimmed. The transform is idempotent.
func SanitizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		if r < 0x20 || r == 0x7f {
			continue
		}
		switch r {
		case '"', '*', '/', ':', '<', '>', '?', '\\', '|':
			continue
		}
		b.WriteRune(r)
	}
	runes := []rune(b.String())
	if len(runes) > maxTitleLen {
		runes = runes[:maxTitleLen]
	}
	return strings.TrimSpace(string(runes))
}

// WithTitle inserts a title fragment into a filename immediately before
// its last extension: "20240101T000000.html" + "Example Site" becomes
// "20240101T000000 Example Site.html". A filename without an extension
// gets the fragment appended. An empty title leaves the name unchanged.
func WithTitle(filename, title string) string {
	if title == "" {
		return filename
	}
	ext := filepath.Ext(filename)
	return filename[:len(filename)-len(ext)] + " " + title + ext
}
