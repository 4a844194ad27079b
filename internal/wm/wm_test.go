package wm

import (
	"errors"
	"testing"
	"time"
)

// stubBackend returns canned query results for Inspect tests.
type stubBackend struct {
	id, title, class          string
	idErr, titleErr, classErr error
}

func (s *stubBackend) ActiveWindow() (string, error)         { return s.id, s.idErr }
func (s *stubBackend) WindowTitle(string) (string, error)    { return s.title, s.titleErr }
func (s *stubBackend) WindowClass(string) (string, error)    { return s.class, s.classErr }
func (s *stubBackend) Activate(string) error                 { return nil }
func (s *stubBackend) SendKeys(time.Duration, ...string) error { return nil }
func (s *stubBackend) TypeText(string, time.Duration) error  { return nil }
func (s *stubBackend) Kill(string) error                     { return nil }

func TestInspect_FullSnapshot(t *testing.T) {
	t.Parallel()

	b := &stubBackend{id: "12345", title: "Example Domain", class: "Navigator.firefox"}
	w := Inspect(b)

	if w.ID != "12345" || w.Title != "Example Domain" || w.Class != "Navigator.firefox" {
		t.Errorf("unexpected snapshot: %+v", w)
	}
}

func TestInspect_ActiveWindowFailureYieldsZeroValue(t *testing.T) {
	t.Parallel()

	b := &stubBackend{idErr: errors.New("no active window")}
	w := Inspect(b)

	if w != (Window{}) {
		t.Errorf("expected zero-value window, got %+v", w)
	}
}

func TestInspect_EmptyHandleYieldsZeroValue(t *testing.T) {
	t.Parallel()

	b := &stubBackend{id: "", title: "ignored"}
	if w := Inspect(b); w != (Window{}) {
		t.Errorf("expected zero-value window, got %+v", w)
	}
}

func TestInspect_PropertyFailuresAreTolerated(t *testing.T) {
	t.Parallel()

	b := &stubBackend{
		id:       "7",
		titleErr: errors.New("window gone"),
		classErr: errors.New("window gone"),
	}
	w := Inspect(b)

	if w.ID != "7" {
		t.Errorf("expected handle to survive property failures, got %+v", w)
	}
	if w.Title != "" || w.Class != "" {
		t.Errorf("expected empty title/class on query failure, got %+v", w)
	}
}

func TestXDoTool_AvailableMissingBinary(t *testing.T) {
	t.Parallel()

	x := &XDoTool{Bin: "/nonexistent/path/to/xdotool"}
	if err := x.Available(); err != ErrXDoToolNotFound {
		t.Errorf("expected ErrXDoToolNotFound, got %v", err)
	}
}

func TestMillis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0"},
		{12 * time.Millisecond, "12"},
		{time.Second, "1000"},
	}
	for _, tt := range tests {
		if got := millis(tt.d); got != tt.want {
			t.Errorf("millis(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
