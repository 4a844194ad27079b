package browser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakeExecutable creates an executable file in a temp dir and returns its path.
func fakeExecutable(t *testing.T, name string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to create fake executable: %v", err)
	}
	return path
}

func TestFind_ExplicitPath(t *testing.T) {
	path := fakeExecutable(t, "fake-firefox")

	browser, resolved, err := Find(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Identity matching compares against window class strings, which
	// carry the bare executable name, never a path.
	if browser != "fake-firefox" {
		t.Errorf("expected browser name %q, got %q", "fake-firefox", browser)
	}
	if resolved != path {
		t.Errorf("expected resolved path %q, got %q", path, resolved)
	}
}

func TestFind_BareNameStaysBare(t *testing.T) {
	dir := filepath.Dir(fakeExecutable(t, "fake-chromium"))
	t.Setenv("PATH", dir)

	browser, _, err := Find("fake-chromium")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if browser != "fake-chromium" {
		t.Errorf("expected browser name %q, got %q", "fake-chromium", browser)
	}
}

func TestFind_ExplicitMissing(t *testing.T) {
	_, _, err := Find("/nonexistent/path/to/browser")
	if !errors.Is(err, ErrBrowserNotFound) {
		t.Errorf("expected ErrBrowserNotFound, got %v", err)
	}
}

func TestFind_RespectsEnvVar(t *testing.T) {
	path := fakeExecutable(t, "env-browser")
	t.Setenv("SAVECTL_BROWSER", path)

	browser, resolved, err := Find("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if browser != "env-browser" {
		t.Errorf("expected env browser name %q, got %q", "env-browser", browser)
	}
	if resolved != path {
		t.Errorf("expected resolved path %q, got %q", path, resolved)
	}
}

func TestFind_EnvVarInvalidPath(t *testing.T) {
	t.Setenv("SAVECTL_BROWSER", "/nonexistent/path/to/browser")

	_, _, err := Find("")
	if !errors.Is(err, ErrBrowserNotFound) {
		t.Errorf("expected ErrBrowserNotFound, got %v", err)
	}
}

func TestFind_ExplicitOverridesEnv(t *testing.T) {
	envPath := fakeExecutable(t, "env-browser")
	explicit := fakeExecutable(t, "explicit-browser")
	t.Setenv("SAVECTL_BROWSER", envPath)

	browser, _, err := Find(explicit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if browser != "explicit-browser" {
		t.Errorf("expected explicit browser name %q, got %q", "explicit-browser", browser)
	}
}

func TestLaunch_MissingBinary(t *testing.T) {
	t.Parallel()

	if err := Launch("/nonexistent/browser", "https://example.com"); err == nil {
		t.Error("expected error launching nonexistent binary")
	}
}
