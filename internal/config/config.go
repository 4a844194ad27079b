// Package config loads savectl defaults from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the tunable defaults for a capture run. Command-line flags
// override these values.
type Config struct {
	// Browser names the browser executable. Empty means auto-detect.
	Browser string

	// WaitSeconds is the fixed page-load budget after launch.
	WaitSeconds int

	// PollAttempts and PollIntervalSeconds set the retry budget for each
	// dialog wait phase.
	PollAttempts        int
	PollIntervalSeconds int

	// KeyDelayMS is the pause between injected keystrokes.
	KeyDelayMS int

	// TmpDir receives temporary captures when no destination is given.
	TmpDir string
}

// Load reads configuration from environment variables, with an optional
// .env file in the working directory. Missing or malformed values fall
// back to defaults.
func Load() *Config {
	// Best effort; a missing .env is the normal case.
	_ = godotenv.Load()

	return &Config{
		Browser:             os.Getenv("SAVECTL_BROWSER"),
		WaitSeconds:         envInt("SAVECTL_WAIT_SECONDS", 10),
		PollAttempts:        envInt("SAVECTL_POLL_ATTEMPTS", 10),
		PollIntervalSeconds: envInt("SAVECTL_POLL_INTERVAL_SECONDS", 1),
		KeyDelayMS:          envInt("SAVECTL_KEY_DELAY_MS", 60),
		TmpDir:              envOr("SAVECTL_TMPDIR", os.TempDir()),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
