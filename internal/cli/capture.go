package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/grantcarthew/savectl/internal/browser"
	"github.com/grantcarthew/savectl/internal/capture"
	"github.com/grantcarthew/savectl/internal/config"
	"github.com/grantcarthew/savectl/internal/lockfile"
	"github.com/grantcarthew/savectl/internal/wm"
	"github.com/spf13/cobra"
)

var captureCmd = &cobra.Command{
	Use:   "capture <url>",
	Short: "Capture a page's rendered HTML via the browser's save dialog",
	Long: `Launches the installed browser at the URL, waits for the page to render,
opens the browser's own save dialog with ctrl+s, types the destination
path, confirms, and closes the browser.

With --dir the saved file is kept and its path printed. Without --dir the
page is saved to a temp file, its contents streamed to stdout, and the
file removed.

Requires a running X11 (or XWayland) desktop and the xdotool utility.
Only one capture may run at a time: synthetic keystrokes are a shared,
process-wide channel.

Examples:
  savectl capture https://example.com > page.html
  savectl capture https://example.com --dir ~/pages --title
  savectl capture https://example.com --browser chromium --wait 20

Environment:
  SAVECTL_BROWSER, SAVECTL_WAIT_SECONDS, SAVECTL_POLL_ATTEMPTS,
  SAVECTL_POLL_INTERVAL_SECONDS, SAVECTL_KEY_DELAY_MS, SAVECTL_TMPDIR
  (flags take precedence; an optional .env file is read first)`,
	Args: cobra.ExactArgs(1),
	RunE: runCapture,
}

func init() {
	captureCmd.Flags().StringP("browser", "b", "", "Browser executable to drive (default: auto-detect)")
	captureCmd.Flags().IntP("wait", "w", 0, "Seconds to wait for the page to load (default 10)")
	captureCmd.Flags().StringP("dir", "d", "", "Destination directory (default: temp file streamed to stdout)")
	captureCmd.Flags().StringP("filename", "f", "", "Destination filename (default: UTC timestamp .html)")
	captureCmd.Flags().BoolP("title", "t", false, "Append the sanitized window title to the filename")

	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	targetURL := args[0]
	if err := validateURL(targetURL); err != nil {
		return outputError(err.Error())
	}

	wait := cfg.WaitSeconds
	if cmd.Flags().Changed("wait") {
		wait, _ = cmd.Flags().GetInt("wait")
		if wait < 0 {
			return outputError(fmt.Sprintf("invalid wait value %d: must be >= 0", wait))
		}
	}

	dir, _ := cmd.Flags().GetString("dir")
	tempMode := dir == ""
	if tempMode {
		dir = cfg.TmpDir
	}
	if err := validateDir(dir); err != nil {
		return outputError(err.Error())
	}

	name, _ := cmd.Flags().GetString("browser")
	if name == "" {
		name = cfg.Browser
	}
	browserName, browserPath, err := browser.Find(name)
	if err != nil {
		return outputError(err.Error())
	}
	debugf("browser: %s (%s)", browserName, browserPath)

	backend := &wm.XDoTool{}
	if err := backend.Available(); err != nil {
		return outputError(err.Error())
	}

	lock, err := lockfile.Acquire(lockfile.DefaultPath())
	if err != nil {
		return outputError(err.Error())
	}
	defer lock.Release()

	filename, _ := cmd.Flags().GetString("filename")
	if filename == "" {
		filename = defaultFilename(time.Now())
	}
	includeTitle, _ := cmd.Flags().GetBool("title")

	session := &capture.Session{
		URL:          targetURL,
		Browser:      browserName,
		Wait:         time.Duration(wait) * time.Second,
		Dir:          dir,
		Filename:     filename,
		IncludeTitle: includeTitle,
		KeyDelay:     time.Duration(cfg.KeyDelayMS) * time.Millisecond,
		Attempts:     cfg.PollAttempts,
		Interval:     time.Duration(cfg.PollIntervalSeconds) * time.Second,
	}
	orch := &capture.Orchestrator{
		Backend:  backend,
		Launch:   func(url string) error { return browser.Launch(browserPath, url) },
		Identity: capture.BelongsTo,
		Debugf:   debugf,
	}

	path, err := orch.Run(session)
	if err != nil {
		return outputError(err.Error())
	}

	if tempMode {
		return emitAndRemove(path)
	}
	return outputData(path, map[string]string{"path": path})
}

// emitAndRemove streams the captured file to stdout and deletes it.
func emitAndRemove(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return outputError(fmt.Sprintf("read captured file: %v", err))
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return outputError(fmt.Sprintf("write capture to stdout: %v", err))
	}
	if err := os.Remove(path); err != nil {
		debugf("failed to remove temp file %s: %v", path, err)
	}
	return nil
}
