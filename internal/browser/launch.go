package browser

import (
	"fmt"
	"os/exec"
	"syscall"
)

// Launch starts the browser at the given URL, fully detached: its own
// session, no terminal, no inherited stdio. Fire and forget — the caller
// never observes the process or its exit code; the page either renders
// or the window-identity checks downstream fail.
func Launch(path, url string) error {
	cmd := exec.Command(path, url)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start browser: %w", err)
	}
	// Reap the child when it exits so it never lingers as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}
