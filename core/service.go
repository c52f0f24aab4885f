package core

import (
	"fmt"
	"os"
	"os/exec"
)

// RestartService restarts the named systemd unit. Best effort: the game
// keeps working with the old mod set if this fails, so callers only warn.
func RestartService(name string) error {
	cmd := exec.Command("systemctl", "restart", name)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to restart service %s: %w", name, err)
	}
	return nil
}
