//go:build linux

package launch

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/Paintersrp/polite/internal/config"
)

// Apply sets the scheduling niceness and OOM-killer score adjustment of
// a running process. Either syscall failing is fatal for the launch;
// nothing is rolled back or retried.
func Apply(pid int, cfg config.Polite) error {
	if err := unix.Setpriority(unix.PRIO_PROCESS, pid, cfg.Niceness); err != nil {
		return fmt.Errorf("niceness error: set priority of PID %d to %d: %w", pid, cfg.Niceness, err)
	}
	path := fmt.Sprintf("/proc/%d/oom_score_adj", pid)
	if err := os.WriteFile(path, []byte(fmt.Sprintf("%d", cfg.OOMScoreAdj)), 0o644); err != nil {
		return fmt.Errorf("oom error: write %s: %w", path, err)
	}
	return nil
}
