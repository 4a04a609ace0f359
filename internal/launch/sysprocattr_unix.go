//go:build !windows

package launch

import (
	"os/exec"
	"syscall"
)

// The child gets its own process group so signals aimed at the
// launcher's terminal group never reach it.
func configureCmdSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
