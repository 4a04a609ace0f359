//go:build windows

package launch

import "os/exec"

func configureCmdSysProcAttr(cmd *exec.Cmd) {}
