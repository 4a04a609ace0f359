//go:build !windows

package launch

import (
	"fmt"
	"os"
	"syscall"
)

func pauseProcess(pid int) error  { return sendSignal(pid, syscall.SIGSTOP) }
func resumeProcess(pid int) error { return sendSignal(pid, syscall.SIGCONT) }

func sendSignal(pid int, sig syscall.Signal) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("process %d not found: %w", pid, err)
	}
	if err := proc.Signal(sig); err != nil {
		return fmt.Errorf("signal %v to PID %d failed: %w", sig, pid, err)
	}
	return nil
}
