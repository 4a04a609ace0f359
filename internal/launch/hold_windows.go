//go:build windows

package launch

import "errors"

func pauseProcess(pid int) error  { return errors.New("hold is not supported on windows") }
func resumeProcess(pid int) error { return errors.New("hold is not supported on windows") }
