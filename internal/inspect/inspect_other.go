//go:build !linux

package inspect

import (
	"fmt"
	"runtime"
)

func readNiceness(pid int) (int, error) {
	return 0, fmt.Errorf("not supported on %s", runtime.GOOS)
}

func readOOMScoreAdj(pid int) (int, error) {
	return 0, fmt.Errorf("not supported on %s", runtime.GOOS)
}
