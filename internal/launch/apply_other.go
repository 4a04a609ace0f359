//go:build !linux

package launch

import (
	"fmt"
	"runtime"

	"github.com/Paintersrp/polite/internal/config"
)

func Apply(pid int, cfg config.Polite) error {
	return fmt.Errorf("applying runtime settings is not supported on %s", runtime.GOOS)
}
