package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Option configures a Launch call.
type Option func(*options)

type options struct {
	postStart func(pid int) error
	hold      bool
	stdout    io.Writer
	stderr    io.Writer
}

// WithStdout redirects the child's standard output, which otherwise
// inherits the launcher's.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// WithStderr redirects the child's standard error.
func WithStderr(w io.Writer) Option {
	return func(o *options) { o.stderr = w }
}

// WithPostStart registers a hook run in the parent as soon as the child
// PID exists, before the blocking wait. Settings application happens
// here. A hook error aborts the launch; the child is left running.
func WithPostStart(hook func(pid int) error) Option {
	return func(o *options) { o.postStart = hook }
}

// WithHold stops the child immediately after creation and resumes it
// once the post-start hook has run, narrowing the window in which the
// child executes at default priority. Best-effort: the child may
// already have begun executing when the stop lands.
func WithHold() Option {
	return func(o *options) { o.hold = true }
}

// ExitStatusError carries a child's nonzero exit code to the caller.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Launch starts program as a supervised child in its own process group,
// with stdin from the null device and stdout/stderr inherited, then
// blocks until it exits. The returned code is the child's exit status.
//
// The post-start hook runs once the PID exists, but the child may
// already be executing by then; the brief window at default priority is
// accepted (WithHold narrows it).
func Launch(ctx context.Context, program string, opts ...Option) (int, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := os.Stat(program); err != nil {
		return 0, fmt.Errorf("program %s not found: %w", program, err)
	}

	cmd := exec.CommandContext(ctx, program)
	cmd.Stdin = nil // exec fills this with the null device
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if o.stdout != nil {
		cmd.Stdout = o.stdout
	}
	if o.stderr != nil {
		cmd.Stderr = o.stderr
	}
	configureCmdSysProcAttr(cmd)

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", program, err)
	}
	pid := cmd.Process.Pid

	if o.hold {
		if err := pauseProcess(pid); err != nil {
			return 0, fmt.Errorf("hold child: %w", err)
		}
	}

	if o.postStart != nil {
		if err := o.postStart(pid); err != nil {
			// The child keeps running unmanaged; only the error travels.
			return 0, err
		}
	}

	if o.hold {
		if err := resumeProcess(pid); err != nil {
			return 0, fmt.Errorf("resume child: %w", err)
		}
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("wait for %s: %w", program, err)
	}
	return 0, nil
}
