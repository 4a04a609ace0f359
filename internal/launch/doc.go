// Package launch creates and supervises the target child process.
//
// The child detaches into its own process group before exec and runs
// with stdin from the null device and the launcher's stdout/stderr.
// Settings are applied from the parent via a post-start hook once the
// PID exists, which leaves a short window where the child runs at
// default priority. That ordering is deliberate; the optional hold
// handshake (SIGSTOP after creation, SIGCONT after the hook) narrows
// the window without claiming to eliminate it.
package launch
