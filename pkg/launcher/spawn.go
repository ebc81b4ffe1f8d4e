// SPDX-License-Identifier: Apache-2.0
package launcher

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
)

// Outcome is the normalized result of one spawn attempt. At most one of
// Err, (Exited, Status), or Signal carries the meaningful result:
//   - Err is set when the child never ran (launch failure),
//   - Exited/Status are set when the child exited on its own,
//   - Signal names the terminating signal when the child was killed.
type Outcome struct {
	Err    error
	Exited bool
	Status int
	Signal string
}

// SpawnFunc is the process-spawn capability. Implementations run command
// with the given argument vector and environment, block until the child
// terminates or fails to launch, and report the normalized Outcome.
type SpawnFunc func(command string, args []string, env []string) Outcome

// Spawn is the default SpawnFunc. The child inherits the launcher's
// terminal (stdin/stdout/stderr are passed through unmodified) so that
// interactive prompts and streaming output of the wrapped CLI work.
func Spawn(command string, args []string, env []string) Outcome {
	cmd := exec.Command(command, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env

	err := cmd.Run()
	if err == nil {
		return Outcome{Exited: true, Status: 0}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if sig := terminationSignal(exitErr.ProcessState); sig != "" {
			return Outcome{Signal: sig}
		}
		return Outcome{Exited: true, Status: exitErr.ExitCode()}
	}

	return Outcome{Err: err}
}

// IsNotFound classifies a launch error as "executable not found", covering
// both PATH lookup misses (exec.ErrNotFound) and ENOENT on explicit paths.
// A not-found runtime is expected and silently skipped by the chain; every
// other launch error is surfaced.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
