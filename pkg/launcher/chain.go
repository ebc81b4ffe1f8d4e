// SPDX-License-Identifier: Apache-2.0
package launcher

import "fmt"

// Launcher is one alternative way to invoke the wrapped CLI through an
// external runtime: the runtime command name plus its full argument vector.
type Launcher struct {
	Command string
	Args    []string
}

// chainState tracks the sequential fallback protocol. The chain tries each
// launcher in order and either succeeds, exhausts the list after at least
// one real (runnable) attempt, or exhausts it having found no runtime at all.
type chainState int

const (
	chainTrying chainState = iota
	chainSucceeded
	chainExhaustedFailed
	chainExhaustedNoRuntime
)

// BuildLaunchers returns the fallback chain for the given distribution name
// and forwarded arguments. Order is fixed: uvx first, then pipx, then the
// interpreter-routed pipx forms for installs where pipx is importable but
// not on PATH. Each call builds fresh descriptors; nothing is shared or
// mutated between invocations.
func BuildLaunchers(dist string, args []string) []Launcher {
	return []Launcher{
		{Command: "uvx", Args: argv([]string{"--from"}, dist, args)},
		{Command: "pipx", Args: argv([]string{"run", "--spec"}, dist, args)},
		{Command: "python3", Args: argv([]string{"-m", "pipx", "run", "--spec"}, dist, args)},
		{Command: "python", Args: argv([]string{"-m", "pipx", "run", "--spec"}, dist, args)},
	}
}

// argv assembles prefix + dist + CLI token + forwarded args into a fresh
// slice, preserving argument order verbatim.
func argv(prefix []string, dist string, args []string) []string {
	v := make([]string, 0, len(prefix)+2+len(args))
	v = append(v, prefix...)
	v = append(v, dist, CLIName)
	v = append(v, args...)
	return v
}

// RunWithLaunchers tries each launcher in sequence until one succeeds,
// forwarding args verbatim with inherited terminal I/O and the full
// environment. Attempts are strictly sequential: each child runs to
// completion before the next launcher is considered.
//
// Outcome handling per attempt:
//   - runtime not installed: silently skip to the next launcher;
//   - launch error: report it, remember exit 1, keep trying;
//   - exit 0: success, stop immediately;
//   - nonzero exit: remember the status, keep trying;
//   - signal termination: report it and give up with exit 1 (a killed child
//     is a harder failure than a nonzero exit and is not retried).
//
// A runtime that exists but fails is worth surfacing with its exact status
// for scripting callers; a missing runtime is expected and stays silent.
func RunWithLaunchers(args []string, opts Options) int {
	opts = opts.withDefaults()
	logger := opts.Logger

	dist := getenv(opts.Env, EnvPackageOverride, DefaultPackage)
	launchers := BuildLaunchers(dist, args)
	logger.Debug("🐍 Trying Python tool launchers", "package", dist, "candidates", len(launchers))

	state := chainTrying
	lastStatus := ExitFailure
	sawRunnable := false

	for i := 0; state == chainTrying; i++ {
		if i == len(launchers) {
			if sawRunnable {
				state = chainExhaustedFailed
			} else {
				state = chainExhaustedNoRuntime
			}
			break
		}

		l := launchers[i]
		logger.Debug("🚀 Attempting launcher", "command", l.Command, "args", l.Args)
		logEnvironmentTrace(opts.Env, logger)

		out := opts.Spawn(l.Command, l.Args, opts.Env)
		switch {
		case out.Err != nil && IsNotFound(out.Err):
			logger.Debug("⏭️ Launcher not installed, skipping", "command", l.Command)

		case out.Err != nil:
			fmt.Fprintf(opts.Stderr, "rhx: %s: %v\n", l.Command, out.Err)
			sawRunnable = true
			lastStatus = ExitFailure

		case out.Signal != "":
			fmt.Fprintf(opts.Stderr, "rhx: %s terminated by signal %s\n", l.Command, out.Signal)
			return ExitFailure

		case out.Exited && out.Status == 0:
			logger.Debug("✅ Launcher succeeded", "command", l.Command)
			state = chainSucceeded

		case out.Exited:
			logger.Debug("⏹️ Launcher exited nonzero", "command", l.Command, "status", out.Status)
			sawRunnable = true
			lastStatus = out.Status

		default:
			// Spawner reported neither error, status, nor signal.
			sawRunnable = true
			lastStatus = ExitFailure
		}
	}

	switch state {
	case chainSucceeded:
		return ExitSuccess
	case chainExhaustedFailed:
		fmt.Fprintf(opts.Stderr, "rhx: all Python tool launchers failed (last exit status %d)\n", lastStatus)
		return lastStatus
	default:
		fmt.Fprintf(opts.Stderr, "rhx: Unable to find a Python tool launcher.\n")
		fmt.Fprintf(opts.Stderr, "rhx: install uv (https://docs.astral.sh/uv/) or pipx (https://pipx.pypa.io/), then retry: %s\n", retryInvocation(args))
		return ExitFailure
	}
}

// retryInvocation renders the exact command the user should re-run.
func retryInvocation(args []string) string {
	cmd := CLIName
	for _, a := range args {
		cmd += " " + a
	}
	return cmd
}
