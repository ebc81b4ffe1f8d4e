// SPDX-License-Identifier: Apache-2.0
package launcher

import "fmt"

// Dispatch is the top-level entry point: it resolves the native binary for
// the current platform and runs it, or falls back to the Python launcher
// chain. The returned code is the wrapped CLI's verbatim exit code (or 1
// for launch failures and signal terminations).
//
// A non-nil error is returned only for unclassified resolution failures —
// an environment defect this core deliberately does not paper over.
func Dispatch(args []string, opts Options) (int, error) {
	opts = opts.withDefaults()
	logger := opts.Logger

	res, err := ResolveNative(opts.OS, opts.Arch, opts)
	if err != nil {
		return ExitFailure, err
	}

	if !res.Supported {
		logger.Debug("🐍 Platform has no native binary, using launcher chain",
			"os", opts.OS, "arch", opts.Arch)
		return RunWithLaunchers(args, opts), nil
	}

	if res.Path == "" {
		fmt.Fprintf(opts.Stderr, "rhx: native package %s is not installed\n", res.Package)
		if !isEnvTrue(opts.Env, EnvForceFallback) {
			// Fail closed: don't silently substitute a different runtime.
			fmt.Fprintf(opts.Stderr, "rhx: reinstall rhx, or set %s=1 to use a Python tool launcher instead, then retry: %s\n",
				EnvForceFallback, retryInvocation(args))
			return ExitFailure, nil
		}
		logger.Debug("🐍 Fallback forced despite missing native package", "package", res.Package)
		return RunWithLaunchers(args, opts), nil
	}

	logger.Debug("🚀 Running native binary", "path", res.Path, "args", args)
	logEnvironmentTrace(opts.Env, logger)

	out := opts.Spawn(res.Path, args, opts.Env)
	switch {
	case out.Err != nil:
		fmt.Fprintf(opts.Stderr, "rhx: %s: %v\n", res.Path, out.Err)
		return ExitFailure, nil
	case out.Signal != "":
		fmt.Fprintf(opts.Stderr, "rhx: %s terminated by signal %s\n", CLIName, out.Signal)
		return ExitFailure, nil
	case out.Exited:
		return out.Status, nil
	default:
		return ExitFailure, nil
	}
}
