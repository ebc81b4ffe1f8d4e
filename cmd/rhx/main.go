package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/rhx-tools/rhx-launcher/pkg/launcher"
	"github.com/rhx-tools/rhx-launcher/pkg/logging"
)

const version = "0.1.0"

// getBuildTimestamp reports when this launcher binary was built, preferring
// vcs.time from build info and falling back to the binary's mtime.
func getBuildTimestamp() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func main() {
	logger := logging.NewLogger("rhx-launcher", logging.GetLogLevel(), logging.LogOutput())

	// Diagnostic CLI mode: only when explicitly requested does the launcher
	// interpret argv itself. Otherwise every argument belongs to the
	// wrapped CLI and is forwarded untouched.
	if os.Getenv("RHX_LAUNCHER_CLI") == "1" {
		runDiagCLI(logger)
		return
	}

	code, err := launcher.Dispatch(os.Args[1:], launcher.Options{Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "rhx: %v\n", err)
		os.Exit(launcher.ExitFailure)
	}
	os.Exit(code)
}
