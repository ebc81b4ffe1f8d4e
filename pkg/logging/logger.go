// Package logging configures the hclog logger used for all launcher
// diagnostics. Output always goes to stderr (or a file via RHX_LOG_PATH);
// stdout belongs to the wrapped CLI.
package logging

import (
	"io"
	"os"
	"runtime"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates an hclog logger with the launcher's standard settings:
// UTC timestamps, JSON mode via RHX_JSON_LOG=1, and a per-line prefix on
// human-readable output (ASCII on Windows, snake on Unix).
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv("RHX_JSON_LOG") == "1"

	if !jsonFormat {
		prefix := "🐍 "
		if runtime.GOOS == "windows" {
			prefix = "[rhx] "
		}
		output = NewPrefixWriter(prefix, output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the configured log level from the environment.
func GetLogLevel() string {
	level := os.Getenv("RHX_LOG_LEVEL")
	if level == "" {
		level = "warn" // quiet by default; the launcher should be invisible
	}
	return level
}

// LogOutput returns the diagnostic output destination: the file named by
// RHX_LOG_PATH (append mode) when set and creatable, stderr otherwise.
func LogOutput() io.Writer {
	if logPath := os.Getenv("RHX_LOG_PATH"); logPath != "" {
		if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			return file
		}
	}
	return os.Stderr
}
