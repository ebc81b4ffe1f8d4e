// Package launcher locates and runs the rhx CLI backend for the current
// platform. It prefers a prebuilt native binary shipped as an optional
// platform package and falls back to an ordered chain of Python tool
// launchers (uvx, pipx, python -m pipx) when no native binary is available.
//
// The package never interprets the wrapped CLI's arguments or output: argv
// is forwarded verbatim, stdio is inherited, and the child's exit code is
// returned unchanged. All launcher diagnostics go to stderr.
package launcher
