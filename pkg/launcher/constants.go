package launcher

// Core launcher identity that never changes.
// For the native target table, see targets.go.
const (
	// CLIName is the console-script token of the wrapped CLI.
	CLIName = "rhx"

	// DefaultPackage is the distribution unit installed by the fallback
	// launchers when RHX_PYPI_PACKAGE is unset.
	DefaultPackage = "rhx-cli"
)

// =================================
// Environment variables
// =================================
const (
	// EnvPackageOverride overrides the distribution name used when building
	// the fallback chain.
	EnvPackageOverride = "RHX_PYPI_PACKAGE"

	// EnvForceFallback, when set to the literal "1", permits falling back to
	// external launchers even when the native package was expected but is
	// missing. Default behavior fails closed.
	EnvForceFallback = "RHX_FORCE_FALLBACK"

	// EnvPackagePath lists package roots searched by DirResolver, separated
	// by the OS path-list separator.
	EnvPackagePath = "RHX_PACKAGE_PATH"
)

// =================================
// Exit codes
// =================================
const (
	ExitSuccess = 0
	// ExitFailure is the generic catch-all for launch failures, signal
	// terminations, and "no runtime available". Child exit codes pass
	// through verbatim and are not remapped.
	ExitFailure = 1
)
