package launcher

import (
	"io"
	"os"
	"runtime"

	"github.com/hashicorp/go-hclog"
)

// Options carries the injectable capabilities every launcher operation
// needs. The zero value means "use the ambient process defaults"; tests
// inject fakes to run deterministically without real subprocesses or
// environment mutation.
type Options struct {
	// Env is the full environment variable set, passed through to children
	// unchanged. Defaults to os.Environ(). Never mutated.
	Env []string

	// Spawn is the process-spawn capability. Defaults to Spawn.
	Spawn SpawnFunc

	// Resolver locates distribution units. Defaults to NewDirResolver(Env).
	Resolver PackageResolver

	// ExecPath is the launcher's own install location, used for the
	// local-override probe. Defaults to os.Executable().
	ExecPath string

	// OS and Arch identify the running platform. Default to runtime.GOOS
	// and runtime.GOARCH.
	OS   string
	Arch string

	// Stderr receives operator-facing diagnostics. Defaults to os.Stderr.
	// Stdout is never written to; it belongs to the wrapped CLI.
	Stderr io.Writer

	// Logger receives debug/trace logging. Defaults to a no-op logger.
	Logger hclog.Logger
}

// withDefaults fills unset fields with the ambient process defaults.
func (o Options) withDefaults() Options {
	if o.Env == nil {
		o.Env = os.Environ()
	}
	if o.Spawn == nil {
		o.Spawn = Spawn
	}
	if o.Resolver == nil {
		o.Resolver = NewDirResolver(o.Env)
	}
	if o.ExecPath == "" {
		if exe, err := os.Executable(); err == nil {
			o.ExecPath = exe
		}
	}
	if o.OS == "" {
		o.OS = runtime.GOOS
	}
	if o.Arch == "" {
		o.Arch = runtime.GOARCH
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = hclog.NewNullLogger()
	}
	return o
}
