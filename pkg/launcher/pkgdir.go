// SPDX-License-Identifier: Apache-2.0
package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrPackageNotFound is the sentinel wrapped by PackageResolver
// implementations when a distribution unit is simply not installed. Callers
// distinguish it from unclassified resolution failures via errors.Is; only
// the former is a handled, non-fatal outcome.
var ErrPackageNotFound = errors.New("package not found")

// PackageResolver is the module/package resolution capability: it maps a
// logical <unit>/<relative-path> identifier to an absolute executable path.
type PackageResolver interface {
	Resolve(unit, rel string) (string, error)
}

// DirResolver resolves distribution units against an ordered list of
// package root directories on disk.
type DirResolver struct {
	Roots []string
}

// NewDirResolver builds the default resolver for the given environment:
// roots come from RHX_PACKAGE_PATH when set, otherwise the per-OS user data
// directory (<data-dir>/rhx/packages).
func NewDirResolver(env []string) *DirResolver {
	if paths := getenv(env, EnvPackagePath, ""); paths != "" {
		var roots []string
		for _, p := range strings.Split(paths, string(os.PathListSeparator)) {
			if p != "" {
				roots = append(roots, p)
			}
		}
		return &DirResolver{Roots: roots}
	}
	return &DirResolver{Roots: defaultPackageRoots(env)}
}

// Resolve probes each root for <root>/<unit>/<rel> and returns the first
// regular file found. A missing unit wraps ErrPackageNotFound; any other
// filesystem failure (permissions, I/O) is fatal and propagates unchanged.
func (r *DirResolver) Resolve(unit, rel string) (string, error) {
	for _, root := range r.Roots {
		candidate := filepath.Join(root, unit, filepath.FromSlash(rel))
		info, err := os.Stat(candidate)
		if err == nil {
			if info.Mode().IsRegular() {
				return candidate, nil
			}
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("resolve %s/%s: %w", unit, rel, err)
		}
	}
	return "", fmt.Errorf("%s/%s: %w", unit, rel, ErrPackageNotFound)
}

// defaultPackageRoots returns the platform-conventional package root:
// %LOCALAPPDATA% on Windows, ~/Library/Application Support on macOS, and
// $XDG_DATA_HOME (or ~/.local/share) elsewhere.
func defaultPackageRoots(env []string) []string {
	var dataDir string

	switch runtime.GOOS {
	case "windows":
		dataDir = getenv(env, "LOCALAPPDATA", "")
		if dataDir == "" {
			if profile := getenv(env, "USERPROFILE", ""); profile != "" {
				dataDir = filepath.Join(profile, "AppData", "Local")
			}
		}
	case "darwin":
		if home := getenv(env, "HOME", ""); home != "" {
			dataDir = filepath.Join(home, "Library", "Application Support")
		}
	default:
		dataDir = getenv(env, "XDG_DATA_HOME", "")
		if dataDir == "" {
			if home := getenv(env, "HOME", ""); home != "" {
				dataDir = filepath.Join(home, ".local", "share")
			}
		}
	}

	if dataDir == "" {
		return nil
	}
	return []string{filepath.Join(dataDir, "rhx", "packages")}
}
