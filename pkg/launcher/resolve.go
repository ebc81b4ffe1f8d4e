// SPDX-License-Identifier: Apache-2.0
package launcher

import (
	"errors"
	"os"
	"path/filepath"
)

// Resolution is the outcome of locating a native executable for one
// platform. Supported=false means the platform has no prebuilt binary at
// all; Supported=true with an empty Path means the platform is recognized
// but its optional package was never installed. Both are handled, non-fatal
// outcomes.
type Resolution struct {
	Supported bool
	Package   string
	Path      string
}

// ResolveNative locates the prebuilt rhx binary for the given platform.
// Two lookup tiers, first hit wins:
//
//  1. local override: a co-located package layout two levels above the
//     launcher's own install directory (a linked or staged build takes
//     precedence over anything externally resolved);
//  2. standard resolution through the injected PackageResolver.
//
// A resolver miss that wraps ErrPackageNotFound yields "recognized but not
// installed"; any other resolver error is fatal and propagates unchanged.
func ResolveNative(goos, goarch string, opts Options) (Resolution, error) {
	opts = opts.withDefaults()
	logger := opts.Logger

	target, ok := TargetFor(goos, goarch)
	if !ok {
		logger.Debug("🔍 No native target for platform", "key", TargetKey(goos, goarch))
		return Resolution{}, nil
	}

	res := Resolution{Supported: true, Package: target.Package}

	if p := localOverridePath(opts.ExecPath, target); p != "" {
		logger.Debug("✅ Using locally staged native binary", "path", p)
		res.Path = p
		return res, nil
	}

	path, err := opts.Resolver.Resolve(target.Package, target.Bin)
	if err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			logger.Debug("📦 Native package not installed", "package", target.Package)
			return res, nil
		}
		return Resolution{}, err
	}

	logger.Debug("✅ Resolved native binary", "package", target.Package, "path", path)
	res.Path = path
	return res, nil
}

// localOverridePath probes dir(execPath)/../../<unit>/<bin> for a staged
// sibling package. Pure existence check: it never invokes the resolver and
// never errors.
func localOverridePath(execPath string, target PlatformTarget) string {
	if execPath == "" {
		return ""
	}
	candidate := filepath.Join(
		filepath.Dir(execPath), "..", "..",
		target.Package, filepath.FromSlash(target.Bin),
	)
	info, err := os.Stat(candidate)
	if err != nil || !info.Mode().IsRegular() {
		return ""
	}
	return candidate
}
