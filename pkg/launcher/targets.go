package launcher

import "sort"

// PlatformTarget describes the optional native-binary package for one
// (GOOS, GOARCH) pair: the distribution unit that carries the binary and the
// executable path relative to the unit root (always slash-separated).
type PlatformTarget struct {
	Package string
	Bin     string
}

// nativeTargets is the fixed, process-wide target table. Keys are
// GOOS + "-" + GOARCH; lookup is exact and case-sensitive.
var nativeTargets = map[string]PlatformTarget{
	"linux-amd64":   {Package: "rhx-cli-linux-amd64", Bin: "bin/rhx"},
	"linux-arm64":   {Package: "rhx-cli-linux-arm64", Bin: "bin/rhx"},
	"darwin-amd64":  {Package: "rhx-cli-darwin-amd64", Bin: "bin/rhx"},
	"darwin-arm64":  {Package: "rhx-cli-darwin-arm64", Bin: "bin/rhx"},
	"windows-amd64": {Package: "rhx-cli-windows-amd64", Bin: "bin/rhx.exe"},
	"windows-arm64": {Package: "rhx-cli-windows-arm64", Bin: "bin/rhx.exe"},
}

// TargetKey builds the lookup key for a platform family / architecture pair.
func TargetKey(goos, goarch string) string {
	return goos + "-" + goarch
}

// TargetFor returns the native target for the given platform, and whether
// the platform has a prebuilt binary at all. An unknown pair is not an
// error; callers route it to the launcher fallback chain.
func TargetFor(goos, goarch string) (PlatformTarget, bool) {
	t, ok := nativeTargets[TargetKey(goos, goarch)]
	return t, ok
}

// TargetKeys returns all supported platform keys in sorted order.
func TargetKeys() []string {
	keys := make([]string, 0, len(nativeTargets))
	for k := range nativeTargets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
