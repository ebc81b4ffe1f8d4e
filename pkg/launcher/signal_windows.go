//go:build windows

package launcher

import "os"

// terminationSignal always returns "" on Windows: a killed child surfaces
// as a nonzero exit status, never as a named signal.
func terminationSignal(_ *os.ProcessState) string {
	return ""
}
