// Package version exposes build metadata for the insertdox binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the application version, set via ldflags. The fallback tracks
// the last tagged release.
var Version = "0.91"

// Revision returns the VCS revision the binary was built from, suffixed
// with -dirty when the working tree was modified.
func Revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	rev := "unknown"
	dirty := false

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if dirty {
		rev += "-dirty"
	}

	return rev
}

// String returns a single-line version description suitable for --version
// output.
func String() string {
	return fmt.Sprintf("%s (revision %s, %s %s/%s)",
		Version, Revision(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
