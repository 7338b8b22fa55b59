// Package platform identifies the host OS family used to pick a native installer.
package platform

import "runtime"

// Platform is the host OS family.
type Platform int

const (
	// Unknown is never returned by Detect; it only exists so callers can
	// exercise the installer's unsupported-platform branch.
	Unknown Platform = iota
	Windows
	MacOS
	Linux
)

// GOOS values recognized by FromGOOS.
const (
	goosWindows = "windows"
	goosDarwin  = "darwin"
)

// Detect returns the platform of the running process.
func Detect() Platform {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS maps a runtime.GOOS value to a Platform.
// Anything that is not Windows or macOS is handled as Linux.
func FromGOOS(goos string) Platform {
	switch goos {
	case goosWindows:
		return Windows
	case goosDarwin:
		return MacOS
	default:
		return Linux
	}
}

func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	case MacOS:
		return "macos"
	case Linux:
		return "linux"
	default:
		return "unknown"
	}
}
