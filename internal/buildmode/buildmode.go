// Package buildmode reports whether the binary was built for development.
package buildmode

// Mode is the build flavour selected at compile time.
type Mode string

const (
	Debug   Mode = "debug"
	Release Mode = "release"
)

// Current returns the mode this binary was compiled in.
func Current() Mode {
	if debugBuild {
		return Debug
	}
	return Release
}

// IsDebug reports whether this is a debug build (`wails dev` or `wails build -debug`).
func IsDebug() bool {
	return debugBuild
}
