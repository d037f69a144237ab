// Package version exposes build version information for streamkit
// binaries.
//
// Version and git commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/streamkit/version.Version=1.0.0"
//
// When ldflags are absent, gaps are filled from the VCS metadata the Go
// toolchain embeds in the binary.
package version
