// Package version provides build version information for restkit.
//
// Version and git commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/restkit/restkit/version.Version=1.0.0"
package version
