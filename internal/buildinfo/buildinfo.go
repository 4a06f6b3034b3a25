// Package buildinfo carries identifiers stamped in with -ldflags:
//
//	go build -ldflags "-X quarkprop/internal/buildinfo.Version=v0.3.0 -X quarkprop/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long returns the multi-line version banner printed by the CLI.
func Long(program string) string {
	return fmt.Sprintf("%s %s\n  commit: %s\n  built:  %s\n  go:     %s %s/%s\n",
		program, Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
