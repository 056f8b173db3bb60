// Package version carries the release metadata printed by gotruss.
package version

import "fmt"

// Overridden at link time, e.g.
//
//	go build -ldflags "-X github.com/alexiusacademia/gotruss/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.3.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

const (
	Author = "Alexius Academia"
	Year   = "2026"
)

// String is the one-line version banner
func String() string {
	return fmt.Sprintf("gotruss v%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
