// Package buildinfo exposes version information stamped at build time.
//
// Set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/flowreach/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/flowreach/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/flowreach/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/flowreach
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the build information on three lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// Short returns "flowreach/<version>", used as the HTTP Server header.
func Short() string {
	return "flowreach/" + Version
}
