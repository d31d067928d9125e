// Package version holds build metadata stamped in at link time.
package version

// Set via -ldflags, e.g.
//
//	go build -ldflags "-X .../internal/version.Version=v1.2.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
