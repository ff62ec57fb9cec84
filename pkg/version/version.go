package version

// Set with -ldflags at build time.
var (
	Version   = "UNKNOWN"
	GitCommit = "UNKNOWN"
)
