package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/nelyj/command-line-reporter/internal/version.Version
	Commit  = "unknown" // -X github.com/nelyj/command-line-reporter/internal/version.Commit
	Date    = "unknown" // -X github.com/nelyj/command-line-reporter/internal/version.Date
)
