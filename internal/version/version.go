package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/Pixelated-Grunt/a3modlink/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/Pixelated-Grunt/a3modlink/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/Pixelated-Grunt/a3modlink/internal/version.Date={{.Date}}
)
