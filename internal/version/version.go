package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/cadbridge/fcsetup/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/cadbridge/fcsetup/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/cadbridge/fcsetup/internal/version.Date={{.Date}}
)
