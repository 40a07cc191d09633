package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/legacychain/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/legacychain/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/legacychain/internal/version.Date={{.Date}}
)

// String returns the multi-line version banner printed by the version command
func String() string {
	return fmt.Sprintf("legacychain version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
