// Package probe locates an existing FreeCAD installation by checking an
// ordered list of glob patterns against the filesystem.
package probe

import (
	"os"
	"sort"

	"github.com/cadbridge/fcsetup/pkg/filesystem"
	"github.com/cadbridge/fcsetup/pkg/logging"
)

// Prober checks known install locations for an application binary
type Prober struct {
	fs filesystem.FS
}

// New creates a Prober backed by the given filesystem
func New(fs filesystem.FS) *Prober {
	return &Prober{fs: fs}
}

// Find returns the first existing path matched by the patterns, in
// pattern order. Matches within a single pattern are sorted so the
// result is deterministic. A missing or inaccessible path never
// surfaces an error; it simply does not match.
func (p *Prober) Find(patterns []string) (string, bool) {
	logger := logging.GetLogger("probe")

	for _, pattern := range patterns {
		expanded := os.ExpandEnv(pattern)

		matches, err := p.fs.Glob(expanded)
		if err != nil {
			// Only possible for malformed patterns; treat as no match
			logger.Debug().Err(err).Str("pattern", pattern).Msg("Glob failed")
			continue
		}
		sort.Strings(matches)

		for _, match := range matches {
			if _, err := p.fs.Stat(match); err != nil {
				continue
			}
			logger.Debug().Str("pattern", pattern).Str("path", match).Msg("Installation found")
			return match, true
		}
	}

	logger.Debug().Int("patterns", len(patterns)).Msg("No installation found")
	return "", false
}
