//go:build !windows

package linker

import (
	"io/fs"

	"github.com/cadbridge/fcsetup/pkg/errors"
)

// isLinkMode reports whether the mode describes a filesystem redirect
// rather than real content. On POSIX systems only symlinks qualify.
func isLinkMode(mode fs.FileMode) bool {
	return mode&fs.ModeSymlink != 0
}

// classifyLinkMode maps a link-type mode to its strategy
func classifyLinkMode(mode fs.FileMode) Strategy {
	if mode&fs.ModeSymlink != 0 {
		return StrategySymlink
	}
	return StrategyNone
}

// createJunction is a Windows-only mechanism; elsewhere it always fails
// so the caller falls through to the copy strategy.
func createJunction(source, target string) error {
	return errors.New(errors.ErrJunctionCreate, "directory junctions are not supported on this platform")
}
