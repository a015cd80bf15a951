//go:build windows

package linker

import (
	"io/fs"
	"os/exec"
	"strings"

	"github.com/cadbridge/fcsetup/pkg/errors"
)

// isLinkMode reports whether the mode describes a filesystem redirect
// rather than real content. Junctions surface as irregular files since
// Go stopped reporting them as symlinks, so both bits are checked.
func isLinkMode(mode fs.FileMode) bool {
	return mode&(fs.ModeSymlink|fs.ModeIrregular) != 0
}

// classifyLinkMode maps a link-type mode to its strategy
func classifyLinkMode(mode fs.FileMode) Strategy {
	if mode&fs.ModeSymlink != 0 {
		return StrategySymlink
	}
	if mode&fs.ModeIrregular != 0 {
		return StrategyJunction
	}
	return StrategyNone
}

// createJunction creates an NTFS directory junction, which unlike a
// symlink does not require elevation or developer mode.
func createJunction(source, target string) error {
	cmd := exec.Command("cmd", "/c", "mklink", "/J", target, source)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, errors.ErrJunctionCreate,
			"mklink /J failed: %s", strings.TrimSpace(string(out)))
	}
	return nil
}
