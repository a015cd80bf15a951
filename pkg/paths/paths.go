// Package paths provides centralized path handling for fcsetup.
// It resolves the workbench source tree and the FreeCAD per-user
// application-data directory, with environment overrides for both.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"

	"github.com/cadbridge/fcsetup/pkg/errors"
)

// Environment variable names
const (
	// EnvSourceRoot overrides the workbench source tree location
	EnvSourceRoot = "FCSETUP_SOURCE_ROOT"

	// EnvUserDir overrides the FreeCAD per-user application-data directory
	EnvUserDir = "FCSETUP_USER_DIR"
)

// Well-known directory names inside the FreeCAD user directory.
// These mirror FreeCAD's own layout and are not user-configurable.
const (
	// AppDirName is FreeCAD's directory name under the user-data root
	AppDirName = "FreeCAD"

	// ModDirName is the directory FreeCAD scans for workbench modules
	ModDirName = "Mod"

	// MacroDirName is the directory FreeCAD uses for user macros
	MacroDirName = "Macro"

	// SourceModDir is the directory in the source tree that holds workbenches
	SourceModDir = "Mod"
)

// Paths provides centralized path management for fcsetup
type Paths interface {
	// SourceRoot is the root of the workbench source tree
	SourceRoot() string

	// UserDir is the FreeCAD per-user application-data directory
	UserDir() string

	// ModDir is where workbench link targets are provisioned
	ModDir() string

	// MacroDir is FreeCAD's user macro directory
	MacroDir() string

	// WorkbenchSource returns the source directory for a named workbench
	WorkbenchSource(name string) string

	// WorkbenchTarget returns the link target for a named workbench
	WorkbenchTarget(name string) string
}

type paths struct {
	sourceRoot string
	userDir    string
}

// New creates a Paths instance. An empty sourceRoot falls back to the
// FCSETUP_SOURCE_ROOT environment variable and then the current directory.
func New(sourceRoot string) (Paths, error) {
	root, err := resolveSourceRoot(sourceRoot)
	if err != nil {
		return nil, err
	}

	userDir := resolveUserDir()

	return &paths{
		sourceRoot: root,
		userDir:    userDir,
	}, nil
}

func (p *paths) SourceRoot() string {
	return p.sourceRoot
}

func (p *paths) UserDir() string {
	return p.userDir
}

func (p *paths) ModDir() string {
	return filepath.Join(p.userDir, ModDirName)
}

func (p *paths) MacroDir() string {
	return filepath.Join(p.userDir, MacroDirName)
}

func (p *paths) WorkbenchSource(name string) string {
	return filepath.Join(p.sourceRoot, SourceModDir, name)
}

func (p *paths) WorkbenchTarget(name string) string {
	return filepath.Join(p.ModDir(), name)
}

func resolveSourceRoot(explicit string) (string, error) {
	root := explicit
	if root == "" {
		root = os.Getenv(EnvSourceRoot)
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInvalidInput, "cannot determine working directory")
		}
		root = cwd
	}

	root, err := expandHome(root)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid source root %q", root)
	}
	return abs, nil
}

// resolveUserDir returns the FreeCAD user-data directory for this platform.
// FreeCAD itself uses %APPDATA%\FreeCAD on Windows and the XDG data home
// elsewhere; very old Linux installs used ~/.FreeCAD, which is honored when
// present and the XDG directory is not.
func resolveUserDir() string {
	if dir := os.Getenv(EnvUserDir); dir != "" {
		if expanded, err := expandHome(dir); err == nil {
			return expanded
		}
		return dir
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppDirName)
		}
	}

	xdgDir := filepath.Join(xdg.DataHome, AppDirName)

	if runtime.GOOS == "linux" {
		if home, err := os.UserHomeDir(); err == nil {
			legacy := filepath.Join(home, ".FreeCAD")
			if dirExists(legacy) && !dirExists(xdgDir) {
				return legacy
			}
		}
	}

	return xdgDir
}

func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInvalidInput, "cannot expand ~ in path")
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
