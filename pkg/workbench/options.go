package workbench

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/cadbridge/fcsetup/pkg/errors"
	"github.com/cadbridge/fcsetup/pkg/filesystem"
)

// OptionsFile is an optional per-workbench settings file
const OptionsFile = ".fcsetup.toml"

// DirOptions tunes how one workbench directory is provisioned
type DirOptions struct {
	// Skip excludes the workbench from provisioning
	Skip bool `toml:"skip"`

	// TargetName overrides the directory name created under Mod
	TargetName string `toml:"target_name"`
}

// ReadDirOptions loads the workbench's .fcsetup.toml if present.
// Absence is not an error; defaults apply.
func ReadDirOptions(fsys filesystem.FS, dir string) (DirOptions, error) {
	var opts DirOptions

	data, err := fsys.ReadFile(filepath.Join(dir, OptionsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s in %s", OptionsFile, dir)
	}

	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrapf(err, errors.ErrConfigParse, "malformed %s in %s", OptionsFile, dir)
	}
	return opts, nil
}
