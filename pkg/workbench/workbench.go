// Package workbench models the workbench directories shipped in the
// source tree. Each workbench is treated as an opaque directory to link
// or copy; when a FreeCAD package.xml manifest is present its metadata
// is read for display purposes only.
package workbench

import (
	"os"
	"path/filepath"

	"github.com/beevik/etree"

	"github.com/cadbridge/fcsetup/pkg/errors"
	"github.com/cadbridge/fcsetup/pkg/filesystem"
)

// ManifestName is FreeCAD's addon metadata file
const ManifestName = "package.xml"

// Workbench is one named plugin directory in the source tree
type Workbench struct {
	Name   string
	Source string

	// TargetName is the directory name to create under Mod; defaults to
	// Name, overridable via the workbench's .fcsetup.toml
	TargetName string

	Meta *Metadata
}

// Metadata is the subset of package.xml fields fcsetup displays
type Metadata struct {
	Name        string
	Version     string
	Description string
	Maintainer  string
}

// Collect resolves the named workbenches against the source Mod
// directory. A missing source directory is an error: there is nothing
// sensible to link.
func Collect(fsys filesystem.FS, sourceModDir string, names []string) ([]Workbench, error) {
	benches := make([]Workbench, 0, len(names))
	for _, name := range names {
		dir := filepath.Join(sourceModDir, name)
		info, err := fsys.Stat(dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrWorkbenchNotFound,
				"workbench %s not found under %s", name, sourceModDir)
		}
		if !info.IsDir() {
			return nil, errors.Newf(errors.ErrWorkbenchNotFound,
				"workbench %s is not a directory", dir)
		}

		opts, err := ReadDirOptions(fsys, dir)
		if err != nil {
			return nil, err
		}
		if opts.Skip {
			continue
		}

		targetName := name
		if opts.TargetName != "" {
			targetName = opts.TargetName
		}

		meta, err := ReadMetadata(fsys, dir)
		if err != nil {
			return nil, err
		}

		benches = append(benches, Workbench{Name: name, Source: dir, TargetName: targetName, Meta: meta})
	}
	return benches, nil
}

// ReadMetadata parses the workbench's package.xml if one exists.
// Returns nil without error when the manifest is absent; workbenches
// are not required to carry one.
func ReadMetadata(fsys filesystem.FS, dir string) (*Metadata, error) {
	data, err := fsys.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s in %s", ManifestName, dir)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "malformed %s in %s", ManifestName, dir)
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.Newf(errors.ErrManifestParse, "empty %s in %s", ManifestName, dir)
	}

	meta := &Metadata{}
	if el := root.FindElement("name"); el != nil {
		meta.Name = el.Text()
	}
	if el := root.FindElement("version"); el != nil {
		meta.Version = el.Text()
	}
	if el := root.FindElement("description"); el != nil {
		meta.Description = el.Text()
	}
	if el := root.FindElement("maintainer"); el != nil {
		meta.Maintainer = el.Text()
	}
	return meta, nil
}
