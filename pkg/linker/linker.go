// Package linker provisions workbench directories into FreeCAD's Mod
// directory. For each target it tries, in order: symbolic link, directory
// junction, recursive copy. Linking is preferred because edits to the
// source tree then show up in FreeCAD without rerunning the tool; a copy
// is a degraded mode and is reported as such.
package linker

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cadbridge/fcsetup/pkg/errors"
	"github.com/cadbridge/fcsetup/pkg/filesystem"
	"github.com/cadbridge/fcsetup/pkg/logging"
)

// Strategy identifies how a target was (or would be) provisioned
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategySymlink
	StrategyJunction
	StrategyCopy
)

// String returns the strategy name
func (s Strategy) String() string {
	switch s {
	case StrategySymlink:
		return "symlink"
	case StrategyJunction:
		return "junction"
	case StrategyCopy:
		return "copy"
	default:
		return "none"
	}
}

// Live reports whether edits to the source propagate to the target
func (s Strategy) Live() bool {
	return s == StrategySymlink || s == StrategyJunction
}

// Attempt records one strategy attempt and its failure, if any
type Attempt struct {
	Strategy Strategy
	Err      error
}

// Result describes the provisioning outcome for one workbench
type Result struct {
	Workbench string
	Source    string
	Target    string
	Strategy  Strategy
	Attempts  []Attempt
}

// Linker provisions link targets with an ordered fallback chain
type Linker struct {
	fs     filesystem.FS
	dryRun bool
}

// New creates a Linker backed by the given filesystem
func New(fs filesystem.FS, dryRun bool) *Linker {
	return &Linker{fs: fs, dryRun: dryRun}
}

// Provision ensures target mirrors source, preferring live linking.
// The target's parent directory must already exist. On return the target
// holds exactly one of symlink, junction, or copied directory; it is
// never left in a partial state.
func (l *Linker) Provision(name, source, target string) (Result, error) {
	logger := logging.GetLogger("linker")
	result := Result{Workbench: name, Source: source, Target: target}

	info, err := l.fs.Stat(source)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrWorkbenchNotFound,
			"workbench source %s does not exist", source)
	}
	if !info.IsDir() {
		return result, errors.Newf(errors.ErrWorkbenchNotFound,
			"workbench source %s is not a directory", source)
	}

	if l.dryRun {
		logger.Info().Str("workbench", name).Str("target", target).Msg("Dry run, skipping provisioning")
		return result, nil
	}

	if err := l.removeExisting(target); err != nil {
		return result, err
	}

	// 1. Symbolic link. Needs elevation on some platforms; failure here
	// is expected and falls through.
	err = l.fs.Symlink(source, target)
	if err == nil {
		result.Strategy = StrategySymlink
		logger.Info().Str("workbench", name).Str("target", target).Msg("Created symlink")
		return result, nil
	}
	result.Attempts = append(result.Attempts, Attempt{StrategySymlink, err})
	logger.Debug().Err(err).Str("workbench", name).Msg("Symlink failed, trying junction")

	// 2. Directory junction, privilege-free on Windows. Elsewhere this
	// reports unsupported and falls through.
	err = createJunction(source, target)
	if err == nil {
		result.Strategy = StrategyJunction
		logger.Info().Str("workbench", name).Str("target", target).Msg("Created junction")
		return result, nil
	}
	result.Attempts = append(result.Attempts, Attempt{StrategyJunction, err})
	logger.Debug().Err(err).Str("workbench", name).Msg("Junction failed, falling back to copy")

	// 3. Recursive copy, the always-works last resort. Copy lands in a
	// temp sibling first so the target never exists half-populated.
	if err := l.copyDir(source, target); err != nil {
		return result, errors.Wrapf(err, errors.ErrCopyFailed,
			"all provisioning strategies failed for %s", name)
	}
	result.Strategy = StrategyCopy
	logger.Warn().Str("workbench", name).Str("target", target).
		Msg("Copied directory; source edits will not propagate")
	return result, nil
}

// Classify reports how an existing target is currently provisioned:
// StrategyNone when missing (or an anomalous plain file), otherwise the
// strategy whose artifact is present.
func (l *Linker) Classify(target string) Strategy {
	info, err := l.fs.Lstat(target)
	if err != nil {
		return StrategyNone
	}
	if s := classifyLinkMode(info.Mode()); s != StrategyNone {
		return s
	}
	if info.IsDir() {
		return StrategyCopy
	}
	return StrategyNone
}

// removeExisting clears the target path ahead of provisioning. Link-type
// targets are removed with a link-aware primitive: recursive deletion
// through a junction can traverse into the source directory on some
// platforms.
func (l *Linker) removeExisting(target string) error {
	info, err := l.fs.Lstat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrTargetRemove, "cannot inspect existing target %s", target)
	}

	if isLinkMode(info.Mode()) {
		err = l.fs.Remove(target)
	} else if info.IsDir() {
		err = l.fs.RemoveAll(target)
	} else {
		err = l.fs.Remove(target)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrTargetRemove, "cannot remove existing target %s", target)
	}
	return nil
}

func (l *Linker) copyDir(source, target string) error {
	tmp := target + ".partial"
	if err := l.fs.RemoveAll(tmp); err != nil {
		return err
	}
	if err := l.copyTree(source, tmp); err != nil {
		_ = l.fs.RemoveAll(tmp)
		return err
	}
	return l.fs.Rename(tmp, target)
}

func (l *Linker) copyTree(source, target string) error {
	info, err := l.fs.Stat(source)
	if err != nil {
		return err
	}
	if err := l.fs.MkdirAll(target, info.Mode().Perm()); err != nil {
		return err
	}

	entries, err := l.fs.ReadDir(source)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(source, entry.Name())
		dstPath := filepath.Join(target, entry.Name())

		if entry.IsDir() {
			if err := l.copyTree(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		if err := l.copyFile(srcPath, dstPath, entry); err != nil {
			return err
		}
	}
	return nil
}

func (l *Linker) copyFile(source, target string, entry fs.DirEntry) error {
	data, err := l.fs.ReadFile(source)
	if err != nil {
		return err
	}
	perm := fs.FileMode(0644)
	if info, err := entry.Info(); err == nil {
		perm = info.Mode().Perm()
	}
	return l.fs.WriteFile(target, data, perm)
}
