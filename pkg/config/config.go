// Package config loads fcsetup's configuration by layering embedded
// defaults, an optional user TOML file, and FCSETUP_* environment
// variables, in that order of increasing precedence.
package config

import "time"

// Config holds all user-tunable settings
type Config struct {
	Probe       ProbeConfig     `koanf:"probe"`
	Installer   InstallerConfig `koanf:"installer"`
	Workbenches []string        `koanf:"workbenches"`
	Addons      []Addon         `koanf:"addons"`
}

// ProbeConfig controls how an existing FreeCAD installation is located
type ProbeConfig struct {
	// Patterns is an ordered list of glob patterns; the first match wins.
	// Environment variables in patterns are expanded before globbing.
	Patterns []string `koanf:"patterns"`
}

// InstallerConfig controls the download-and-run install path
type InstallerConfig struct {
	// URL is the pinned installer artifact for this platform
	URL string `koanf:"url"`

	// ReleasePage is the human-facing release listing, used in manual
	// install guidance when the download fails
	ReleasePage string `koanf:"release_page"`

	// FallbackURL is the weekly-build bundle page, offered as a manual
	// alternative when the pinned release cannot be fetched
	FallbackURL string `koanf:"fallback_url"`

	// Timeout bounds the artifact download
	Timeout time.Duration `koanf:"timeout"`
}

// Addon is a recommended companion package, installed manually through
// FreeCAD's Addon Manager
type Addon struct {
	Name        string `koanf:"name"`
	Description string `koanf:"description"`
}
