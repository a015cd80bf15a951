// Package bootstrap orchestrates the setup run: probe for FreeCAD,
// install it when missing, provision workbench links, and print the
// addon advisory. Stages run strictly in sequence; the installer child
// process is awaited before any linking happens.
package bootstrap

import (
	"io"
	"path/filepath"

	"github.com/cadbridge/fcsetup/pkg/advisor"
	"github.com/cadbridge/fcsetup/pkg/config"
	"github.com/cadbridge/fcsetup/pkg/errors"
	"github.com/cadbridge/fcsetup/pkg/filesystem"
	"github.com/cadbridge/fcsetup/pkg/installer"
	"github.com/cadbridge/fcsetup/pkg/linker"
	"github.com/cadbridge/fcsetup/pkg/logging"
	"github.com/cadbridge/fcsetup/pkg/paths"
	"github.com/cadbridge/fcsetup/pkg/probe"
	"github.com/cadbridge/fcsetup/pkg/ui"
	"github.com/cadbridge/fcsetup/pkg/workbench"
)

// Options are the run toggles, read once at start and never mutated
type Options struct {
	// SkipInstall bypasses the probe prompt and installer entirely
	SkipInstall bool

	// SkipAddons suppresses the advisory stage
	SkipAddons bool

	// DryRun reports planned link operations without touching the filesystem
	DryRun bool

	// Interactive enables the pre-download confirmation prompt; when
	// false (stdin not a terminal) the download proceeds unprompted
	Interactive bool
}

// Runner wires the stages together
type Runner struct {
	cfg      *config.Config
	paths    paths.Paths
	fs       filesystem.FS
	reporter *ui.Reporter
	stdin    io.Reader

	// Installer is replaceable in tests; defaults to the configured one
	Installer *installer.Installer
}

// NewRunner creates a Runner over the given collaborators
func NewRunner(cfg *config.Config, p paths.Paths, fsys filesystem.FS, reporter *ui.Reporter, stdin io.Reader) *Runner {
	return &Runner{
		cfg:       cfg,
		paths:     p,
		fs:        fsys,
		reporter:  reporter,
		stdin:     stdin,
		Installer: installer.New(cfg.Installer),
	}
}

// Run executes the full bootstrap sequence. Only the two documented
// recoverable paths (download failure, link fallback) degrade locally;
// everything else aborts the run with an error.
func (r *Runner) Run(opts Options) (*Report, error) {
	logger := logging.GetLogger("bootstrap")
	report := &Report{}

	// Stage 1: probe
	prober := probe.New(r.fs)
	installPath, found := prober.Find(r.cfg.Probe.Patterns)
	if found {
		report.InstallPath = installPath
		report.Install = Outcome{Kind: OutcomeSkipped, Message: "already installed"}
		r.reporter.Successf("Found FreeCAD: %s", installPath)
	} else {
		r.reporter.Warnf("No FreeCAD installation found")
	}

	// Stage 2: install
	if !found && !opts.SkipInstall {
		report.Install = r.install(opts)
	} else if opts.SkipInstall {
		report.Install = Outcome{Kind: OutcomeSkipped, Message: "skipped by flag"}
		logger.Debug().Msg("Install stage skipped by flag")
	}

	// Stage 3: link workbenches
	if err := r.ensureBaseDirs(opts); err != nil {
		return report, err
	}

	benches, err := workbench.Collect(r.fs, filepath.Join(r.paths.SourceRoot(), paths.SourceModDir), r.cfg.Workbenches)
	if err != nil {
		return report, err
	}

	lnk := linker.New(r.fs, opts.DryRun)
	for _, wb := range benches {
		result, err := lnk.Provision(wb.Name, wb.Source, r.paths.WorkbenchTarget(wb.TargetName))
		if err != nil {
			return report, err
		}
		report.Links = append(report.Links, result)
		r.reportLink(opts, result)
	}

	// Stage 4: advisory
	if !opts.SkipAddons {
		advisor.New(r.cfg.Addons).Print(r.reporter)
		report.AdvisoryShown = true
	}

	return report, nil
}

// install downloads and runs the installer, degrading to manual
// guidance on failure. The child's exit code is not consulted; a rerun
// of the probe is the way to confirm the install.
func (r *Runner) install(opts Options) Outcome {
	logger := logging.GetLogger("bootstrap")

	if opts.Interactive {
		if !ui.Confirm(r.stdin, r.reporter.Writer(), "Download and run the FreeCAD installer?", true) {
			logger.Info().Msg("Install declined by operator")
			return Outcome{Kind: OutcomeSkipped, Message: "declined by operator"}
		}
	}

	if err := r.Installer.DownloadAndRun(); err != nil {
		logger.Warn().Err(err).Msg("Installer failed, degrading to manual guidance")
		r.reporter.Errorf("Installer failed: %v", err)
		r.reporter.Plain(r.Installer.ManualGuidance())
		return Outcome{Kind: OutcomeRecovered, Message: err.Error()}
	}

	r.reporter.Successf("Installer finished")
	return Outcome{Kind: OutcomeOk}
}

func (r *Runner) ensureBaseDirs(opts Options) error {
	if opts.DryRun {
		return nil
	}
	for _, dir := range []string{r.paths.ModDir(), r.paths.MacroDir()} {
		if err := r.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dir)
		}
	}
	return nil
}

func (r *Runner) reportLink(opts Options, result linker.Result) {
	if opts.DryRun {
		r.reporter.Infof("Would link %s -> %s", result.Target, result.Source)
		return
	}

	for _, attempt := range result.Attempts {
		r.reporter.Infof("%s: %s failed (%v)", result.Workbench, attempt.Strategy, attempt.Err)
	}

	switch {
	case result.Strategy.Live():
		r.reporter.Successf("%s provisioned via %s", result.Workbench, result.Strategy)
	case result.Strategy == linker.StrategyCopy:
		r.reporter.Warnf("%s copied; edits to the source will NOT propagate until you rerun fcsetup", result.Workbench)
	}
}
