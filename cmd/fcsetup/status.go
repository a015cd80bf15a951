package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cadbridge/fcsetup/pkg/config"
	"github.com/cadbridge/fcsetup/pkg/filesystem"
	"github.com/cadbridge/fcsetup/pkg/linker"
	"github.com/cadbridge/fcsetup/pkg/paths"
	"github.com/cadbridge/fcsetup/pkg/probe"
	"github.com/cadbridge/fcsetup/pkg/ui"
	"github.com/cadbridge/fcsetup/pkg/workbench"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the detected FreeCAD installation and workbench link state",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}

		p, err := paths.New(sourceRoot)
		if err != nil {
			return err
		}

		fsys := filesystem.NewOS()
		reporter := ui.NewReporter(os.Stdout, ui.DetectFormat(os.Stdout))

		reporter.Title("FreeCAD")
		if path, found := probe.New(fsys).Find(cfg.Probe.Patterns); found {
			reporter.Successf("installed at %s", path)
		} else {
			reporter.Warnf("not found")
		}

		reporter.Blank()
		reporter.Title("Workbenches")
		lnk := linker.New(fsys, false)
		for _, name := range cfg.Workbenches {
			target := p.WorkbenchTarget(name)
			label := describeWorkbench(fsys, p.WorkbenchSource(name), name)

			switch strategy := lnk.Classify(target); strategy {
			case linker.StrategyNone:
				reporter.Warnf("%s: not provisioned", label)
			case linker.StrategyCopy:
				reporter.Infof("%s: copied (source edits do not propagate)", label)
			default:
				reporter.Successf("%s: %s -> %s", label, strategy, target)
			}
		}
		return nil
	},
}

// describeWorkbench augments the name with package.xml metadata when the
// source carries a manifest.
func describeWorkbench(fsys filesystem.FS, source, name string) string {
	meta, err := workbench.ReadMetadata(fsys, source)
	if err != nil || meta == nil || meta.Version == "" {
		return name
	}
	return name + " v" + meta.Version
}
