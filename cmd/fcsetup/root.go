package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cadbridge/fcsetup/internal/version"
	"github.com/cadbridge/fcsetup/pkg/bootstrap"
	"github.com/cadbridge/fcsetup/pkg/config"
	"github.com/cadbridge/fcsetup/pkg/filesystem"
	"github.com/cadbridge/fcsetup/pkg/logging"
	"github.com/cadbridge/fcsetup/pkg/paths"
	"github.com/cadbridge/fcsetup/pkg/ui"
)

var (
	verbosity   int
	skipInstall bool
	skipAddons  bool
	dryRun      bool
	configFile  string
	sourceRoot  string

	rootCmd = &cobra.Command{
		Use:   "fcsetup",
		Short: "Bootstrap a FreeCAD workbench development environment",
		Long: `fcsetup detects or installs FreeCAD, links this repository's workbench
directories into FreeCAD's per-user Mod directory, and prints setup
instructions. Linking is preferred over copying so edits to the source
tree show up in FreeCAD without rerunning the tool.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap()
		},
	}
)

// Execute runs the root command tree.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	initTemplateFormatting()

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (TOML); defaults and FCSETUP_* env vars apply without one")
	rootCmd.PersistentFlags().StringVar(&sourceRoot, "source-root", "", "Workbench source tree (default: $FCSETUP_SOURCE_ROOT or the current directory)")

	rootCmd.Flags().BoolVar(&skipInstall, "skip-install", false, "Do not download or run the FreeCAD installer")
	rootCmd.Flags().BoolVar(&skipAddons, "skip-addons", false, "Suppress the recommended-addons advisory")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report planned link operations without executing them")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(completionCmd)
}

func runBootstrap() error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	p, err := paths.New(sourceRoot)
	if err != nil {
		return err
	}

	reporter := ui.NewReporter(os.Stdout, ui.DetectFormat(os.Stdout))
	runner := bootstrap.NewRunner(cfg, p, filesystem.NewOS(), reporter, os.Stdin)

	opts := bootstrap.Options{
		SkipInstall: skipInstall,
		SkipAddons:  skipAddons,
		DryRun:      dryRun,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()),
	}

	_, err = runner.Run(opts)
	return err
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fcsetup version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:                   "completion [bash|zsh|fish|powershell]",
	Short:                 "Generate shell completion script",
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate bash completion")
			}
		case "zsh":
			if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate zsh completion")
			}
		case "fish":
			if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
				log.Error().Err(err).Msg("Failed to generate fish completion")
			}
		case "powershell":
			if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate powershell completion")
			}
		}
	},
}
