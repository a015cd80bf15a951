package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cadbridge/fcsetup/pkg/config"
	"github.com/cadbridge/fcsetup/pkg/errors"
)

var initConfigCmd = &cobra.Command{
	Use:   "init-config [path]",
	Short: "Write a starter config file with all defaults commented out",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := config.GenerateConfigContent()

		if len(args) == 0 {
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		}

		path := args[0]
		if _, err := os.Stat(path); err == nil {
			return errors.Newf(errors.ErrInvalidInput, "%s already exists, not overwriting", path)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}
