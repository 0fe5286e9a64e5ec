package cli

import (
	"github.com/spf13/cobra"

	"github.com/z0mbix/withcleanenv/internal/cleanenv"
	"github.com/z0mbix/withcleanenv/internal/diff"
)

var namesOnly bool

// NewDiffCmd creates the diff command
func NewDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare the current environment with the clean one",
		Long: `The diff command shows how the environment of the calling process
differs from the clean environment a command would receive.

  + NAME=VALUE   only in the clean environment
  - NAME=VALUE   only in the current environment (dropped)
  ~ NAME         present in both with different values

List values such as PATH are compared entry by entry.`,
		Args: cobra.NoArgs,
		RunE: runDiff,
	}

	cmd.Flags().BoolVar(&namesOnly, "names-only", false,
		"Print variable names without their values")

	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	clean, err := cleanEnvironment(newLogger(stderr, useColors(settings.NoColor, stderr), settings.Verbose))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer := diff.NewPrinter(out, useColors(settings.NoColor, out))
	printer.SetNamesOnly(namesOnly)
	printer.PrintChanges(diff.Compare(cleanenv.Inherited(), clean))

	return nil
}
