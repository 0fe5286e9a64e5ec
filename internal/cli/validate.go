package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/z0mbix/withcleanenv/internal/config"
)

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Long: `The validate command parses the configuration file and checks
its settings without reading the clean environment or running anything.

This is useful for CI/CD pipelines or pre-commit hooks.`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	settings, path, err := config.Load(configPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if path == "" {
		_, _ = fmt.Fprintln(out, "No configuration file found; using defaults.")
		return nil
	}

	_, _ = fmt.Fprintf(out, "Configuration %s is valid.\n", path)
	if verbose {
		_, _ = fmt.Fprintf(out, "  no_color         = %t\n", settings.NoColor)
		_, _ = fmt.Fprintf(out, "  verbose          = %t\n", settings.Verbose)
		_, _ = fmt.Fprintf(out, "  signal_exit_code = %d\n", settings.SignalExitCode)
		_, _ = fmt.Fprintf(out, "  show.format      = %q\n", settings.ShowFormat)
	}
	return nil
}
