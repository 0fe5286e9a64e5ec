package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/z0mbix/withcleanenv/internal/config"
)

const programName = "with-clean-env"

const usageText = `Usage: with-clean-env [flags] [--] cmd [arg1 arg2 ...]

Summary:

    Runs a command with a clean environment. In particular, the
    command does not inherit the current process environment.

For example:

    with-clean-env cmd /c echo hello`

var (
	configPath string
	noColor    bool
	verbose    bool

	// Version information (set by main)
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information from build-time variables
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// exitError ends the program with a specific status. A nil err means the
// reason has already been reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   programName + " [flags] [--] cmd [arg...]",
		Short: "Run a command with the operating system's default environment",
		Long: usageText + `

The clean environment is the default environment the operating system
creates for the current user, as used for a fresh logon. Nothing from the
calling process is inherited. Use "--" before a program whose name matches
one of the commands below.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runProgram,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Everything after the program name belongs to the program
	rootCmd.Flags().SetInterspersed(false)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: $"+config.EnvConfigPath+" or the user config directory)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Print progress information to stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &exitError{code: 2, err: err}
	})

	// Add subcommands
	rootCmd.AddCommand(NewShowCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s %s\n", programName, version)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", commit)
			_, _ = fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}

// Execute runs the CLI and exits the process
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Run runs the CLI with the given arguments and streams and returns the
// process exit status.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	code := 1
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		code = exitErr.code
		if exitErr.err == nil {
			return code
		}
	}

	newLogger(stderr, useColors(noColor, stderr), false).Errorf("%v", err)
	return code
}
