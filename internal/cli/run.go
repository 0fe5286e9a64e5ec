package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/z0mbix/withcleanenv/internal/cleanenv"
	"github.com/z0mbix/withcleanenv/internal/config"
	"github.com/z0mbix/withcleanenv/internal/launcher"
)

// cleanEnvironment produces the clean environment. Tests replace it.
var cleanEnvironment = func(log *logger) (cleanenv.Environment, error) {
	p := cleanenv.NewProvider()
	p.Tracef = log.Debugf
	p.OnReleaseError = func(resource string, err error) {
		log.Warnf("failed to release %s: %v", resource, err)
	}
	return p.Environment()
}

// loadSettings combines defaults, the config file and command-line flags
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	settings, path, err := config.Load(configPath)
	if err != nil {
		return settings, err
	}

	if cmd.Flags().Changed("no-color") {
		settings.NoColor = noColor
	}
	if cmd.Flags().Changed("verbose") {
		settings.Verbose = verbose
	}

	if path != "" {
		newLogger(cmd.ErrOrStderr(), useColors(settings.NoColor, cmd.ErrOrStderr()), settings.Verbose).
			Debugf("loaded config from %s", path)
	}

	return settings, nil
}

func runProgram(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), usageText)
		return &exitError{code: 2}
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	log := newLogger(stderr, useColors(settings.NoColor, stderr), settings.Verbose)

	env, err := cleanEnvironment(log)
	if err != nil {
		return err
	}

	program := args[0]
	log.Debugf("running %s with %d variables", program, env.Len())

	result, err := launcher.Run(context.Background(), launcher.Spec{
		Program: program,
		Args:    args[1:],
		Env:     env.Environ(),
		Stdin:   cmd.InOrStdin(),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  stderr,
	})
	if err != nil {
		return err
	}

	if !result.Exited {
		return &exitError{
			code: settings.SignalExitCode,
			err:  errors.New("could not read process exit code"),
		}
	}

	log.Debugf("%s exited with status %d", program, result.ExitCode)
	if result.ExitCode != 0 {
		return &exitError{code: result.ExitCode}
	}
	return nil
}
