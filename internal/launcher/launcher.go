// Package launcher runs a child process with an explicitly supplied
// environment and reports how it ended.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Spec describes the child process to start.
type Spec struct {
	// Program is the name or path of the executable. A bare name is looked
	// up in the PATH of Env, not of the current process.
	Program string
	Args    []string

	// Env is the complete environment of the child. Nothing is inherited.
	Env []string

	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Result is the outcome of a child that was started successfully.
type Result struct {
	// ExitCode is the child's exit status. It is only meaningful when
	// Exited is true.
	ExitCode int
	// Exited is false when the child ended without an exit status, for
	// example because it was killed by a signal.
	Exited bool
}

// Run starts the program described by spec, waits for it and returns its
// result. An error means the child could not be started at all.
func Run(ctx context.Context, spec Spec) (*Result, error) {
	if spec.Program == "" {
		return nil, errors.New("no program given")
	}

	path, err := LookPath(spec.Program, spec.Env)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, path, spec.Args...)
	cmd.Args[0] = spec.Program
	cmd.Dir = spec.Dir
	cmd.Stdin = spec.Stdin
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr

	// A nil Env would make exec inherit this process's environment.
	cmd.Env = spec.Env
	if cmd.Env == nil {
		cmd.Env = []string{}
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return resultFrom(exitErr.ProcessState), nil
		}
		return nil, fmt.Errorf("failed to run %s: %w", spec.Program, err)
	}

	return resultFrom(cmd.ProcessState), nil
}

func resultFrom(state *os.ProcessState) *Result {
	code := state.ExitCode()
	if code < 0 {
		return &Result{}
	}
	return &Result{ExitCode: code, Exited: true}
}
