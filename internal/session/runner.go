// Package session talks to the desktop session through external commands.
package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"themesmith/internal/logging"
)

type CommandResult struct {
	Status int
	Stdout string
	Stderr string
}

func (r CommandResult) Success() bool {
	return r.Status == 0
}

// CommandRunner executes a program and captures its output. A non-zero exit
// status is reported through CommandResult, not as an error.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (CommandResult, error)
}

// ExecRunner runs commands on the host. Inside a Flatpak sandbox commands
// are forwarded with flatpak-spawn --host.
type ExecRunner struct {
	lookupEnv func(string) (string, bool)
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{lookupEnv: os.LookupEnv}
}

func (r *ExecRunner) command(name string, args []string) (string, []string) {
	if _, ok := r.lookupEnv("FLATPAK_ID"); ok {
		return "flatpak-spawn", append([]string{"--host", name}, args...)
	}
	return name, args
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (CommandResult, error) {
	name, args = r.command(name, args)
	logging.FromContext(ctx).Debug().Str("command", name).Strs("args", args).Msg("running command")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return result, nil
	case errors.As(err, &exitErr):
		result.Status = exitErr.ExitCode()
		return result, nil
	default:
		return result, fmt.Errorf("failed to run %s: %w", name, err)
	}
}
