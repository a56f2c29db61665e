// Package apply writes generated stylesheets and shell themes to disk.
package apply

import (
	"context"
	"errors"

	"github.com/spf13/afero"
)

const SupportedShellVersion = 46

var (
	ErrUnsupportedVersion = errors.New("unsupported shell version")
	ErrCompile            = errors.New("failed to compile shell stylesheet")
)

// VersionSource reports the major version of the running shell.
type VersionSource interface {
	ShellVersion(ctx context.Context) (int, error)
}

// Compiler turns the SCSS entry file at entry inside fsys into CSS.
type Compiler interface {
	Compile(ctx context.Context, fsys afero.Fs, entry string) (string, error)
}

// ThemeActivator switches the session to a named shell theme.
type ThemeActivator interface {
	ActivateShellTheme(ctx context.Context, name string) error
}
