package session

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const UserThemeExtension = "user-theme@gnome-shell-extensions.gcampax.github.com"

const userThemeSchema = "org.gnome.shell.extensions.user-theme"

var ErrUserThemeMissing = errors.New("user-theme extension is not installed")

var shellVersionPattern = regexp.MustCompile(`(\d+)(?:\.\d+)*`)

// GnomeSession queries and configures a running GNOME Shell.
type GnomeSession struct {
	runner CommandRunner
}

func NewGnomeSession(runner CommandRunner) *GnomeSession {
	return &GnomeSession{runner: runner}
}

// ShellVersion returns the major version reported by gnome-shell --version.
func (s *GnomeSession) ShellVersion(ctx context.Context) (int, error) {
	out, err := s.output(ctx, "gnome-shell", "--version")
	if err != nil {
		return 0, err
	}
	return parseShellVersion(out)
}

func parseShellVersion(out string) (int, error) {
	match := shellVersionPattern.FindStringSubmatch(out)
	if match == nil {
		return 0, fmt.Errorf("failed to parse shell version from %q", strings.TrimSpace(out))
	}
	return strconv.Atoi(match[1])
}

func (s *GnomeSession) ExtensionInstalled(ctx context.Context, uuid string) (bool, error) {
	return s.listed(ctx, uuid, "list")
}

func (s *GnomeSession) ExtensionEnabled(ctx context.Context, uuid string) (bool, error) {
	return s.listed(ctx, uuid, "list", "--enabled")
}

func (s *GnomeSession) listed(ctx context.Context, uuid string, args ...string) (bool, error) {
	out, err := s.output(ctx, "gnome-extensions", args...)
	if err != nil {
		return false, err
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == uuid {
			return true, nil
		}
	}
	return false, nil
}

// ActivateShellTheme selects name through the user-theme extension,
// enabling the extension first when it is installed but disabled.
func (s *GnomeSession) ActivateShellTheme(ctx context.Context, name string) error {
	enabled, err := s.ExtensionEnabled(ctx, UserThemeExtension)
	if err != nil {
		return err
	}

	if !enabled {
		installed, err := s.ExtensionInstalled(ctx, UserThemeExtension)
		if err != nil {
			return err
		}
		if !installed {
			return ErrUserThemeMissing
		}
		if _, err := s.output(ctx, "gnome-extensions", "enable", UserThemeExtension); err != nil {
			return err
		}
	}

	_, err = s.output(ctx, "gsettings", "set", userThemeSchema, "name", name)
	return err
}

func (s *GnomeSession) ResetShellTheme(ctx context.Context) error {
	_, err := s.output(ctx, "gsettings", "reset", userThemeSchema, "name")
	return err
}

func (s *GnomeSession) output(ctx context.Context, name string, args ...string) (string, error) {
	result, err := s.runner.Run(ctx, name, args...)
	if err != nil {
		return "", err
	}
	if !result.Success() {
		return "", fmt.Errorf("%s %s exited with status %d: %s", name, strings.Join(args, " "), result.Status, strings.TrimSpace(result.Stderr))
	}
	return result.Stdout, nil
}
