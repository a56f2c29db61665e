package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"themesmith/internal/config"
	"themesmith/internal/domain"
	"themesmith/internal/logging"
)

var (
	flagPreset      string
	flagMode        string
	flagAccent      string
	flagStore       string
	flagShellSource string
	flagConfig      string
	flagLogLevel    string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "themesmith",
	Short: "Generate GTK and GNOME Shell themes from presets",
	Long: `themesmith turns a declarative preset into GTK colour sheets and a
compiled GNOME Shell theme, for a light or dark mode and one of nine
accent colours.

Presets are JSON or YAML documents. Pass a file path or the name of a
preset in the local store with --preset.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&flagPreset, "preset", "p", "", "Preset name in the store, or path to a preset file")
	flags.StringVarP(&flagMode, "mode", "m", "", "Display mode: light or dark (default from config)")
	flags.StringVarP(&flagAccent, "accent", "a", "", "Accent colour: "+strings.Join(domain.AccentNames(), ", ")+" (default from config)")
	flags.StringVarP(&flagStore, "store", "s", "", "Preset store location (overrides store.path)")
	flags.StringVar(&flagShellSource, "shell-source", "", "Directory holding the shell template tree (default: embedded)")
	flags.StringVar(&flagConfig, "config", "", "Config file (default ~/.config/themesmith/config.yaml)")
	flags.StringVar(&flagLogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle().Render("Error:"), err)
		os.Exit(1)
	}
}

// setup loads the configuration and attaches a logger to the command
// context before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	if flagConfig != "" {
		path, err := config.ExpandPath(flagConfig)
		if err != nil {
			return err
		}
		config.SetConfigFile(path)
	}

	loaded, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded

	logCfg := cfg.Logging()
	if flagLogLevel != "" {
		level, err := logging.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		logCfg.Level = level
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.New(logCfg, cmd.ErrOrStderr())
	cmd.SetContext(logging.WithContext(ctx, logger))

	return nil
}
