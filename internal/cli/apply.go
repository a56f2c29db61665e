package cli

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"themesmith/internal/apply"
	"themesmith/internal/config"
	"themesmith/internal/domain"
	"themesmith/internal/render"
	"themesmith/internal/session"
)

var (
	shellThemeName string
	shellActivate  bool
	cssGTK         int
)

var gtkCmd = &cobra.Command{
	Use:   "gtk",
	Short: "Apply a preset to GTK 3 and GTK 4",
	Long: `Write the GTK 3 and GTK 4 colour sheets of a preset.

The sheets go to ~/.config/gtk-3.0/gtk.css and ~/.config/gtk-4.0/gtk.css
unless gtk.gtk3_path / gtk.gtk4_path are configured. Existing files are
overwritten.

Examples:
  themesmith gtk --preset Nord --mode dark --accent teal
  themesmith gtk -p ./my-preset.yaml`,
	Args: cobra.NoArgs,
	RunE: runGTK,
}

var shellCmd = &cobra.Command{
	Use:   "shell [work-dir] [themes-dir]",
	Short: "Build a GNOME Shell theme from a preset",
	Long: `Render the shell template tree for the running GNOME Shell version,
compile it and install the result as a theme directory.

work-dir holds the staged sources (default: shell.work_dir or the OS temp
directory). themes-dir receives the theme (default: shell.themes_dir,
~/.themes). The theme also carries GTK 3 and GTK 4 sheets.

Examples:
  themesmith shell -p Nord -m dark -a teal
  themesmith shell /tmp/build ~/.local/share/themes --name MyTheme --activate`,
	Args: cobra.MaximumNArgs(2),
	RunE: runShell,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the shell theme to the default",
	Long:  `Clear the user-theme extension setting so the session uses its default shell theme.`,
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the colour sheet of a preset",
	Long: `Print the @define-color sheet for one GTK version without writing files.

Examples:
  themesmith css -p Nord -m dark
  themesmith css -p ./preset.json --gtk 3 > gtk.css`,
	Args: cobra.NoArgs,
	RunE: runCSS,
}

var renderCmd = &cobra.Command{
	Use:   "render <template>",
	Short: "Render a template file against a preset",
	Long: `Render a mustache template with the resolved values of a preset and
print the result. Every tag must name a shell or variable slot, a palette
entry, or one of name, version, custom_css, mode and accent.

Examples:
  themesmith render -p Nord _colors.template`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(gtkCmd, shellCmd, resetCmd, cssCmd, renderCmd)

	shellCmd.Flags().StringVar(&shellThemeName, "name", "", "Theme directory name (default <preset>-<Mode>-<Accent>)")
	shellCmd.Flags().BoolVar(&shellActivate, "activate", false, "Switch the session to the new theme")

	cssCmd.Flags().IntVar(&cssGTK, "gtk", 4, "GTK version (3 or 4)")
}

func runGTK(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p, mode, accent, err := presetTarget(ctx)
	if err != nil {
		return err
	}

	paths, err := apply.NewGTKApplier(afero.NewOsFs()).Apply(ctx, p, gtkOptions(mode, accent))
	if err != nil {
		return err
	}

	s := styles()
	fmt.Fprintf(cmd.OutOrStdout(), "%s Applied %s (%s/%s)\n", s.Success.Render("✓"), p.Label(), mode, accent)
	for _, path := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", s.Muted.Render(path))
	}
	return nil
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p, mode, accent, err := presetTarget(ctx)
	if err != nil {
		return err
	}

	workDir := cfg.Shell.WorkDir
	if len(args) > 0 {
		workDir = args[0]
	}
	if workDir == "" {
		workDir = os.TempDir()
	}
	themesDir := cfg.Shell.ThemesDir
	if len(args) > 1 {
		themesDir = args[1]
	}
	if workDir, err = config.ExpandPath(workDir); err != nil {
		return err
	}
	if themesDir, err = config.ExpandPath(themesDir); err != nil {
		return err
	}

	source, err := shellSource()
	if err != nil {
		return err
	}

	runner := session.NewExecRunner()
	gnome := session.NewGnomeSession(runner)
	compiler, closeCompiler := newCompiler(runner)
	defer closeCompiler()

	result, err := apply.NewShellApplier(afero.NewOsFs(), source, gnome, compiler, gnome).Apply(ctx, p, apply.ShellOptions{
		Mode:      mode,
		Accent:    accent,
		WorkDir:   workDir,
		ThemesDir: themesDir,
		ThemeName: shellThemeName,
		Activate:  shellActivate,
	})
	if err != nil {
		return err
	}

	s := styles()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Built shell theme %s\n", s.Success.Render("✓"), s.DetailLabel.Render(result.ThemeName))
	fmt.Fprintf(out, "  %s\n", s.Muted.Render(result.CSSPath))
	for _, path := range result.GTKPaths {
		fmt.Fprintf(out, "  %s\n", s.Muted.Render(path))
	}
	if result.Activated {
		fmt.Fprintln(out, s.Info.Render("Shell theme activated."))
	} else {
		fmt.Fprintf(out, "Select %q in the user-theme extension settings or rerun with --activate.\n", result.ThemeName)
	}
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	gnome := session.NewGnomeSession(session.NewExecRunner())
	if err := gnome.ResetShellTheme(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Shell theme reset\n", styles().Success.Render("✓"))
	return nil
}

func runCSS(cmd *cobra.Command, args []string) error {
	var version domain.GTKVersion
	switch cssGTK {
	case 3:
		version = domain.GTK3
	case 4:
		version = domain.GTK4
	default:
		return fmt.Errorf("invalid GTK version %d (must be 3 or 4)", cssGTK)
	}

	p, mode, accent, err := presetTarget(cmd.Context())
	if err != nil {
		return err
	}

	css, err := render.CSS(p, mode, accent, version)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), css)
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", args[0], err)
	}

	p, mode, accent, err := presetTarget(cmd.Context())
	if err != nil {
		return err
	}

	out, err := render.Template(p, string(text), mode, accent)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
