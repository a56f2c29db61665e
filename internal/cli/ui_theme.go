package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"themesmith/internal/config"
	"themesmith/internal/theme"
)

var uiThemeCmd = &cobra.Command{
	Use:   "ui-theme",
	Short: "Manage the terminal theme of themesmith itself",
	Long: `Manage the colours themesmith uses for its own output.

Without a configured theme the output follows defaults.mode.

Examples:
  themesmith ui-theme list
  themesmith ui-theme set adwaita-dark
  themesmith ui-theme show`,
}

var uiThemeSetCmd = &cobra.Command{
	Use:   "set <theme-name>",
	Short: "Set the terminal theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runUIThemeSet,
}

var uiThemeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in terminal themes",
	Args:  cobra.NoArgs,
	RunE:  runUIThemeList,
}

var uiThemeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the colours of the current terminal theme",
	Args:  cobra.NoArgs,
	RunE:  runUIThemeShow,
}

func init() {
	rootCmd.AddCommand(uiThemeCmd)
	uiThemeCmd.AddCommand(uiThemeSetCmd, uiThemeListCmd, uiThemeShowCmd)
}

func runUIThemeSet(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !theme.ThemeExists(name) {
		return fmt.Errorf("%w: %s (run 'themesmith ui-theme list' to see available themes)", theme.ErrThemeNotFound, name)
	}

	updated := *cfg
	updated.UI.Theme = name
	if err := config.SaveConfig(&updated); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}
	cfg = &updated

	fmt.Fprintf(cmd.OutOrStdout(), "%s Theme set to %s\n", styles().Success.Render("✓"), name)
	return nil
}

func runUIThemeList(cmd *cobra.Command, args []string) error {
	current := uiTheme().Name
	s := styles()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, s.Header.Render(" Available Themes "))
	for _, name := range theme.ListThemes() {
		prefix := "  "
		if name == current {
			prefix = "▶ "
			name = s.Success.Render(name + " (current)")
		}
		fmt.Fprintf(out, "%s%s\n", prefix, name)
	}
	return nil
}

func runUIThemeShow(cmd *cobra.Command, args []string) error {
	t := uiTheme()
	s := theme.NewStyles(t)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, s.Header.Render(fmt.Sprintf(" Current Theme: %s ", t.Name)))
	colors := []struct{ name, value string }{
		{"Primary", t.Primary},
		{"Success", t.Success},
		{"Error", t.Error},
		{"Warning", t.Warning},
		{"Text", t.TextPrimary},
		{"Background", t.BgPrimary},
		{"Border", t.BorderColor},
	}
	for _, c := range colors {
		sample := lipgloss.NewStyle().Background(lipgloss.Color(c.value)).Render("    ")
		fmt.Fprintf(out, "  %-12s %s %s\n", c.name+":", sample, c.value)
	}
	return nil
}
