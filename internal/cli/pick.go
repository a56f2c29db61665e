package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"themesmith/internal/apply"
	"themesmith/internal/domain"
	"themesmith/internal/repository"
	"themesmith/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a stored preset interactively and apply it to GTK",
	Long: `Launch the interactive picker over the presets in the store.

Move with ↑/↓, toggle the mode with m or tab, cycle the accent with a or
←/→, filter with /, and press enter to write the GTK sheets.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	mode, accent, err := target()
	if err != nil {
		return err
	}

	repo, err := openStore()
	if err != nil {
		return err
	}
	records, err := repo.List(ctx, repository.PresetFilter{SortBy: "name"})
	repo.Close()
	if err != nil {
		return fmt.Errorf("failed to list presets: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("the store is empty, add a preset with 'themesmith store add <path>'")
	}

	presets := make([]*domain.Preset, len(records))
	for i, r := range records {
		presets[i] = r.Preset
	}

	sel, err := tui.Run(presets, mode, accent)
	if err != nil {
		return err
	}
	if sel == nil {
		return nil
	}

	paths, err := apply.NewGTKApplier(afero.NewOsFs()).Apply(ctx, sel.Preset, gtkOptions(sel.Mode, sel.Accent))
	if err != nil {
		return err
	}

	s := styles()
	fmt.Fprintf(cmd.OutOrStdout(), "%s Applied %s (%s/%s)\n", s.Success.Render("✓"), sel.Preset.Label(), sel.Mode, sel.Accent)
	for _, path := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", s.Muted.Render(path))
	}
	return nil
}
