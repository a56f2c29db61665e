package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"themesmith/internal/apply"
	"themesmith/internal/domain"
	"themesmith/internal/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <preset-file>",
	Short: "Re-apply a preset to GTK whenever its file changes",
	Long: `Apply a preset file to GTK, then keep watching it and re-apply on
every save until interrupted.

Examples:
  themesmith watch ./my-preset.yaml -m dark -a purple`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period before re-applying")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	mode, accent, err := target()
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	gtk := apply.NewGTKApplier(fs)
	out := cmd.OutOrStdout()
	s := styles()

	handle := func(ctx context.Context, p *domain.Preset) error {
		if _, err := gtk.Apply(ctx, p, gtkOptions(mode, accent)); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s Applied %s\n", s.Muted.Render(time.Now().Format(time.Kitchen)), s.Success.Render("✓"), p.Label())
		return nil
	}

	p, err := domain.ReadPresetFile(args[0])
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid preset %s: %w", args[0], err)
	}
	if err := handle(ctx, p); err != nil {
		return err
	}

	w := watch.New(fs, args[0], handle)
	w.SetDebounce(watchDebounce)
	fmt.Fprintln(out, s.Muted.Render(fmt.Sprintf("Watching %s (%s/%s), press Ctrl+C to stop", args[0], mode, accent)))
	return w.Run(ctx)
}
