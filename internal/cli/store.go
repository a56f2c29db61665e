package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"themesmith/internal/display"
	"themesmith/internal/domain"
	"themesmith/internal/export"
	"themesmith/internal/repository"
	"themesmith/internal/theme"
)

var (
	storeAddConflict     string
	storeRestoreConflict string
	storeSortBy          string
	storeOrder           string
	storeListLimit       int
	storeSearchLimit     int
	storeFormat          string
	storeOutput          string
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the local preset store",
	Long: `Add, inspect, export and remove presets kept in the local store.

The store is a SQLite database by default (store.backend: sqlite) or a
directory of JSON documents (store.backend: files).`,
}

var storeAddCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Add a preset file to the store",
	Long: `Validate a JSON or YAML preset file and store it under its name.

Examples:
  themesmith store add ./nord.json
  themesmith store add ./nord.yaml --on-conflict skip`,
	Args: cobra.ExactArgs(1),
	RunE: runStoreAdd,
}

var storeRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a preset from the store",
	Args:    cobra.ExactArgs(1),
	RunE:    runStoreRemove,
}

var storeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored presets",
	Args:    cobra.NoArgs,
	RunE:    runStoreList,
}

var storeShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a stored preset with its resolved colours",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreShow,
}

var storeSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search stored presets by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreSearch,
}

var storeExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Export a stored preset",
	Long: `Write a stored preset as JSON, YAML or a Markdown summary.

Markdown shows the variables resolved for --mode and --accent.

Examples:
  themesmith store export Nord -f yaml -o nord.yaml
  themesmith store export Nord -f markdown -m dark`,
	Args: cobra.ExactArgs(1),
	RunE: runStoreExport,
}

var storeBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write every stored preset to one backup file",
	Args:  cobra.NoArgs,
	RunE:  runStoreBackup,
}

var storeRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore presets from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreRestore,
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeAddCmd, storeRemoveCmd, storeListCmd, storeShowCmd,
		storeSearchCmd, storeExportCmd, storeBackupCmd, storeRestoreCmd)

	storeAddCmd.Flags().StringVar(&storeAddConflict, "on-conflict", "overwrite", "When the name exists: skip or overwrite")
	storeRestoreCmd.Flags().StringVar(&storeRestoreConflict, "on-conflict", "skip", "When a name exists: skip or overwrite")

	storeListCmd.Flags().StringVar(&storeSortBy, "sort", "name", "Sort by name, created_at or updated_at")
	storeListCmd.Flags().StringVar(&storeOrder, "order", "asc", "Sort order: asc or desc")
	storeListCmd.Flags().IntVarP(&storeListLimit, "limit", "n", 0, "Maximum number of presets (0 for all)")

	storeSearchCmd.Flags().IntVarP(&storeSearchLimit, "limit", "n", 10, "Maximum number of results")

	storeExportCmd.Flags().StringVarP(&storeFormat, "format", "f", "json", "Export format (json, yaml, markdown)")
	storeExportCmd.Flags().StringVarP(&storeOutput, "output", "o", "", "Output file (default: stdout)")

	storeBackupCmd.Flags().StringVarP(&storeOutput, "output", "o", "", "Output file (required)")
	storeBackupCmd.MarkFlagRequired("output")
}

func runStoreAdd(cmd *cobra.Command, args []string) error {
	strategy, err := export.ParseConflictStrategy(storeAddConflict)
	if err != nil {
		return err
	}
	format, err := domain.FormatFromPath(args[0])
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	repo, err := openStore()
	if err != nil {
		return err
	}
	defer repo.Close()

	result, err := export.NewImporter(repo).Import(cmd.Context(), f, format, strategy)
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", args[0], err)
	}

	printImportResult(cmd.OutOrStdout(), result)
	return nil
}

func printImportResult(w io.Writer, result *export.ImportResult) {
	s := styles()
	icon := display.GetImportIcon(result.Action)
	if result.Action == export.ImportSkipped {
		icon = s.Muted.Render(icon)
	} else {
		icon = s.Success.Render(icon)
	}
	fmt.Fprintf(w, "%s %s %s\n", icon, result.Name, s.Muted.Render(string(result.Action)))
}

func runStoreRemove(cmd *cobra.Command, args []string) error {
	repo, err := openStore()
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := repo.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %s\n", styles().Success.Render("✓"), args[0])
	return nil
}

func runStoreList(cmd *cobra.Command, args []string) error {
	repo, err := openStore()
	if err != nil {
		return err
	}
	defer repo.Close()

	records, err := repo.List(cmd.Context(), repository.PresetFilter{
		SortBy:    storeSortBy,
		SortOrder: storeOrder,
		Limit:     storeListLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to list presets: %w", err)
	}

	printPresetTable(cmd.OutOrStdout(), records)
	return nil
}

func runStoreSearch(cmd *cobra.Command, args []string) error {
	repo, err := openStore()
	if err != nil {
		return err
	}
	defer repo.Close()

	records, err := repo.Search(cmd.Context(), args[0], storeSearchLimit)
	if err != nil {
		return fmt.Errorf("failed to search presets: %w", err)
	}

	printPresetTable(cmd.OutOrStdout(), records)
	return nil
}

func printPresetTable(w io.Writer, records []*repository.PresetRecord) {
	s := styles()
	if len(records) == 0 {
		fmt.Fprintln(w, s.Muted.Render("No presets found."))
		return
	}

	now := time.Now()
	headers := []string{"NAME", "VERSION", "AUTHOR", "SUPPORTS", "UPDATED"}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			display.Truncate(r.Preset.Name, 30),
			r.Preset.Version,
			display.Truncate(r.Preset.Author.Name, 20),
			display.FormatSupport(r.Preset.Supported),
			display.FormatUpdated(r.UpdatedAt, now),
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = s.Header.Width(widths[i] + 2).Render(h)
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cells...))

	for _, row := range rows {
		for i, cell := range row {
			cells[i] = s.Cell.Width(widths[i] + 2).Render(cell)
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("%d preset(s)", len(records))))
}

func runStoreShow(cmd *cobra.Command, args []string) error {
	mode, accent, err := target()
	if err != nil {
		return err
	}

	repo, err := openStore()
	if err != nil {
		return err
	}
	defer repo.Close()

	p, err := presetByName(cmd.Context(), repo, args[0])
	if err != nil {
		return err
	}

	swatches, err := theme.Swatches(p, mode, accent)
	if err != nil {
		return err
	}

	s := styles()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, s.Title.Render(p.Label()))
	if p.Description != "" {
		fmt.Fprintln(out, s.Subtitle.Render(p.Description))
	}
	fmt.Fprintf(out, "%s %s\n", s.DetailLabel.Render("Author: "), p.Author.Name)
	fmt.Fprintf(out, "%s %s\n", s.DetailLabel.Render("License:"), p.License)
	fmt.Fprintf(out, "%s %s\n", s.DetailLabel.Render("Supports:"), display.FormatSupport(p.Supported))
	fmt.Fprintln(out)

	fmt.Fprintln(out, s.Subtitle.Render(fmt.Sprintf("%s %s / %s", display.GetModeIcon(mode), mode, accent)))
	for _, sw := range swatches {
		fmt.Fprintf(out, "%s %-34s %s\n", theme.SwatchBlock(sw.Hex), sw.Slug, s.Muted.Render(sw.Value))
	}

	var custom []string
	for _, part := range []struct{ name, css string }{
		{"gtk4", p.Custom.Gtk4},
		{"gtk3", p.Custom.Gtk3},
		{"shell", p.Custom.Shell},
	} {
		if strings.TrimSpace(part.css) != "" {
			custom = append(custom, part.name)
		}
	}
	if len(custom) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s %s\n", s.DetailLabel.Render("Custom CSS:"), strings.Join(custom, ", "))
	}
	return nil
}

// outputWriter opens path for writing, or returns stdout when path is empty.
func outputWriter(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, f.Close, nil
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(storeFormat)
	if err != nil {
		return err
	}
	mode, accent, err := target()
	if err != nil {
		return err
	}

	repo, err := openStore()
	if err != nil {
		return err
	}
	defer repo.Close()

	p, err := presetByName(cmd.Context(), repo, args[0])
	if err != nil {
		return err
	}

	w, closeOut, err := outputWriter(cmd, storeOutput)
	if err != nil {
		return err
	}
	if err := export.NewExporter(mode, accent).Write(w, p, format); err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("failed to write %s: %w", storeOutput, err)
	}

	if storeOutput != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %s to %s\n", styles().Success.Render("✓"), p.Name, storeOutput)
	}
	return nil
}

func runStoreBackup(cmd *cobra.Command, args []string) error {
	repo, err := openStore()
	if err != nil {
		return err
	}
	defer repo.Close()

	w, closeOut, err := outputWriter(cmd, storeOutput)
	if err != nil {
		return err
	}
	n, err := export.Backup(cmd.Context(), w, repo)
	if err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("failed to write %s: %w", storeOutput, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Backed up %d preset(s) to %s\n", styles().Success.Render("✓"), n, storeOutput)
	return nil
}

func runStoreRestore(cmd *cobra.Command, args []string) error {
	strategy, err := export.ParseConflictStrategy(storeRestoreConflict)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	repo, err := openStore()
	if err != nil {
		return err
	}
	defer repo.Close()

	results, err := export.NewImporter(repo).RestoreBackup(cmd.Context(), f, strategy)
	for _, r := range results {
		printImportResult(cmd.OutOrStdout(), r)
	}
	return err
}
