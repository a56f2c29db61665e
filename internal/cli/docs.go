package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var (
	docsFormat string
	docsDir    string
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate man pages or Markdown reference docs",
	Long: `Write one document per command into a directory.

Examples:
  themesmith docs --format man --dir ./man
  themesmith docs --format markdown --dir ./docs`,
	Args: cobra.NoArgs,
	RunE: runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringVarP(&docsFormat, "format", "f", "markdown", "Output format: man or markdown")
	docsCmd.Flags().StringVarP(&docsDir, "dir", "d", "docs", "Output directory")
}

func runDocs(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(docsDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", docsDir, err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	var err error
	switch docsFormat {
	case "man":
		err = doc.GenManTree(root, &doc.GenManHeader{Title: "THEMESMITH", Section: "1"}, docsDir)
	case "markdown", "md":
		err = doc.GenMarkdownTree(root, docsDir)
	default:
		return fmt.Errorf("invalid docs format %q (must be man or markdown)", docsFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to generate docs: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s docs to %s\n", styles().Success.Render("✓"), docsFormat, docsDir)
	return nil
}
