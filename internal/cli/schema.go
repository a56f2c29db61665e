package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"themesmith/internal/domain"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the preset format",
	Long: `Print the JSON schema describing preset documents, for editor
completion and validation.

Examples:
  themesmith schema > preset.schema.json`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	data, err := json.MarshalIndent(domain.PresetSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
