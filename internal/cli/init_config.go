package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"themesmith/internal/config"
)

var initConfigForce bool

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runInitConfig,
}

func init() {
	rootCmd.AddCommand(initConfigCmd)
	initConfigCmd.Flags().BoolVar(&initConfigForce, "force", false, "Overwrite an existing config file")
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	if config.ConfigExists() && !initConfigForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.GetConfigFile())
	}

	if err := config.SaveConfig(config.GetDefaultConfig()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", styles().Success.Render("✓"), config.GetConfigFile())
	return nil
}
