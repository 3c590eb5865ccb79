package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long:  `Create the configuration directory and a config file with the default settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configManager.Save(); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		cfg := configManager.Get()

		fmt.Printf("wrote %s\n", configManager.GetConfigPath())
		fmt.Printf("  precision: %d\n", cfg.Precision)
		fmt.Printf("  color:     %s\n", cfg.Color)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
