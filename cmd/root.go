package cmd

import (
	"glacierprune/config"

	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "glacierprune",
	Short: "Glacier vault pruning tool",
	Long: `glacierprune is a command-line tool for pruning AWS Glacier vaults.
It retrieves a vault inventory, optionally persists or reuses it, and deletes
every archive the inventory lists.
Configuration is loaded from an optional YAML file, a .env file, or environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute(config *config.Config) error {
	cfg = config
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(vaultInfoCmd)

	rootCmd.PersistentFlags().StringP("vault-name", "n", "", "Override vault name from config")
	rootCmd.PersistentFlags().StringP("region", "r", "", "Override AWS region from config")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

func getVaultName(cmd *cobra.Command) string {
	vault, _ := cmd.Flags().GetString("vault-name")
	if vault != "" {
		return vault
	}
	return cfg.VaultName
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}

// clientConfig applies the per-invocation region override on top of the
// loaded configuration.
func clientConfig(cmd *cobra.Command) *config.Config {
	region, _ := cmd.Flags().GetString("region")
	if region == "" {
		return cfg
	}
	overridden := *cfg
	overridden.Region = region
	return &overridden
}
