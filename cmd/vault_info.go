package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"glacierprune/internal/glacierclient"
	"glacierprune/pkg/utils"
)

var vaultInfoCmd = &cobra.Command{
	Use:   "vault-info",
	Short: "Get vault metadata",
	Long: `Get metadata about the Glacier vault: ARN, creation date, archive count,
total size and the date of the last completed inventory.
The vault name is taken from the configuration unless overridden with --vault-name.`,
	Example: `  # Info for the configured vault
  glacierprune vault-info

  # Info for a specific vault
  glacierprune vault-info --vault-name my-other-vault`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVaultInfo(cmd)
	},
}

func runVaultInfo(cmd *cobra.Command) error {
	vaultName := getVaultName(cmd)

	client, err := glacierclient.New(clientConfig(cmd))
	if err != nil {
		utils.PrintError(err, "vault-info")
		return err
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if isVerbose(cmd) {
		cmd.Printf("Getting vault information for: %s\n", vaultName)
	}

	info, err := client.DescribeVault(ctx, vaultName)
	if err != nil {
		utils.PrintError(err, "vault-info")
		return err
	}

	return utils.PrintJSON(info)
}

func init() {
	vaultInfoCmd.Flags().Int("timeout", 300, "Timeout in seconds for the operation")
}
