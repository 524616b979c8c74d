package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"glacierprune/internal/glacierclient"
	"glacierprune/internal/pruner"
	"glacierprune/pkg/utils"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all archives from a Glacier vault",
	Long: `Delete every archive listed in the vault's inventory.

The command will:
- Obtain an inventory (fresh retrieval job, an existing job id, or a saved file)
- Optionally save the inventory to a file before deleting anything
- Delete each listed archive, or only list them with --dry-run

Inventory retrieval is an asynchronous Glacier job that can take hours. Use
--save-inventory together with --dry-run to retrieve once, then re-run later
with --load-inventory to delete without waiting again.

WARNING: This operation is irreversible. Deleted archives cannot be recovered.`,
	Example: `  # Preview what would be deleted
  glacierprune prune --vault-name my-vault --dry-run

  # Retrieve the inventory once and keep it for later
  glacierprune prune --vault-name my-vault --dry-run --save-inventory inventory.json

  # Delete using a previously saved inventory
  glacierprune prune --vault-name my-vault --load-inventory inventory.json --confirm

  # Resume waiting on an already started inventory job
  glacierprune prune --vault-name my-vault --use-job-id JOB_ID --poll-seconds 120`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrune(cmd)
	},
}

func runPrune(cmd *cobra.Command) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	confirm, _ := cmd.Flags().GetBool("confirm")
	savePath, _ := cmd.Flags().GetString("save-inventory")
	loadPath, _ := cmd.Flags().GetString("load-inventory")
	jobID, _ := cmd.Flags().GetString("use-job-id")
	pollSeconds, _ := cmd.Flags().GetInt("poll-seconds")

	if !cmd.Flags().Changed("dry-run") {
		dryRun = cfg.DryRun
	}
	if !cmd.Flags().Changed("poll-seconds") && cfg.PollSeconds > 0 {
		pollSeconds = cfg.PollSeconds
	}

	opts := pruner.Options{
		VaultName:    getVaultName(cmd),
		DryRun:       dryRun,
		SavePath:     savePath,
		LoadPath:     loadPath,
		JobID:        jobID,
		PollInterval: time.Duration(pollSeconds) * time.Second,
	}

	// Validate before any remote or file access.
	if err := opts.Validate(); err != nil {
		utils.PrintError(err, "prune")
		return err
	}

	if !confirm && !dryRun {
		fmt.Printf("WARNING: This will permanently delete ALL archives in vault '%s'\n", opts.VaultName)
		fmt.Print("Are you sure? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		if response != "yes" && response != "y" && response != "YES" {
			fmt.Println("Operation cancelled.")
			return nil
		}
	}

	client, err := glacierclient.New(clientConfig(cmd))
	if err != nil {
		utils.PrintError(err, "prune")
		return err
	}

	p, err := pruner.New(client, opts)
	if err != nil {
		utils.PrintError(err, "prune")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if isVerbose(cmd) {
		cmd.Printf("Pruning vault: %s\n", opts.VaultName)
		if dryRun {
			cmd.Println("DRY RUN MODE: No archives will actually be deleted")
		}
	}

	result, err := p.Run(ctx)
	if err != nil {
		utils.PrintError(err, "prune")
		return err
	}

	if err := utils.PrintJSON(result); err != nil {
		utils.PrintError(err, "prune")
		return err
	}

	if isVerbose(cmd) {
		cmd.Println("Prune operation completed successfully")
	}
	return nil
}

func init() {
	pruneCmd.Flags().Bool("dry-run", false, "List archives without deleting them")
	pruneCmd.Flags().Bool("confirm", false, "Skip confirmation prompt")
	pruneCmd.Flags().String("save-inventory", "", "Save inventory to this file path after retrieval")
	pruneCmd.Flags().String("load-inventory", "", "Load inventory from this file instead of retrieving from AWS")
	pruneCmd.Flags().String("use-job-id", "", "Use an existing inventory-retrieval job ID instead of starting a new one")
	pruneCmd.Flags().Int("poll-seconds", 300, "Seconds to wait between job status checks")
}
