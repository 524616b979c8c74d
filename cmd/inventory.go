package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"glacierprune/internal/glacierclient"
	"glacierprune/internal/models"
	"glacierprune/internal/pruner"
	"glacierprune/pkg/utils"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Retrieve a vault inventory without deleting anything",
	Long: `Retrieve the vault inventory and print a summary as JSON.

Starts a new inventory-retrieval job (or polls an existing one with
--use-job-id) and waits for it to complete. With --no-wait the job is only
started and its id printed, so it can be picked up later with --use-job-id.`,
	Example: `  # Retrieve and save the inventory
  glacierprune inventory --vault-name my-vault --save-inventory inventory.json

  # Start a job and come back for it later
  glacierprune inventory --vault-name my-vault --no-wait

  # Finish waiting on that job
  glacierprune inventory --vault-name my-vault --use-job-id JOB_ID --save-inventory inventory.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInventory(cmd)
	},
}

func runInventory(cmd *cobra.Command) error {
	savePath, _ := cmd.Flags().GetString("save-inventory")
	jobID, _ := cmd.Flags().GetString("use-job-id")
	pollSeconds, _ := cmd.Flags().GetInt("poll-seconds")
	noWait, _ := cmd.Flags().GetBool("no-wait")

	if !cmd.Flags().Changed("poll-seconds") && cfg.PollSeconds > 0 {
		pollSeconds = cfg.PollSeconds
	}

	if noWait && jobID != "" {
		err := &pruner.ConfigError{Reason: "--no-wait and --use-job-id are mutually exclusive"}
		utils.PrintError(err, "inventory")
		return err
	}

	opts := pruner.Options{
		VaultName:    getVaultName(cmd),
		SavePath:     savePath,
		JobID:        jobID,
		PollInterval: time.Duration(pollSeconds) * time.Second,
	}
	if err := opts.Validate(); err != nil {
		utils.PrintError(err, "inventory")
		return err
	}

	client, err := glacierclient.New(clientConfig(cmd))
	if err != nil {
		utils.PrintError(err, "inventory")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if noWait {
		startedJobID, err := client.InitiateInventoryJob(ctx, opts.VaultName)
		if err != nil {
			utils.PrintError(err, "inventory")
			return err
		}
		return utils.PrintJSON(models.JobHandle{VaultName: opts.VaultName, JobID: startedJobID})
	}

	p, err := pruner.New(client, opts)
	if err != nil {
		utils.PrintError(err, "inventory")
		return err
	}

	if isVerbose(cmd) {
		cmd.Printf("Retrieving inventory for vault: %s\n", opts.VaultName)
	}

	inventory, err := p.Retrieve(ctx)
	if err != nil {
		utils.PrintError(err, "inventory")
		return err
	}

	var totalSize int64
	for _, archive := range inventory.ArchiveList {
		totalSize += archive.Size
	}

	summary := models.InventorySummary{
		VaultName:      opts.VaultName,
		VaultARN:       inventory.VaultARN,
		InventoryDate:  inventory.InventoryDate,
		ArchiveCount:   len(inventory.ArchiveList),
		TotalSizeBytes: totalSize,
		TotalSizeHuman: utils.FormatBytes(totalSize),
		JobID:          p.JobID(),
		SavedTo:        savePath,
	}

	return utils.PrintJSON(summary)
}

func init() {
	inventoryCmd.Flags().String("save-inventory", "", "Save inventory to this file path after retrieval")
	inventoryCmd.Flags().String("use-job-id", "", "Poll an existing inventory-retrieval job instead of starting a new one")
	inventoryCmd.Flags().Int("poll-seconds", 300, "Seconds to wait between job status checks")
	inventoryCmd.Flags().Bool("no-wait", false, "Start the retrieval job and print its id without waiting")
}
