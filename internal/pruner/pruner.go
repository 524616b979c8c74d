package pruner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"glacierprune/internal/models"
	"glacierprune/pkg/utils"
)

const DefaultPollInterval = 300 * time.Second

// VaultService is the subset of the Glacier API the pruner needs.
// glacierclient.Client implements it.
type VaultService interface {
	InitiateInventoryJob(ctx context.Context, vaultName string) (string, error)
	DescribeJob(ctx context.Context, vaultName, jobID string) (*models.JobStatus, error)
	FetchInventory(ctx context.Context, vaultName, jobID string) (*models.Inventory, error)
	DeleteArchive(ctx context.Context, vaultName, archiveID string) error
}

// Options selects the inventory source and the run mode. LoadPath and JobID
// are mutually exclusive; with neither set a fresh inventory-retrieval job
// is started.
type Options struct {
	VaultName    string
	DryRun       bool
	SavePath     string
	LoadPath     string
	JobID        string
	PollInterval time.Duration
}

func (o Options) Validate() error {
	if o.VaultName == "" {
		return &ConfigError{Reason: "vault name is required"}
	}
	if o.LoadPath != "" && o.JobID != "" {
		return &ConfigError{Reason: "--load-inventory and --use-job-id are mutually exclusive"}
	}
	if o.PollInterval < 0 {
		return &ConfigError{Reason: "poll interval must not be negative"}
	}
	return nil
}

// Pruner deletes every archive listed in a vault inventory, one delete
// request per archive, in inventory order.
type Pruner struct {
	svc   VaultService
	opts  Options
	log   *slog.Logger
	sleep func(ctx context.Context, d time.Duration) error

	jobID string
}

func New(svc VaultService, opts Options) (*Pruner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.PollInterval == 0 {
		opts.PollInterval = DefaultPollInterval
	}
	return &Pruner{
		svc:   svc,
		opts:  opts,
		log:   slog.Default(),
		sleep: sleepContext,
	}, nil
}

// Retrieve obtains the inventory from the configured source and, if a save
// path is set, writes it to disk before returning. The save happens before
// any deletion so the file supports the retrieve-once, delete-later workflow.
func (p *Pruner) Retrieve(ctx context.Context) (*models.Inventory, error) {
	inventory, err := p.sourceInventory(ctx)
	if err != nil {
		return nil, err
	}
	if p.opts.SavePath != "" {
		if err := SaveInventory(inventory, p.opts.SavePath); err != nil {
			return nil, err
		}
		p.log.Info("inventory saved", "path", p.opts.SavePath)
	}
	return inventory, nil
}

// Run retrieves the inventory and deletes (or, in dry-run mode, lists) every
// archive in it. A per-archive delete failure is counted and the loop
// continues; credential-level failures abort the run.
func (p *Pruner) Run(ctx context.Context) (*models.PruneResult, error) {
	start := time.Now()

	inventory, err := p.Retrieve(ctx)
	if err != nil {
		return nil, err
	}

	archives := inventory.ArchiveList
	total := len(archives)
	p.log.Info("found archives to delete", "count", total, "vault", p.opts.VaultName)
	if p.opts.DryRun {
		p.log.Info("dry-run enabled; no archives will be deleted")
	}

	result := &models.PruneResult{
		VaultName:     p.opts.VaultName,
		DryRun:        p.opts.DryRun,
		ArchiveCount:  total,
		InventoryDate: inventory.InventoryDate,
		SavedTo:       p.opts.SavePath,
		OperationTime: utils.FormatTime(start),
	}

	for i, archive := range archives {
		result.TotalSizeBytes += archive.Size
		progress := fmt.Sprintf("%d/%d", i+1, total)

		if p.opts.DryRun {
			p.log.Info("would delete archive", "archive_id", archive.ArchiveId, "progress", progress)
			continue
		}

		if err := p.svc.DeleteArchive(ctx, p.opts.VaultName, archive.ArchiveId); err != nil {
			if ctx.Err() != nil || isAuthError(err) {
				return nil, &DeleteError{ArchiveID: archive.ArchiveId, Err: err}
			}
			result.FailedCount++
			result.FailedArchives = append(result.FailedArchives, archive.ArchiveId)
			p.log.Error("failed to delete archive", "archive_id", archive.ArchiveId, "error", err)
			continue
		}

		result.DeletedCount++
		p.log.Info("deleted archive", "archive_id", archive.ArchiveId, "progress", progress)
	}

	result.TotalSizeHuman = utils.FormatBytes(result.TotalSizeBytes)
	result.Duration = time.Since(start).String()
	return result, nil
}

// JobID returns the id of the inventory-retrieval job the last Retrieve
// used, or empty when the inventory came from a file.
func (p *Pruner) JobID() string {
	return p.jobID
}

func (p *Pruner) sourceInventory(ctx context.Context) (*models.Inventory, error) {
	switch {
	case p.opts.LoadPath != "":
		p.log.Info("loading inventory from file", "path", p.opts.LoadPath)
		return LoadInventory(p.opts.LoadPath)
	case p.opts.JobID != "":
		p.jobID = p.opts.JobID
		p.log.Info("resuming inventory-retrieval job", "job_id", p.jobID)
		return p.awaitInventory(ctx, models.JobHandle{VaultName: p.opts.VaultName, JobID: p.jobID})
	default:
		jobID, err := p.svc.InitiateInventoryJob(ctx, p.opts.VaultName)
		if err != nil {
			return nil, err
		}
		p.jobID = jobID
		p.log.Info("started inventory-retrieval job", "job_id", jobID)
		return p.awaitInventory(ctx, models.JobHandle{VaultName: p.opts.VaultName, JobID: jobID})
	}
}

func (p *Pruner) awaitInventory(ctx context.Context, handle models.JobHandle) (*models.Inventory, error) {
	if err := p.waitForJob(ctx, handle); err != nil {
		return nil, err
	}
	p.log.Info("downloading inventory", "vault", handle.VaultName)
	return p.svc.FetchInventory(ctx, handle.VaultName, handle.JobID)
}

// waitForJob polls job status until a terminal state. There is no timeout;
// the remote job lifecycle and context cancellation bound the wait.
func (p *Pruner) waitForJob(ctx context.Context, handle models.JobHandle) error {
	p.log.Info("waiting for inventory job to complete (this can take hours)", "job_id", handle.JobID)
	polls := 0
	for {
		status, err := p.svc.DescribeJob(ctx, handle.VaultName, handle.JobID)
		if err != nil {
			return err
		}
		switch status.Code {
		case models.JobStatusInProgress:
			polls++
			p.log.Info("still waiting", "polls", polls, "next_check_in", p.opts.PollInterval.String())
			if err := p.sleep(ctx, p.opts.PollInterval); err != nil {
				return err
			}
		case models.JobStatusSucceeded:
			return nil
		default:
			return &JobFailedError{JobID: handle.JobID, Status: status.Code, Message: status.Message}
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
