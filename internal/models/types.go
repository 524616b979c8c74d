package models

// Archive is one deletable entry in a vault inventory. Field names and JSON
// tags mirror the Glacier inventory-retrieval job output so a saved inventory
// file round-trips unchanged.
type Archive struct {
	ArchiveId          string `json:"ArchiveId"`
	ArchiveDescription string `json:"ArchiveDescription,omitempty"`
	CreationDate       string `json:"CreationDate,omitempty"`
	Size               int64  `json:"Size,omitempty"`
	SHA256TreeHash     string `json:"SHA256TreeHash,omitempty"`
}

// Inventory is the point-in-time archive listing produced by an
// inventory-retrieval job. Read-only after construction.
type Inventory struct {
	VaultARN      string    `json:"VaultARN,omitempty"`
	InventoryDate string    `json:"InventoryDate,omitempty"`
	ArchiveList   []Archive `json:"ArchiveList"`
}

// JobHandle identifies an in-flight or completed inventory-retrieval job.
type JobHandle struct {
	VaultName string `json:"vault_name"`
	JobID     string `json:"job_id"`
}

// Job status codes as reported by DescribeJob.
const (
	JobStatusInProgress = "InProgress"
	JobStatusSucceeded  = "Succeeded"
	JobStatusFailed     = "Failed"
)

type JobStatus struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

type VaultInfo struct {
	VaultName         string `json:"vault_name"`
	VaultARN          string `json:"vault_arn"`
	CreationDate      string `json:"creation_date"`
	LastInventoryDate string `json:"last_inventory_date,omitempty"`
	NumberOfArchives  int64  `json:"number_of_archives"`
	SizeInBytes       int64  `json:"size_in_bytes"`
	SizeHuman         string `json:"size_human"`
	APIEndpoint       string `json:"api_endpoint,omitempty"`
}

type PruneResult struct {
	VaultName      string   `json:"vault_name"`
	DryRun         bool     `json:"dry_run"`
	ArchiveCount   int      `json:"archive_count"`
	DeletedCount   int      `json:"deleted_count"`
	FailedCount    int      `json:"failed_count"`
	FailedArchives []string `json:"failed_archives,omitempty"`
	TotalSizeBytes int64    `json:"total_size_bytes"`
	TotalSizeHuman string   `json:"total_size_human"`
	InventoryDate  string   `json:"inventory_date,omitempty"`
	SavedTo        string   `json:"saved_to,omitempty"`
	OperationTime  string   `json:"operation_time"`
	Duration       string   `json:"duration"`
}

type InventorySummary struct {
	VaultName      string `json:"vault_name"`
	VaultARN       string `json:"vault_arn,omitempty"`
	InventoryDate  string `json:"inventory_date,omitempty"`
	ArchiveCount   int    `json:"archive_count"`
	TotalSizeBytes int64  `json:"total_size_bytes"`
	TotalSizeHuman string `json:"total_size_human"`
	JobID          string `json:"job_id,omitempty"`
	SavedTo        string `json:"saved_to,omitempty"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	Command   string `json:"command"`
}
