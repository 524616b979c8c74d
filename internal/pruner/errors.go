package pruner

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ConfigError reports an invalid or contradictory set of run options.
// It is returned before any remote or file access happens.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// InventoryLoadError reports a missing or malformed saved inventory file.
type InventoryLoadError struct {
	Path string
	Err  error
}

func (e *InventoryLoadError) Error() string {
	return fmt.Sprintf("failed to load inventory from %s: %v", e.Path, e.Err)
}

func (e *InventoryLoadError) Unwrap() error { return e.Err }

// JobFailedError reports an inventory-retrieval job that ended in a
// terminal status other than Succeeded.
type JobFailedError struct {
	JobID   string
	Status  string
	Message string
}

func (e *JobFailedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("inventory job %s failed with status %s: %s", e.JobID, e.Status, e.Message)
	}
	return fmt.Sprintf("inventory job %s failed with status %s", e.JobID, e.Status)
}

// DeleteError reports an archive deletion failure that aborted the run.
type DeleteError struct {
	ArchiveID string
	Err       error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("failed to delete archive %s: %v", e.ArchiveID, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// Credential-level API errors. Every remaining delete would fail the same
// way, so the run aborts instead of burning through the inventory.
var authErrorCodes = map[string]struct{}{
	"AccessDeniedException":               {},
	"UnrecognizedClientException":         {},
	"ExpiredTokenException":               {},
	"InvalidSignatureException":           {},
	"MissingAuthenticationTokenException": {},
}

func isAuthError(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	_, found := authErrorCodes[apiErr.ErrorCode()]
	return found
}
