package pruner

import (
	"encoding/json"
	"fmt"
	"os"

	"glacierprune/internal/models"
)

// SaveInventory writes the inventory as indented JSON, in the same shape the
// Glacier job returned it, so the file can be fed back via LoadInventory.
func SaveInventory(inventory *models.Inventory, path string) error {
	data, err := json.MarshalIndent(inventory, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write inventory to %s: %w", path, err)
	}
	return nil
}

func LoadInventory(path string) (*models.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InventoryLoadError{Path: path, Err: err}
	}
	var inventory models.Inventory
	if err := json.Unmarshal(data, &inventory); err != nil {
		return nil, &InventoryLoadError{Path: path, Err: err}
	}
	return &inventory, nil
}
