package utils

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paologalligit/moffi-booker/entities"
)

// WriteCatalogToFile snapshots a resolved catalog so later runs can book
// without re-resolving.
func WriteCatalogToFile(buildings []entities.Building, filename string) error {
	data, err := json.MarshalIndent(buildings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog to file: %w", err)
	}
	return nil
}

func ReadCatalogFromFile(filename string) ([]entities.Building, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	var buildings []entities.Building
	if err := json.Unmarshal(data, &buildings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}
	return buildings, nil
}
