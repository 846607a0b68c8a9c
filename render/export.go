package render

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON serializes v with 2-space indentation and writes it to path.
func WriteJSON(path string, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export data: %w", err)
	}

	if err := os.WriteFile(path, bz, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
