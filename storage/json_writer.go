package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"accident-analyzer/models"
	"accident-analyzer/utils"
)

// JSONWriter handles writing accident records to a JSON file
type JSONWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewJSONWriter creates a new JSONWriter
func NewJSONWriter(filePath string, logger *utils.Logger) *JSONWriter {
	return &JSONWriter{filePath: filePath, logger: logger}
}

// WriteAccidents serializes the records as a pretty-printed UTF-8 JSON list,
// fully overwriting any existing file at the path.
func (w *JSONWriter) WriteAccidents(accidents []*models.Accident) error {
	// Ensure output directory exists
	if dir := filepath.Dir(w.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(accidents, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode accident records: %w", err)
	}

	if err := os.WriteFile(w.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}

	w.logger.Info("Accident data written to: %s (%d records)", w.filePath, len(accidents))
	return nil
}
