package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/careza/matchengine/internal/schemas"
)

// envelope tags every output artifact with a run ID and timestamp.
type envelope struct {
	RunID       string    `json:"runId"`
	GeneratedAt time.Time `json:"generatedAt"`
}

func newEnvelope() envelope {
	return envelope{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
	}
}

// validateInput checks an input file against its schema. Fatal: bad input
// means nothing downstream can be trusted. Skipped silently when the schema
// file cannot be located.
func validateInput(schemaFile, jsonPath string) error {
	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", schemaFile))
	if schemaPath == "" {
		return nil
	}
	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		return fmt.Errorf("input %s failed schema validation: %w", jsonPath, err)
	}
	return nil
}

// validateOutput checks a written artifact against its schema. Non-fatal: the
// artifact is already produced, a violation is a warning to the operator.
func validateOutput(schemaFile, jsonPath string) {
	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", schemaFile))
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
	}
}

// loadJSONFile reads and unmarshals a JSON file into dst.
func loadJSONFile(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeJSONFile marshals v with indentation and writes it, creating the
// output directory if needed.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
