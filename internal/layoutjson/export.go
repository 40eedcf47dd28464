package layoutjson

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed layout.schema.json
var layoutSchema []byte

// ImportResult is the structured outcome of an import. Parse and validation
// failures are reported as data, never as a Go error.
type ImportResult struct {
	Success  bool      `json:"success"`
	Document *Document `json:"layoutJSON,omitempty"`
	Errors   []string  `json:"errors"`
}

// ImportFromString parses and validates a Layout JSON text.
func ImportFromString(jsonText string) ImportResult {
	var generic map[string]any
	if err := json.Unmarshal([]byte(jsonText), &generic); err != nil {
		return ImportResult{Success: false, Errors: []string{fmt.Sprintf("Failed to parse JSON: %v", err)}}
	}

	validation := ValidateLayoutJSON(generic)
	if !validation.Valid {
		return ImportResult{Success: false, Errors: validation.Errors}
	}

	var doc Document
	if err := json.Unmarshal([]byte(jsonText), &doc); err != nil {
		return ImportResult{Success: false, Errors: []string{fmt.Sprintf("Failed to decode Layout JSON: %v", err)}}
	}
	return ImportResult{Success: true, Document: &doc, Errors: []string{}}
}

// ImportFromFile reads path and imports its contents.
func ImportFromFile(path string) ImportResult {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Success: false, Errors: []string{fmt.Sprintf("Failed to read file: %v", err)}}
	}
	return ImportFromString(string(raw))
}

// ExportString serializes doc as pretty-printed JSON. Validation problems do
// not block the export; they are returned as warnings alongside the output,
// matching the original export behavior.
func ExportString(doc *Document) (string, []string, error) {
	warnings := collectExportWarnings(doc)

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", warnings, fmt.Errorf("failed to serialize Layout JSON: %w", err)
	}
	return string(encoded), warnings, nil
}

// ExportToFile writes doc to path as pretty-printed JSON.
func ExportToFile(doc *Document, path string) ([]string, error) {
	out, warnings, err := ExportString(doc)
	if err != nil {
		return warnings, err
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return warnings, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return warnings, nil
}

func collectExportWarnings(doc *Document) []string {
	var warnings []string
	if validation := ValidateLayoutJSON(doc); !validation.Valid {
		warnings = append(warnings, validation.Errors...)
	}
	warnings = append(warnings, validateAgainstSchema(doc)...)
	return warnings
}
