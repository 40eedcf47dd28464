package layoutjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Result is the outcome of a structural validation. Validation never fails
// with a Go error: problems are reported as entries in Errors.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateLayoutJSON checks the structural invariants of a Layout JSON
// value: version present, layout.components an array, every component
// carrying id and component, slots (if present) an object whose content
// entries each name a component. The input may be a *Document or any
// generically decoded JSON value.
func ValidateLayoutJSON(raw any) Result {
	errors := []string{}

	if raw == nil {
		return Result{Valid: false, Errors: []string{"Layout JSON is required"}}
	}

	obj, err := toGeneric(raw)
	if err != nil {
		return Result{Valid: false, Errors: []string{err.Error()}}
	}

	if v, ok := obj["version"]; !ok || v == nil || v == "" {
		errors = append(errors, "Layout JSON version is required")
	}

	layout, ok := obj["layout"].(map[string]any)
	if !ok {
		errors = append(errors, "Layout JSON layout object is required")
		return Result{Valid: false, Errors: errors}
	}

	components, ok := layout["components"].([]any)
	if !ok {
		errors = append(errors, "Layout JSON layout.components must be an array")
		return Result{Valid: false, Errors: errors}
	}

	for i, c := range components {
		comp, ok := c.(map[string]any)
		if !ok {
			errors = append(errors, fmt.Sprintf("Component at index %d must be an object", i))
			continue
		}
		if s, _ := comp["component"].(string); s == "" {
			errors = append(errors, fmt.Sprintf("Component at index %d is missing 'component' field", i))
		}
		if s, _ := comp["id"].(string); s == "" {
			errors = append(errors, fmt.Sprintf("Component at index %d is missing 'id' field", i))
		}

		slots, present := comp["slots"]
		if !present || slots == nil {
			continue
		}
		slotsObj, ok := slots.(map[string]any)
		if !ok {
			errors = append(errors, fmt.Sprintf("Component at index %d has invalid 'slots' field (must be object)", i))
			continue
		}
		content, present := slotsObj["content"]
		if !present || content == nil {
			continue
		}
		entries, ok := content.([]any)
		if !ok {
			errors = append(errors, fmt.Sprintf("Component at index %d has invalid 'slots.content' (must be array)", i))
			continue
		}
		for j, e := range entries {
			entry, ok := e.(map[string]any)
			if !ok || entry["component"] == nil || entry["component"] == "" {
				errors = append(errors, fmt.Sprintf("Component at index %d, slot content at index %d is missing 'component' field", i, j))
			}
		}
	}

	return Result{Valid: len(errors) == 0, Errors: errors}
}

// toGeneric converts a typed document (or any other value) into the generic
// map form validation operates on.
func toGeneric(raw any) (map[string]any, error) {
	if m, ok := raw.(map[string]any); ok {
		return m, nil
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("Layout JSON is not serializable: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(encoded, &m); err != nil {
		return nil, fmt.Errorf("Layout JSON must be an object")
	}
	return m, nil
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// validateAgainstSchema checks doc against the embedded JSON Schema. Schema
// violations come back as error strings so callers can surface them the same
// way as structural validation results.
func validateAgainstSchema(doc *Document) []string {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("layout.schema.json", bytes.NewReader(layoutSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("layout.schema.json")
	})
	if schemaErr != nil {
		return []string{fmt.Sprintf("schema compile failed: %v", schemaErr)}
	}

	generic, err := toGeneric(doc)
	if err != nil {
		return []string{err.Error()}
	}
	if err := compiledSchema.Validate(map[string]any(generic)); err != nil {
		return []string{fmt.Sprintf("schema validation failed: %v", err)}
	}
	return nil
}
