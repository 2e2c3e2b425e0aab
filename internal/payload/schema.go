// Package payload validates raw JSON payloads against compiled JSON Schemas
// before they reach the scoring engines. Scoring itself never validates:
// once a payload passes this boundary, computation is total.
package payload

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema describes a named JSON Schema for a payload shape.
type Schema struct {
	// Name identifies the schema in errors and the compile cache.
	Name string

	// Definition is the JSON Schema document as a Go value.
	Definition map[string]any
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// Validate checks raw JSON against the given Schema.
// Returns *ErrInvalidPayload when the JSON is malformed or violates the schema.
func Validate(schema *Schema, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidPayload{
			Schema: schema.Name,
			Err:    fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return &ErrInvalidPayload{
			Schema: schema.Name,
			Err:    fmt.Errorf("compile schema: %w", err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidPayload{
			Schema: schema.Name,
			Err:    fmt.Errorf("schema validation failed: %w", err),
		}
	}

	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
