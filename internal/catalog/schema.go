package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// FileSchema is the JSON schema a catalog file must satisfy.
var FileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"packets": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"questions": map[string]any{
						"type":  "array",
						"items": questionSchema,
					},
				},
				"required":             []any{"name", "questions"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"packets"},
	"additionalProperties": false,
}

var questionSchema = map[string]any{
	"oneOf": []any{
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":           map[string]any{"type": "string", "minLength": 1},
				"correct_answer": map[string]any{"type": "string", "minLength": 1},
			},
			"required":             []any{"text", "correct_answer"},
			"additionalProperties": false,
		},
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string", "minLength": 1},
				"alternatives": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": AlternativeCount,
					"maxItems": AlternativeCount,
				},
				"correct_answer_index": map[string]any{
					"type":    "integer",
					"minimum": 0,
					"maximum": AlternativeCount - 1,
				},
			},
			"required":             []any{"text", "alternatives", "correct_answer_index"},
			"additionalProperties": false,
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDocument checks a decoded catalog document against FileSchema.
// doc must be a plain JSON value (maps, slices, strings, float64, bool).
func validateDocument(doc any) error {
	compileOnce.Do(func() {
		compiledSchema, compileErr = compileFileSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile catalog schema: %w", compileErr)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compileFileSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not Go maps with
	// typed slices, so round-trip through encoding/json first.
	defBytes, err := json.Marshal(FileSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://catalog.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
