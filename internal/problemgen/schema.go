package problemgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// QuestionSchemaURL is the resource name the schema is compiled under.
const QuestionSchemaURL = "schema://mathrush-question.json"

// QuestionSchema defines the JSON record callers receive for a Question.
var QuestionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"type": map[string]any{
			"type": "string",
			"enum": []any{"arithmetics", "equations"},
		},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"easy", "medium", "hard"},
		},
		"question": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "The expression or equation shown to the player",
		},
		"correctAnswer": map[string]any{
			"type": "integer",
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "integer"},
			"minItems":    4,
			"maxItems":    4,
			"uniqueItems": true,
			"description": "Exactly 4 distinct options, one of which is correctAnswer",
		},
		"explanation": map[string]any{
			"type": "string",
		},
		"metadata": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"operation": map[string]any{"type": "string"},
				"operands": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"additionalProperties": false,
		},
	},
	"required":             []any{"id", "type", "difficulty", "question", "correctAnswer", "options"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// questionSchema compiles QuestionSchema once.
func questionSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not Go
		// maps with typed slices. Round-trip to get a clean representation.
		defBytes, err := json.Marshal(QuestionSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(QuestionSchemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(QuestionSchemaURL)
	})
	return compiledSchema, compileErr
}

// ValidateJSON checks a serialized question (or an array of them) against
// QuestionSchema.
func ValidateJSON(raw []byte) error {
	schema, err := questionSchema()
	if err != nil {
		return fmt.Errorf("compile question schema: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	items, ok := parsed.([]any)
	if !ok {
		items = []any{parsed}
	}
	for i, item := range items {
		if err := schema.Validate(item); err != nil {
			return fmt.Errorf("question %d: schema validation failed: %w", i, err)
		}
	}
	return nil
}
