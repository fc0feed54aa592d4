package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionSchema is the integrity contract for question payloads. The
// provider assembles questions from a hand-edited data file, so a structural
// check before rendering catches bad entries at the boundary instead of
// deep inside template building.
var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":        map[string]any{"type": "integer"},
		"level":     map[string]any{"type": "string"},
		"topic":     map[string]any{"type": "string"},
		"tr":        map[string]any{"type": "string", "minLength": 1},
		"masked_en": map[string]any{"type": "string", "minLength": 1},
		"hints": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"word": map[string]any{"type": "string", "minLength": 1},
					"mask": map[string]any{"type": "string"},
				},
				"required": []any{"word"},
			},
		},
		"word_count": map[string]any{"type": "integer"},
	},
	"required": []any{"id", "tr", "masked_en", "hints"},
}

var (
	compiledQuestionSchema *jsonschema.Schema
	compileOnce            sync.Once
	compileErr             error
)

// validateQuestionPayload checks raw question JSON against the schema.
func validateQuestionPayload(raw json.RawMessage) error {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		defBytes, err := json.Marshal(questionSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://question.json", defParsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledQuestionSchema, compileErr = c.Compile("schema://question.json")
	})
	if compileErr != nil {
		return compileErr
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledQuestionSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
