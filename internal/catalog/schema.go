package catalog

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://mcqdrill/questions.json"

// fileSchema describes the question data file: an object mapping each
// category name to a non-empty array of question records.
var fileSchema = map[string]any{
	"$schema":       "https://json-schema.org/draft/2020-12/schema",
	"type":          "object",
	"minProperties": 1,
	"additionalProperties": map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type":     "object",
			"required": []any{"question", "choices", "answer", "reason"},
			"properties": map[string]any{
				"question": map[string]any{"type": "string", "minLength": 1},
				"choices": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": ChoiceCount,
					"maxItems": ChoiceCount,
				},
				"answer": map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D"}},
				"reason": map[string]any{"type": "string"},
			},
		},
	},
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, fileSchema); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	sch, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return sch, nil
})

// validateSchema checks a decoded JSON document against the file schema.
func validateSchema(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("question schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
