package inference

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// responseLineSchema is the minimal shape every provider output line must
// satisfy before reconciliation trusts it.
var responseLineSchema = map[string]any{
	"type":     "object",
	"required": []any{"custom_id"},
	"properties": map[string]any{
		"custom_id": map[string]any{"type": "string", "minLength": 1},
		"error": map[string]any{
			"type": []any{"object", "null"},
			"properties": map[string]any{
				"code":    map[string]any{"type": []any{"string", "null"}},
				"message": map[string]any{"type": []any{"string", "null"}},
			},
		},
		"response": map[string]any{
			"type": []any{"object", "null"},
			"properties": map[string]any{
				"status_code": map[string]any{"type": "integer"},
				"body":        map[string]any{"type": "object"},
			},
		},
	},
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
