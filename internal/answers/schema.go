package answers

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/askyou/internal/quiz"
)

const schemaURL = "schema://answer-sheet.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// ErrInvalidSheet is returned when an answer sheet fails to parse or
// does not match the schema.
type ErrInvalidSheet struct {
	Content []byte
	Err     error
}

func (e *ErrInvalidSheet) Error() string {
	return fmt.Sprintf("invalid answer sheet: %v", e.Err)
}

func (e *ErrInvalidSheet) Unwrap() error {
	return e.Err
}

// SchemaDefinition returns the JSON Schema for answer sheets. Each
// position is bounded by the option count of the matching question.
func SchemaDefinition() map[string]any {
	questions := quiz.Questions()
	items := make([]any, len(questions))
	for i, q := range questions {
		items[i] = map[string]any{
			"type":    "integer",
			"minimum": 0,
			"maximum": len(q.Options) - 1,
		}
	}

	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type":    "object",
		"properties": map[string]any{
			"answers": map[string]any{
				"type":        "array",
				"prefixItems": items,
				"items":       false,
				"minItems":    len(questions),
			},
		},
		"required":             []any{"answers"},
		"additionalProperties": false,
	}
}

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a generic JSON value, not Go maps of ints.
		defBytes, err := json.Marshal(SchemaDefinition())
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
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// Unmarshal validates raw against the answer-sheet schema and decodes it.
func Unmarshal(raw []byte) (Sheet, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Sheet{}, &ErrInvalidSheet{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := schema()
	if err != nil {
		return Sheet{}, err
	}
	if err := sch.Validate(parsed); err != nil {
		return Sheet{}, &ErrInvalidSheet{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var sheet Sheet
	if err := json.Unmarshal(raw, &sheet); err != nil {
		return Sheet{}, &ErrInvalidSheet{Content: raw, Err: err}
	}
	return sheet, nil
}
