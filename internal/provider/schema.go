package provider

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the contract for a topic data file: an array of question
// records. Field names vary between scrapes (id/number/geometry_number,
// options/choices), so everything beyond question+answer stays optional
// and additional fields are allowed.
const bankSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["question", "answer"],
		"properties": {
			"id": {"type": ["integer", "string"]},
			"number": {"type": ["integer", "string"]},
			"geometry_number": {"type": ["integer", "string"]},
			"question": {"type": "string", "minLength": 1},
			"type": {"type": "string"},
			"options": {"type": "array", "items": {"type": "string"}},
			"choices": {"type": "array", "items": {"type": "string"}},
			"answer": {"type": "string"},
			"explanation": {"type": "string"},
			"referenceImage": {"type": "string"},
			"reference_image": {"type": "string"}
		}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// validateBank checks a raw data file against the bank schema.
func validateBank(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(bankSchema), &def); err != nil {
			schemaErr = err
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://question-bank.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}
