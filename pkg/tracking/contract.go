package tracking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ContractSchema is the JSON Schema of the body posted to /track. The receiving
// service must accept exactly this shape.
const ContractSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "TrackingEvent",
  "type": "object",
  "required": ["event_type", "lesson_id", "meta"],
  "additionalProperties": false,
  "properties": {
    "event_type": {"type": "string"},
    "lesson_id": {"type": ["integer", "null"]},
    "meta": {
      "type": "object",
      "additionalProperties": {"type": ["string", "number", "boolean", "null"]}
    }
  }
}`

const contractResource = "tracking_event.json"

var (
	contractOnce   sync.Once
	contractSchema *jsonschema.Schema
	contractErr    error
)

func compiledContract() (*jsonschema.Schema, error) {
	contractOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(contractResource, strings.NewReader(ContractSchema)); err != nil {
			contractErr = fmt.Errorf("tracking: load contract schema: %w", err)
			return
		}
		contractSchema, contractErr = compiler.Compile(contractResource)
		if contractErr != nil {
			contractErr = fmt.Errorf("tracking: compile contract schema: %w", contractErr)
		}
	})
	return contractSchema, contractErr
}

// ValidateBody checks a request body against the /track contract.
func ValidateBody(body []byte) error {
	schema, err := compiledContract()
	if err != nil {
		return err
	}
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var payload any
	if err := decoder.Decode(&payload); err != nil {
		return fmt.Errorf("tracking: decode body: %w", err)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("tracking: body violates contract: %w", err)
	}
	return nil
}
