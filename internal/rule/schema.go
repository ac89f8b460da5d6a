package rule

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema is a self-referencing JSON Schema describing the nested
// rule-document shape from §4.7: ".read"/".write"/".validate" must be
// strings, every other key must itself be a rule-document mapping.
// Validated before the order-preserving parse in parser.go so a
// malformed document fails fast with a schema-shaped error rather than a
// panic deep in the recursive descent.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "patternProperties": {
    "^\\.(read|write|validate)$": {"type": "string"},
    "^[^.].*$": {"$ref": "#"}
  },
  "additionalProperties": false
}`

var (
	compiledSchema     *jsonschema.Schema
	compiledSchemaOnce sync.Once
	compiledSchemaErr  error
)

func schema() (*jsonschema.Schema, error) {
	compiledSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("elkyn-rule-document.json", strings.NewReader(documentSchema)); err != nil {
			compiledSchemaErr = fmt.Errorf("rule: compile schema resource: %w", err)
			return
		}
		s, err := c.Compile("elkyn-rule-document.json")
		if err != nil {
			compiledSchemaErr = fmt.Errorf("rule: compile schema: %w", err)
			return
		}
		compiledSchema = s
	})
	return compiledSchema, compiledSchemaErr
}

func validateDocumentShape(raw any) error {
	s, err := schema()
	if err != nil {
		return err
	}
	if err := s.Validate(raw); err != nil {
		return fmt.Errorf("%w: %s", ErrRuleParse, err)
	}
	return nil
}
