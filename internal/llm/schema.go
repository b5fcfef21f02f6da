package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema declares the JSON shape a structured reply must take. Define
// one as a package-level value and share the pointer: the definition is
// compiled once, on first use.
type Schema struct {
	// Name labels the schema for the provider (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case.
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any

	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
}

// Check validates raw against the schema. A nil schema accepts
// anything. Failures are classified ErrBadResponse with the rejected
// content attached.
func (s *Schema) Check(raw json.RawMessage) error {
	if s == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return BadResponse(raw, fmt.Errorf("not valid JSON: %w", err))
	}

	s.compileOnce.Do(s.compile)
	if s.compileErr != nil {
		return BadResponse(raw, fmt.Errorf("schema %q: %w", s.Name, s.compileErr))
	}

	if err := s.compiled.Validate(doc); err != nil {
		return BadResponse(raw, fmt.Errorf("schema %q: %w", s.Name, err))
	}
	return nil
}

func (s *Schema) compile() {
	// The compiler wants a parsed JSON value, not Go maps holding
	// ints and typed slices. Round-trip through encoding/json.
	b, err := json.Marshal(s.Definition)
	if err != nil {
		s.compileErr = fmt.Errorf("marshal definition: %w", err)
		return
	}
	var def any
	if err := json.Unmarshal(b, &def); err != nil {
		s.compileErr = fmt.Errorf("parse definition: %w", err)
		return
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, def); err != nil {
		s.compileErr = err
		return
	}
	s.compiled, s.compileErr = c.Compile(url)
}
