package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled holds compiled schemas keyed by Schema.Name.
var compiled sync.Map // map[string]*jsonschema.Schema

// Validate checks raw JSON text against the schema definition and returns
// *ErrInvalidResponse when it does not conform.
func (s *Schema) Validate(raw string) error {
	if s == nil {
		return nil
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := s.compile()
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	if err := sch.Validate(doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema %s: %w", s.Name, err)}
	}
	return nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	if v, ok := compiled.Load(s.Name); ok {
		return v.(*jsonschema.Schema), nil
	}

	// Definitions are Go literals ([]string and friends); the compiler
	// only understands decoded JSON values.
	b, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", s.Name, err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode schema %s: %w", s.Name, err)
	}

	url := "mem://schemas/" + s.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", s.Name, err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", s.Name, err)
	}

	actual, _ := compiled.LoadOrStore(s.Name, sch)
	return actual.(*jsonschema.Schema), nil
}
