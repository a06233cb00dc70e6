package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a mapping of column name to dtype, keeping declaration order.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*s = New()
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("schema: expected a mapping, got line %d", node.Line)
	}

	var errs []error
	cols := make([]Column, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			errs = append(errs, &ValidationError{
				Key:    key.Value,
				Reason: fmt.Sprintf("dtype must be a scalar (line %d)", val.Line),
			})
			continue
		}
		cols = append(cols, Column{Name: key.Value, Type: val.Value})
	}
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	*s = New(cols...)
	return Validate(*s)
}

// MarshalYAML encodes the schema as an ordered mapping.
func (s Schema) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range s.columns {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: c.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: c.Type},
		)
	}
	return node, nil
}

// MarshalJSON serializes the schema as an object of column names to dtypes,
// in declaration order.
func (s Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range s.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.Type)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON deserializes the schema from an object of column names to dtypes,
// keeping key order.
func (s *Schema) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("schema: UnmarshalJSON on nil pointer")
	}
	if string(bytes.TrimSpace(data)) == "null" {
		*s = New()
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("schema: expected JSON object")
	}

	var cols []Column
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name := tok.(string)

		var typ any
		if err := dec.Decode(&typ); err != nil {
			return err
		}
		str, ok := typ.(string)
		if !ok {
			return &ValidationError{Key: name, Reason: "expected string dtype", Value: typ}
		}
		cols = append(cols, Column{Name: name, Type: str})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = New(cols...)
	return nil
}
