package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML definition. Unknown keys are rejected.
func ParseYAML(content []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingCube
		}
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if def.Cube == "" {
		return nil, ErrMissingCube
	}
	return &def, nil
}

// EncodeYAML renders a definition as YAML.
func EncodeYAML(def *Definition) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
