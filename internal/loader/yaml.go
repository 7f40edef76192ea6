package loader

import (
	"fmt"
	"io"
	"os"

	"qpce/internal/schema"

	"gopkg.in/yaml.v3"
)

// ReadFile reads a whole document file.
func ReadFile(document, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Document: document, Path: path, Err: err}
	}
	return data, nil
}

// ReadAll reads a whole document from a stream.
func ReadAll(document string, r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &FileAccessError{Document: document, Path: "<stream>", Err: err}
	}
	return data, nil
}

// decode parses data as YAML, validates the generic tree against s and
// decodes the normalized tree into out. No entity is built here, so a
// document failing any of these steps produces no partial model.
func decode(data []byte, s schema.Schema, out any) error {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return &ParseError{Document: s.Name, Err: err}
	}

	normalized, err := schema.Check(tree, s)
	if err != nil {
		return err
	}

	// Re-encoding the normalized tree lets yaml.v3 do the typed conversion.
	raw, err := yaml.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("encode normalized %s document: %w", s.Name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		// Values the schema accepts but Go types cannot hold, such as
		// integers beyond the int range.
		return &schema.SchemaValidationError{
			Document: s.Name,
			Diagnostics: []schema.Diagnostic{{
				Field:   "(root)",
				Kind:    "invalid_value",
				Message: err.Error(),
			}},
		}
	}
	return nil
}

func encode(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return data, nil
}
