package codec

import (
	"fmt"
	"io"

	"qpce/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec writes views as YAML
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Export writes a view as YAML with two-space indentation
func (c *YAMLCodec) Export(view *domain.View, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(view); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}
