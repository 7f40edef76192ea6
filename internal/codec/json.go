package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"qpce/internal/domain"
)

// JSONCodec writes views as JSON
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Export writes a view as indented JSON
func (c *JSONCodec) Export(view *domain.View, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(view); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
