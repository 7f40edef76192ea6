// Package codec serializes the derived view of a built model.
package codec

import (
	"errors"
	"fmt"
	"io"

	"qpce/internal/domain"
)

// ErrUnknownFormat indicates an output format with no registered codec.
var ErrUnknownFormat = errors.New("unknown format")

// Exporter writes a view in one output format
type Exporter interface {
	Export(view *domain.View, w io.Writer) error
	Format() string
}

// ForFormat returns the exporter registered for format ("json" or "yaml").
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "json":
		return NewJSONCodec(), nil
	case "yaml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
