package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchemaValidation indicates a document that violates its schema.
var ErrSchemaValidation = errors.New("schema validation error")

// Diagnostic is one structural problem found in a document.
type Diagnostic struct {
	Field   string // dotted path, "(root)" for the document itself
	Kind    string // e.g. "required", "invalid_type", "additional_property_not_allowed"
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Field, d.Message)
}

// SchemaValidationError carries every diagnostic found in a document.
// Wraps ErrSchemaValidation for errors.Is() compatibility.
type SchemaValidationError struct {
	Document    string
	Diagnostics []Diagnostic
}

func (e *SchemaValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrSchemaValidation.Error())
	if e.Document != "" {
		fmt.Fprintf(&b, ": %s document", e.Document)
	}
	switch len(e.Diagnostics) {
	case 0:
	case 1:
		fmt.Fprintf(&b, ": %s", e.Diagnostics[0])
	default:
		fmt.Fprintf(&b, ": %s (and %d more)", e.Diagnostics[0], len(e.Diagnostics)-1)
	}
	return b.String()
}

func (e *SchemaValidationError) Unwrap() error { return ErrSchemaValidation }
