package schema

import (
	"sort"
)

// Type is the primitive type a Field accepts.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeFloat   Type = "float" // any number, integral or not
	TypeList    Type = "list"
	TypeObject  Type = "object"
)

// Field declares the rule for one value of a document.
type Field struct {
	Type     Type
	Required bool
	// Min is the inclusive lower bound for TypeInteger and TypeFloat.
	Min *float64
	// Default is filled in by Normalized when an optional field is absent.
	Default any
	// Items is the rule every element of a TypeList must satisfy.
	Items *Field
	// Fields lists the members of a TypeObject. Members not listed are
	// rejected.
	Fields map[string]Field
}

// Schema is a named declarative schema for a whole document. The root field
// is a TypeObject.
type Schema struct {
	Name string
	Root Field
}

// Min returns a pointer to v for use as Field.Min.
func Min(v float64) *float64 {
	return &v
}

// ListOf declares an optional list of objects with the given members,
// defaulting to an empty list.
func ListOf(fields map[string]Field) Field {
	return Field{
		Type:    TypeList,
		Default: []any{},
		Items:   &Field{Type: TypeObject, Fields: fields},
	}
}

// jsonSchema compiles the field into its JSON Schema form.
func (f Field) jsonSchema() map[string]any {
	m := make(map[string]any)

	switch f.Type {
	case TypeString:
		m["type"] = "string"
	case TypeInteger:
		m["type"] = "integer"
	case TypeFloat:
		m["type"] = "number"
	case TypeList:
		m["type"] = "array"
		if f.Items != nil {
			m["items"] = f.Items.jsonSchema()
		}
	case TypeObject:
		m["type"] = "object"
		m["additionalProperties"] = false
		props := make(map[string]any, len(f.Fields))
		var required []string
		for name, member := range f.Fields {
			props[name] = member.jsonSchema()
			if member.Required {
				required = append(required, name)
			}
		}
		m["properties"] = props
		if len(required) > 0 {
			sort.Strings(required)
			m["required"] = required
		}
	}

	if f.Min != nil {
		m["minimum"] = *f.Min
	}
	return m
}
