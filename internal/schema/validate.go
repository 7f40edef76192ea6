package schema

import (
	"fmt"
	"math"
	"sort"

	"github.com/xeipuuv/gojsonschema"
)

// Validate checks doc, a generic tree of maps, lists and scalars as produced
// by a YAML or JSON decoder, against s. It returns nil or a
// *SchemaValidationError listing every violation.
func Validate(doc any, s Schema) error {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(s.Root.jsonSchema()))
	if err != nil {
		// The schema is a program constant; failing to compile it is a bug.
		return fmt.Errorf("compile %s schema: %w", s.Name, err)
	}

	result, err := compiled.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return &SchemaValidationError{
			Document: s.Name,
			Diagnostics: []Diagnostic{{
				Field:   "(root)",
				Kind:    "unloadable",
				Message: err.Error(),
			}},
		}
	}

	diags := make([]Diagnostic, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		diags = append(diags, Diagnostic{
			Field:   re.Field(),
			Kind:    re.Type(),
			Message: re.Description(),
		})
	}
	diags = append(diags, wholeFloats(doc, s.Root, "(root)")...)
	if len(diags) == 0 {
		return nil
	}
	// Report order must not depend on map iteration inside the checker.
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Field != diags[j].Field {
			return diags[i].Field < diags[j].Field
		}
		return diags[i].Message < diags[j].Message
	})
	return &SchemaValidationError{Document: s.Name, Diagnostics: diags}
}

// wholeFloats reports floating point values with no fractional part, such as
// 10.0 or 1e3, in integer fields. gojsonschema accepts them as integers; YAML
// decoders give integer literals a Go integer type. Fractional values are
// already reported by gojsonschema.
func wholeFloats(v any, f Field, path string) []Diagnostic {
	switch f.Type {
	case TypeInteger:
		var x float64
		switch n := v.(type) {
		case float64:
			x = n
		case float32:
			x = float64(n)
		default:
			return nil
		}
		if math.Trunc(x) != x {
			return nil
		}
		return []Diagnostic{{
			Field:   path,
			Kind:    "invalid_type",
			Message: "Invalid type. Expected: integer, given: number",
		}}
	case TypeObject:
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		var out []Diagnostic
		for k, val := range m {
			if member, known := f.Fields[k]; known {
				out = append(out, wholeFloats(val, member, childPath(path, k))...)
			}
		}
		return out
	case TypeList:
		list, ok := v.([]any)
		if !ok || f.Items == nil {
			return nil
		}
		var out []Diagnostic
		for i, item := range list {
			out = append(out, wholeFloats(item, *f.Items, childPath(path, fmt.Sprint(i)))...)
		}
		return out
	}
	return nil
}

// childPath builds field paths the way gojsonschema reports them.
func childPath(parent, key string) string {
	if parent == "(root)" {
		return key
	}
	return parent + "." + key
}

// Normalized returns a deep copy of doc with the declared defaults of absent
// optional fields filled in. doc is expected to have passed Validate.
func Normalized(doc any, s Schema) any {
	return normalize(doc, s.Root)
}

// Check validates doc and returns its normalized form.
func Check(doc any, s Schema) (any, error) {
	if err := Validate(doc, s); err != nil {
		return nil, err
	}
	return Normalized(doc, s), nil
}

func normalize(v any, f Field) any {
	switch f.Type {
	case TypeObject:
		m, ok := v.(map[string]any)
		if !ok {
			return deepCopy(v)
		}
		out := make(map[string]any, len(f.Fields))
		for k, val := range m {
			if member, known := f.Fields[k]; known {
				out[k] = normalize(val, member)
			} else {
				out[k] = deepCopy(val)
			}
		}
		for name, member := range f.Fields {
			if _, present := out[name]; !present && member.Default != nil {
				out[name] = deepCopy(member.Default)
			}
		}
		return out
	case TypeList:
		list, ok := v.([]any)
		if !ok || f.Items == nil {
			return deepCopy(v)
		}
		out := make([]any, len(list))
		for i, item := range list {
			out[i] = normalize(item, *f.Items)
		}
		return out
	}
	return deepCopy(v)
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = deepCopy(val)
		}
		return out
	}
	return v
}
