// Package schema validates generic documents against declarative schemas.
//
// A Schema is a plain value: a tree of Field rules giving, per member, its
// type, whether it is required, a numeric lower bound and a default. Validate
// and Normalized are pure functions of a document and a Schema. Rules are
// compiled to JSON Schema and checked with gojsonschema, so every violation
// in a document is reported at once as a SchemaValidationError.
package schema
