package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrFileAccess indicates a document file that could not be opened or read.
	ErrFileAccess = errors.New("file access error")

	// ErrParse indicates text that is not well-formed YAML.
	ErrParse = errors.New("parse error")
)

// FileAccessError wraps an I/O failure on a document file.
type FileAccessError struct {
	Document string // "network" or "demand"
	Path     string
	Err      error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s: could not open %s file %s: %v", ErrFileAccess.Error(), e.Document, e.Path, e.Err)
}

// Unwrap exposes both the category and the underlying os error, so
// errors.Is(err, fs.ErrNotExist) keeps working.
func (e *FileAccessError) Unwrap() []error { return []error{ErrFileAccess, e.Err} }

// ParseError wraps a YAML syntax error.
type ParseError struct {
	Document string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: could not parse %s YAML document: %v", ErrParse.Error(), e.Document, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }
