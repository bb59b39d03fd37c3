package internal

import (
	"errors"
	"fmt"
)

// ErrOutputExists is returned when the output file is present and overwriting was not requested
var ErrOutputExists = errors.New("file already exists")

// ErrNotFound is returned when no library entry matches an id
var ErrNotFound = errors.New("workout not found")

// ErrAmbiguousID is returned when an id prefix matches more than one library entry
var ErrAmbiguousID = errors.New("ambiguous workout id")

// InputError represents errors obtaining the workout specification
type InputError struct {
	Path string // empty for inline specifications
	Err  error
}

func (e *InputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("input error: %v", e.Err)
	}
	return fmt.Sprintf("input error: %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// OutputError represents errors writing the generated document
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output error: %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// LibraryError represents errors accessing the workout library
type LibraryError struct {
	Op  string // "open", "save", "get", "list", "delete"
	ID  string
	Err error
}

func (e *LibraryError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("library error: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("library error: %s %s: %v", e.Op, e.ID, e.Err)
}

func (e *LibraryError) Unwrap() error {
	return e.Err
}
