// Package errors defines the error vocabulary of the genreforge system:
// sentinel errors for programmatic checks plus typed errors carrying the
// context of the stage that failed.
package errors

import (
	"errors"
	"fmt"
)

// New is the standard library constructor, re-exported so callers need only
// one errors import.
var New = errors.New

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Sentinel errors. Typed errors below map onto these through their Is
// methods, so errors.Is works across both layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrEmptyVocabulary = errors.New("empty vocabulary")
	ErrLimitExceeded   = errors.New("limit exceeded")
	ErrCanceled        = errors.New("operation canceled")
	ErrNotImplemented  = errors.New("not implemented")
)

// NotFoundError reports a missing resource by kind and id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError reports a rejected input value. Value holds the offending
// input for diagnostics; only Field and Message appear in the error text.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError creates a ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError reports unusable configuration in a named component.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }

// NewConfigError creates a ConfigError.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// GenerationError reports a failure inside the generation pipeline,
// attributed to the strategy or stage that raised it.
type GenerationError struct {
	Strategy string
	Message  string
	Err      error
}

func (e *GenerationError) Error() string {
	if e.Strategy != "" {
		return fmt.Sprintf("generation error in %s strategy: %s", e.Strategy, e.Message)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// NewGenerationError creates a GenerationError.
func NewGenerationError(strategy, message string, err error) *GenerationError {
	return &GenerationError{Strategy: strategy, Message: message, Err: err}
}

// MergeError reports a failed duplicate consolidation, naming the entry that
// was to survive and the ids that were to be absorbed.
type MergeError struct {
	Kept     int64
	Absorbed []int64
	Err      error
}

func (e *MergeError) Error() string {
	if len(e.Absorbed) > 0 {
		return fmt.Sprintf("merge error folding %v into %d: %v", e.Absorbed, e.Kept, e.Err)
	}
	return fmt.Sprintf("merge error for entry %d: %v", e.Kept, e.Err)
}

func (e *MergeError) Unwrap() error { return e.Err }

// NewMergeError creates a MergeError.
func NewMergeError(kept int64, absorbed []int64, err error) *MergeError {
	return &MergeError{Kept: kept, Absorbed: absorbed, Err: err}
}

// ParseError reports malformed input in a named format, with an optional
// file position.
type ParseError struct {
	Format  string // "json", "yaml", "csv", "regexp"
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d:%d: %s", e.Format, e.File, e.Line, e.Column, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError creates a ParseError.
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError reports a failed filesystem operation.
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

func (e *IOError) Unwrap() error { return e.Err }

// NewIOError creates an IOError, deriving the message from err.
func NewIOError(operation, path string, err error) *IOError {
	e := &IOError{Operation: operation, Path: path, Err: err}
	if err != nil {
		e.Message = err.Error()
	}
	return e
}

// ExportError reports a failure writing the dataset to a boundary format.
type ExportError struct {
	Format  string // "csv", "csv.gz", "json", "sqlite"
	Path    string
	Message string
	Err     error
}

func (e *ExportError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("export error writing %s to %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("export error writing %s: %s", e.Format, e.Message)
}

func (e *ExportError) Unwrap() error { return e.Err }

// NewExportError creates an ExportError, deriving the message from err.
func NewExportError(format, path string, err error) *ExportError {
	e := &ExportError{Format: format, Path: path, Err: err}
	if err != nil {
		e.Message = err.Error()
	}
	return e
}

// Sentinel checkers.

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsAlreadyExists reports whether err is an already-exists error.
func IsAlreadyExists(err error) bool { return errors.Is(err, ErrAlreadyExists) }

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool { return errors.Is(err, ErrInvalidConfig) }

// IsCanceled reports whether err is a cancellation error.
func IsCanceled(err error) bool { return errors.Is(err, ErrCanceled) }

// Wrappers for the common attach-context-and-return pattern. Each returns
// nil when err is nil, so call sites can wrap unconditionally.

// WrapValidation wraps err as a ValidationError for field.
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps err as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps err as a ParseError.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapExport wraps err as an ExportError.
func WrapExport(format, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewExportError(format, path, err)
}
