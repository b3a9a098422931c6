package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// DuplicateNameError represents a name clash with an existing row of the same entity type.
// Field names the input field that carries the conflicting value.
type DuplicateNameError struct {
	Entity string
	Field  string
	Name   string
}

func (e *DuplicateNameError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.field(), e.Name)
	}
	return fmt.Sprintf("%s with this %s already exists", e.Entity, e.field())
}

func (e *DuplicateNameError) field() string {
	if e.Field == "" {
		return "name"
	}
	return e.Field
}

// Is enables errors.Is() comparison for DuplicateNameError
func (e *DuplicateNameError) Is(target error) bool {
	t, ok := target.(*DuplicateNameError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// WithName returns a copy of the error carrying the conflicting value
func (e *DuplicateNameError) WithName(name string) *DuplicateNameError {
	return &DuplicateNameError{Entity: e.Entity, Field: e.field(), Name: name}
}

// ValidationError represents a validation error. A single-field error uses Field/Message,
// a form-level error carries one message per failing field in Fields.
type ValidationError struct {
	Field   string
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+" - "+e.Fields[k])
		}
		return "validation error: " + strings.Join(parts, "; ")
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// FieldMessages returns the per-field messages of the error
func (e *ValidationError) FieldMessages() map[string]string {
	if len(e.Fields) > 0 {
		return e.Fields
	}
	if e.Field != "" {
		return map[string]string{e.Field: e.Message}
	}
	return map[string]string{}
}

// Entity Not Found Errors
var (
	ErrProductNotFound   = &NotFoundError{Entity: "product"}
	ErrDishNotFound      = &NotFoundError{Entity: "dish"}
	ErrMealGroupNotFound = &NotFoundError{Entity: "meal group"}
)

// Duplicate Name Errors
var (
	ErrProductNameTaken   = &DuplicateNameError{Entity: "product", Field: "name"}
	ErrDishNameTaken      = &DuplicateNameError{Entity: "dish", Field: "name"}
	ErrMealGroupNameTaken = &DuplicateNameError{Entity: "meal group", Field: "name"}
)

// Business Logic Errors
var (
	ErrInvalidID = errors.New("invalid id")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsDuplicateName checks if an error is a DuplicateNameError
func IsDuplicateName(err error) bool {
	var dupErr *DuplicateNameError
	return errors.Is(err, &DuplicateNameError{}) || errors.As(err, &dupErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewFieldsValidationError creates a ValidationError holding one message per field
func NewFieldsValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}
