/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a record or a persisted document is not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrArity is returned when an operation receives an unsupported number of arguments
	ErrArity = errors.New("wrong number of arguments")

	// ErrTypeConsistency is returned when a value lacks the shape of a well-formed record
	ErrTypeConsistency = errors.New("value is not a well-formed record")

	// ErrUnknownType is returned when a stored type tag has no registered kind
	ErrUnknownType = errors.New("unknown type tag")

	// ErrParse is returned when a stored field cannot be parsed back to its semantic type
	ErrParse = errors.New("parse error")
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ArityError reports an operation invoked with the wrong number of arguments.
// Max < 0 means the operation accepts any number of arguments from Min upward.
type ArityError struct {
	Op  string
	Min int
	Max int
	Got int
}

func (e *ArityError) Error() string {
	switch {
	case e.Min == e.Max:
		return fmt.Sprintf("%s takes exactly %d argument(s), %d given", e.Op, e.Min, e.Got)
	case e.Max < 0:
		return fmt.Sprintf("%s takes at least %d argument(s), %d given", e.Op, e.Min, e.Got)
	default:
		return fmt.Sprintf("%s takes %d to %d argument(s), %d given", e.Op, e.Min, e.Max, e.Got)
	}
}

func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

// TypeConsistencyError represents a value passed where a record was required
type TypeConsistencyError struct {
	Op     string
	Reason string
}

func (e *TypeConsistencyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *TypeConsistencyError) Is(target error) bool {
	return target == ErrTypeConsistency
}

// UnknownTypeError represents a stored record whose type tag is not registered
type UnknownTypeError struct {
	Tag string
	Key string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type tag %q for key %q", e.Tag, e.Key)
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// ParseError represents a stored field that could not be parsed.
// Err carries the underlying cause, if any.
type ParseError struct {
	Key   string
	Field string
	Value any
	Err   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cannot parse field %q", e.Field)
	if e.Key != "" {
		msg = fmt.Sprintf("%s of %q", msg, e.Key)
	}
	if e.Value != nil {
		msg = fmt.Sprintf("%s (value %v)", msg, e.Value)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewTypeConsistencyError creates a new TypeConsistencyError
func NewTypeConsistencyError(op, reason string) error {
	return &TypeConsistencyError{Op: op, Reason: reason}
}

// NewUnknownTypeError creates a new UnknownTypeError
func NewUnknownTypeError(tag, key string) error {
	return &UnknownTypeError{Tag: tag, Key: key}
}

// NewParseError creates a new ParseError
func NewParseError(key, field string, value any, cause error) error {
	return &ParseError{Key: key, Field: field, Value: value, Err: cause}
}

// CheckArity returns an ArityError unless min <= got and (max < 0 or got <= max).
func CheckArity(op string, min, max, got int) error {
	if got < min || (max >= 0 && got > max) {
		return &ArityError{Op: op, Min: min, Max: max, Got: got}
	}
	return nil
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsArity checks if an error is an arity error
func IsArity(err error) bool {
	return errors.Is(err, ErrArity)
}

// IsTypeConsistency checks if an error is a type consistency error
func IsTypeConsistency(err error) bool {
	return errors.Is(err, ErrTypeConsistency)
}

// IsUnknownType checks if an error is an unknown type error
func IsUnknownType(err error) bool {
	return errors.Is(err, ErrUnknownType)
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}
