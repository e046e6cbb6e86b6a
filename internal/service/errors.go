package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound covers ids that don't resolve to a live (non-deleted) row.
	ErrNotFound = errors.New("resource not found")
)

// ValidationError enumerates per-field violations for a 422 response.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns the error only when violations were recorded. A typed nil
// pointer inside a non-nil error interface is a classic footgun; callers use
// this instead of returning e directly.
func (e *ValidationError) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
