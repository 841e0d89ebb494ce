package models

import (
	"fmt"
	"strings"
)

// FieldError is a single violated constraint.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Message renders the constraint the way API clients see it.
func (e FieldError) Message() string {
	return fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field, e.Rule)
}

// ValidationError lists every constraint an input violated.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether field failed on rule.
func (e *ValidationError) Has(field, rule string) bool {
	for _, f := range e.Fields {
		if f.Field == field && f.Rule == rule {
			return true
		}
	}
	return false
}

// AuthenticationError is returned by login. The message never says which part failed.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "invalid credentials"
}

// ErrInvalidCredentials is the only authentication failure login reports.
var ErrInvalidCredentials error = &AuthenticationError{}

// PersistenceError wraps a failed storage call.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err with the storage operation that failed.
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
