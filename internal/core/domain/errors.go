package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown table format or rule check.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrParse indicates a rule pack or options document could not be parsed.
	// Returned errors are *ParseError values that match this sentinel.
	ErrParse = errors.New("parse error")

	// ErrTableUnavailable indicates no Cutter table has been configured.
	// Cutter generation is disabled without a table.
	ErrTableUnavailable = errors.New("cutter table unavailable")

	// ErrRulesUnavailable indicates no rule pack has been loaded.
	// Field validation is disabled without a rule set.
	ErrRulesUnavailable = errors.New("rule set unavailable")
)

// Documents named by ParseError.
const (
	DocumentRulePack = "rule pack"
	DocumentOptions  = "options"
)

// ParseError reports which document of a rule pack load failed.
type ParseError struct {
	// Document is DocumentRulePack or DocumentOptions.
	Document string

	// Key is the rule key being compiled, empty for syntax errors.
	Key string

	// Err is the underlying decode or compile error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s: key %q: %v", e.Document, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Document, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrParse as a match so callers can test with errors.Is.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
