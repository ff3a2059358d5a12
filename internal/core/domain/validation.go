package domain

import "sync"

// Finding is a single punctuation mismatch for one subfield occurrence.
type Finding struct {
	Subfield      string `json:"subfield"`
	ExpectedValue string `json:"expected_value"`

	// Index is the position of the occurrence within the field.
	Index int `json:"index"`

	// Rule is the key of the rule that produced the finding.
	Rule string `json:"rule,omitempty"`
}

// ValidationResult is the outcome of validating one field.
type ValidationResult struct {
	Findings []Finding `json:"findings"`
}

// Warning is a non-fatal diagnostic raised during validation.
type Warning struct {
	Message  string `json:"message"`
	Tag      string `json:"tag,omitempty"`
	Subfield string `json:"subfield,omitempty"`
}

// WarningLog accumulates warnings across validation calls until cleared.
// It is safe for concurrent use.
type WarningLog struct {
	mu       sync.Mutex
	warnings []Warning
}

// NewWarningLog creates an empty log.
func NewWarningLog() *WarningLog {
	return &WarningLog{}
}

// Append adds warnings to the log.
func (l *WarningLog) Append(w ...Warning) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, w...)
}

// List returns a snapshot of the accumulated warnings.
func (l *WarningLog) List() []Warning {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Warning, len(l.warnings))
	copy(out, l.warnings)
	return out
}

// Len returns the number of accumulated warnings.
func (l *WarningLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.warnings)
}

// Drain returns the accumulated warnings and empties the log in one step.
func (l *WarningLog) Drain() []Warning {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.warnings
	l.warnings = nil
	return out
}

// Clear empties the log.
func (l *WarningLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = nil
}
