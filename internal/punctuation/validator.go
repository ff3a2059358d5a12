package punctuation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

// Validator applies compiled rule sets to fields. It owns the warning log
// of one validation session; warnings accumulate across calls until
// ClearWarnings. A Validator is safe for concurrent use.
type Validator struct {
	id       string
	warnings *domain.WarningLog
}

// NewValidator creates a validator with an empty warning log.
func NewValidator() *Validator {
	return &Validator{
		id:       uuid.NewString(),
		warnings: domain.NewWarningLog(),
	}
}

// SessionID identifies the validator's warning log in logs and tool output.
func (v *Validator) SessionID() string {
	return v.id
}

// Warnings returns the warnings accumulated since the last clear.
func (v *Validator) Warnings() []domain.Warning {
	return v.warnings.List()
}

// DrainWarnings returns the accumulated warnings and empties the log.
func (v *Validator) DrainWarnings() []domain.Warning {
	return v.warnings.Drain()
}

// ClearWarnings empties the warning log.
func (v *Validator) ClearWarnings() {
	v.warnings.Clear()
}

// ValidateField checks every subfield of input once, in order, against
// rules. It always returns a result; anomalies go to the warning log.
func (v *Validator) ValidateField(input string, fctx domain.FieldContext, rules *domain.RuleSet) domain.ValidationResult {
	result := domain.ValidationResult{Findings: []domain.Finding{}}

	field, warnings := ParseField(input, fctx)
	if rules == nil {
		warnings = append(warnings, domain.Warning{
			Message: "no rule set loaded",
			Tag:     fctx.Tag,
		})
		v.warnings.Append(warnings...)
		return result
	}

	// One finding per subfield occurrence; a later correction of the same
	// occurrence replaces the earlier one.
	byIndex := make(map[int]int)
	seen := make(map[string]int, len(field.Subfields))
	for i, sf := range field.Subfields {
		seen[sf.Code]++

		rule, ok := rules.Rule(field.Tag, sf.Code)
		if !ok || rule.Disabled {
			continue
		}

		warn := func(format string, args ...any) {
			warnings = append(warnings, domain.Warning{
				Message:  fmt.Sprintf(format, args...),
				Tag:      field.Tag,
				Subfield: sf.Code,
			})
		}

		if !rule.Repeatable && seen[sf.Code] > 1 {
			warn("subfield $%s is not repeatable", sf.Code)
		}
		if rule.MustBeFirst && i != 0 {
			warn("subfield $%s must open the field but is at position %d", sf.Code, i+1)
		}
		if sf.Value == "" && len(rule.Checks) > 0 {
			warn("subfield $%s is empty where punctuation is expected", sf.Code)
			continue
		}

		for _, check := range rule.Checks {
			out := check.Apply(&field, i)
			if out.Anomaly != "" {
				warn("%s", out.Anomaly)
			}
			if !out.Mismatch {
				continue
			}
			finding := domain.Finding{
				Subfield:      field.Subfields[out.Correction.Index].Code,
				ExpectedValue: out.Correction.Value,
				Index:         out.Correction.Index,
				Rule:          rule.Key,
			}
			if pos, ok := byIndex[finding.Index]; ok {
				result.Findings[pos] = finding
				continue
			}
			byIndex[finding.Index] = len(result.Findings)
			result.Findings = append(result.Findings, finding)
		}
	}

	v.warnings.Append(warnings...)
	return result
}
