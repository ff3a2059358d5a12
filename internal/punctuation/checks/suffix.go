package checks

import (
	"strings"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

// Ensure Suffix implements the interface.
var _ domain.Check = (*Suffix)(nil)

// Suffix requires a subfield value to end with fixed punctuation,
// such as the full stop closing 245 $a.
type Suffix struct {
	suffix   string
	onlyLast bool
	replace  string
}

// NewSuffix creates a suffix check with the default replace set.
func NewSuffix(suffix string, onlyLast bool) *Suffix {
	return &Suffix{suffix: suffix, onlyLast: onlyLast, replace: DefaultReplace}
}

// Name returns the rule property name.
func (s *Suffix) Name() string {
	return PropSuffix
}

// Apply checks the value at index.
func (s *Suffix) Apply(field *domain.Field, index int) domain.Outcome {
	if s.onlyLast && !field.IsLast(index) {
		return domain.Outcome{}
	}

	value := field.Subfields[index].Value
	if value == "" || strings.HasSuffix(value, s.suffix) {
		return domain.Outcome{}
	}

	return domain.Outcome{
		Mismatch: true,
		Correction: domain.Correction{
			Index: index,
			Value: withPunctuation(value, s.suffix, s.replace),
		},
	}
}

// withPunctuation drops trailing whitespace and replaceable punctuation,
// then appends punct.
func withPunctuation(value, punct, replace string) string {
	return strings.TrimRight(value, replace+" \t") + punct
}
