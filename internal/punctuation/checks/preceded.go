package checks

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

// Ensure PrecededBy implements the interface.
var _ domain.Check = (*PrecededBy)(nil)

// PrecededBy requires the previous subfield to end with punctuation that
// introduces this one, such as " :" before 245 $b. Mismatches are reported
// against the previous subfield since that is the value to edit.
type PrecededBy struct {
	punctuation string
	replace     string
}

// NewPrecededBy creates a preceded_by check with the default replace set.
func NewPrecededBy(punctuation string) *PrecededBy {
	return &PrecededBy{punctuation: punctuation, replace: DefaultReplace}
}

// Name returns the rule property name.
func (p *PrecededBy) Name() string {
	return PropPrecededBy
}

// Apply checks the value before index.
func (p *PrecededBy) Apply(field *domain.Field, index int) domain.Outcome {
	if index == 0 {
		return domain.Outcome{
			Anomaly: fmt.Sprintf("subfield $%s opens the field but expects preceding %q",
				field.Subfields[index].Code, p.punctuation),
		}
	}

	prev := field.Subfields[index-1].Value
	if prev == "" || strings.HasSuffix(prev, p.punctuation) {
		return domain.Outcome{}
	}

	return domain.Outcome{
		Mismatch: true,
		Correction: domain.Correction{
			Index: index - 1,
			Value: withPunctuation(prev, p.punctuation, p.replace),
		},
	}
}
