package driving

import (
	"context"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

// PunctuationService validates field punctuation against a rule pack.
// Each service value is one validation session with its own warnings.
type PunctuationService interface {
	// LoadRules compiles pack with options merged over it and makes the
	// result the active rule set.
	LoadRules(pack, options []byte) (*domain.RuleSet, error)

	// CheckRules compiles pack and options without activating the result.
	CheckRules(pack, options []byte) (*domain.RuleSet, error)

	// Reload re-reads the configured rule pack source.
	Reload(ctx context.Context) error

	// Watch reloads the rule set whenever the source reports a change and
	// blocks until ctx is cancelled. Failed reloads keep the previous rules.
	Watch(ctx context.Context) error

	// SessionID identifies this session.
	SessionID() string

	// Rules returns the active rule set, or nil if none is loaded.
	Rules() *domain.RuleSet

	// ValidateField validates text against the active rule set.
	// Returns ErrRulesUnavailable when no rule set is loaded.
	ValidateField(text string, fctx domain.FieldContext) (domain.ValidationResult, error)

	// Warnings returns warnings accumulated by this session.
	Warnings() []domain.Warning

	// ClearWarnings empties this session's warnings.
	ClearWarnings()

	// DrainWarnings returns this session's warnings and empties them
	// atomically, so none appended meanwhile are lost.
	DrainWarnings() []domain.Warning

	// NewSession returns a service sharing the active rule set but with
	// its own warnings.
	NewSession() PunctuationService
}
