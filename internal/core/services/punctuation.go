package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driven"
	"github.com/custodia-labs/marcassist/internal/core/ports/driving"
	"github.com/custodia-labs/marcassist/internal/logger"
	"github.com/custodia-labs/marcassist/internal/punctuation"
)

// Ensure PunctuationService implements the interface.
var _ driving.PunctuationService = (*PunctuationService)(nil)

// ruleState holds the active rule set shared by all sessions of a service.
type ruleState struct {
	mu    sync.RWMutex
	rules *domain.RuleSet
}

func (s *ruleState) get() *domain.RuleSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules
}

func (s *ruleState) set(rules *domain.RuleSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = rules
}

// PunctuationService validates fields against the active rule set.
// Sessions created with NewSession share rules but not warnings.
type PunctuationService struct {
	source    driven.RulePackSource
	loader    *punctuation.Loader
	state     *ruleState
	validator *punctuation.Validator
}

// NewPunctuationService creates a service. Source may be nil when rules are
// only supplied through LoadRules.
func NewPunctuationService(source driven.RulePackSource) *PunctuationService {
	return &PunctuationService{
		source:    source,
		loader:    punctuation.NewLoader(nil),
		state:     &ruleState{},
		validator: punctuation.NewValidator(),
	}
}

// LoadRules compiles and activates a rule set.
func (s *PunctuationService) LoadRules(pack, options []byte) (*domain.RuleSet, error) {
	rules, err := s.loader.Load(pack, options)
	if err != nil {
		return nil, err
	}
	s.state.set(rules)
	logger.Info("Rule set loaded: %d rules", rules.Len())
	return rules, nil
}

// CheckRules compiles a rule set without activating it.
func (s *PunctuationService) CheckRules(pack, options []byte) (*domain.RuleSet, error) {
	return s.loader.Load(pack, options)
}

// Reload re-reads both documents from the configured source.
func (s *PunctuationService) Reload(ctx context.Context) error {
	if s.source == nil {
		return domain.ErrRulesUnavailable
	}

	rules, err := s.loader.LoadFromSource(ctx, s.source)
	if err != nil {
		return fmt.Errorf("reload rules: %w", err)
	}
	s.state.set(rules)
	logger.Info("Rule set reloaded: %d rules", rules.Len())
	return nil
}

// Watch reloads the rule set whenever the source reports a change. A failed
// reload keeps the previous rule set. It blocks until ctx is cancelled.
func (s *PunctuationService) Watch(ctx context.Context) error {
	watcher, ok := s.source.(driven.RulePackWatcher)
	if !ok {
		return fmt.Errorf("%w: rule pack source cannot be watched", domain.ErrUnsupportedType)
	}
	return watcher.Watch(ctx, func() {
		if err := s.Reload(ctx); err != nil {
			logger.Warn("Rule pack reload failed, keeping previous rules: %v", err)
		}
	})
}

// Rules returns the active rule set.
func (s *PunctuationService) Rules() *domain.RuleSet {
	return s.state.get()
}

// ValidateField validates text against the active rule set.
func (s *PunctuationService) ValidateField(text string, fctx domain.FieldContext) (domain.ValidationResult, error) {
	rules := s.state.get()
	if rules == nil {
		return domain.ValidationResult{Findings: []domain.Finding{}}, domain.ErrRulesUnavailable
	}

	before := len(s.validator.Warnings())
	result := s.validator.ValidateField(text, fctx, rules)

	logger.L().Debug("validated field",
		zap.String("session", s.validator.SessionID()),
		zap.String("tag", fctx.Tag),
		zap.Int("findings", len(result.Findings)),
		zap.Int("new_warnings", len(s.validator.Warnings())-before),
	)
	return result, nil
}

// Warnings returns this session's warnings.
func (s *PunctuationService) Warnings() []domain.Warning {
	return s.validator.Warnings()
}

// DrainWarnings returns this session's warnings and empties them.
func (s *PunctuationService) DrainWarnings() []domain.Warning {
	return s.validator.DrainWarnings()
}

// ClearWarnings empties this session's warnings.
func (s *PunctuationService) ClearWarnings() {
	s.validator.ClearWarnings()
}

// SessionID identifies this session.
func (s *PunctuationService) SessionID() string {
	return s.validator.SessionID()
}

// NewSession returns a service sharing rules and source with its own warnings.
func (s *PunctuationService) NewSession() driving.PunctuationService {
	return &PunctuationService{
		source:    s.source,
		loader:    s.loader,
		state:     s.state,
		validator: punctuation.NewValidator(),
	}
}
