package mcp

import (
	"context"
	"strings"

	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driving"
)

// mockCutterService is a mock implementation of driving.CutterService.
type mockCutterService struct {
	cutter    string
	parts     domain.NameParts
	lastOpts  domain.CutterOptions
	lastTag   string
	tableSize int
}

func (m *mockCutterService) Build(_ string, tag string) string {
	m.lastTag = tag
	return m.cutter
}

func (m *mockCutterService) Generate(_, _ string, opts domain.CutterOptions) string {
	m.lastOpts = opts
	if m.cutter == "" {
		return ""
	}
	return strings.TrimPrefix(m.cutter, ".") + opts.Suffix
}

func (m *mockCutterService) Parse(_ string, _ string) domain.NameParts {
	return m.parts
}

func (m *mockCutterService) TableSize() int {
	return m.tableSize
}

// mockPunctuationService is a mock implementation of driving.PunctuationService.
// NewSession counts calls and returns the same mock.
type mockPunctuationService struct {
	rules    *domain.RuleSet
	result   domain.ValidationResult
	warnings []domain.Warning
	err      error
	lastCtx  domain.FieldContext
	sessions int
	drains   int
}

func (m *mockPunctuationService) LoadRules(_, _ []byte) (*domain.RuleSet, error) {
	return m.rules, m.err
}

func (m *mockPunctuationService) CheckRules(_, _ []byte) (*domain.RuleSet, error) {
	return m.rules, m.err
}

func (m *mockPunctuationService) Reload(_ context.Context) error {
	return m.err
}

func (m *mockPunctuationService) Watch(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (m *mockPunctuationService) SessionID() string {
	return "mock-session"
}

func (m *mockPunctuationService) Rules() *domain.RuleSet {
	return m.rules
}

func (m *mockPunctuationService) ValidateField(_ string, fctx domain.FieldContext) (domain.ValidationResult, error) {
	m.lastCtx = fctx
	return m.result, m.err
}

func (m *mockPunctuationService) Warnings() []domain.Warning {
	return m.warnings
}

func (m *mockPunctuationService) ClearWarnings() {
	m.warnings = nil
}

func (m *mockPunctuationService) DrainWarnings() []domain.Warning {
	m.drains++
	out := m.warnings
	m.warnings = nil
	return out
}

func (m *mockPunctuationService) NewSession() driving.PunctuationService {
	m.sessions++
	return m
}

// namedCheck is a check that only reports its name.
type namedCheck string

func (c namedCheck) Name() string { return string(c) }

func (c namedCheck) Apply(_ *domain.Field, _ int) domain.Outcome { return domain.Outcome{} }

func testRuleSet() *domain.RuleSet {
	return domain.NewRuleSet([]domain.PunctuationRule{
		{Key: "245$a", Tag: "245", Subfield: "a", Checks: []domain.Check{namedCheck("suffix")}, Repeatable: false, MustBeFirst: true, Source: "pack"},
		{Key: "245$b", Tag: "245", Subfield: "b", Checks: []domain.Check{namedCheck("precededBy"), namedCheck("suffix")}, Repeatable: true, Source: "pack"},
		{Key: "*$6", Tag: "*", Subfield: "6", Repeatable: false, Disabled: true, Source: "options"},
		{Key: "100$a", Tag: "100", Subfield: "a", Checks: []domain.Check{namedCheck("suffix")}, Source: "pack"},
	}, nil)
}

// Verify interface compliance.
var (
	_ driving.CutterService      = (*mockCutterService)(nil)
	_ driving.PunctuationService = (*mockPunctuationService)(nil)
)
