package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driving"
)

// MockCutterService implements driving.CutterService for testing.
type MockCutterService struct {
	BuildFunc func(text, tag string) string
	Size      int
}

func (m *MockCutterService) Build(text, tag string) string {
	if m.BuildFunc != nil {
		return m.BuildFunc(text, tag)
	}
	return ""
}

func (m *MockCutterService) Generate(_, _ string, _ domain.CutterOptions) string {
	return ""
}

func (m *MockCutterService) Parse(text, _ string) domain.NameParts {
	return domain.NameParts{Lastname: text}
}

func (m *MockCutterService) TableSize() int {
	return m.Size
}

// MockPunctuationService implements driving.PunctuationService for testing.
type MockPunctuationService struct {
	ValidateFunc func(text string, fctx domain.FieldContext) (domain.ValidationResult, error)
	ReloadErr    error
	warnings     []domain.Warning
	Sessions     int
}

func (m *MockPunctuationService) LoadRules(_, _ []byte) (*domain.RuleSet, error) {
	return nil, nil
}

func (m *MockPunctuationService) CheckRules(_, _ []byte) (*domain.RuleSet, error) {
	return nil, nil
}

func (m *MockPunctuationService) Reload(_ context.Context) error {
	return m.ReloadErr
}

func (m *MockPunctuationService) Watch(_ context.Context) error {
	return nil
}

func (m *MockPunctuationService) SessionID() string {
	return "test"
}

func (m *MockPunctuationService) Rules() *domain.RuleSet {
	return nil
}

func (m *MockPunctuationService) ValidateField(text string, fctx domain.FieldContext) (domain.ValidationResult, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(text, fctx)
	}
	return domain.ValidationResult{Findings: []domain.Finding{}}, nil
}

func (m *MockPunctuationService) Warnings() []domain.Warning {
	return m.warnings
}

func (m *MockPunctuationService) ClearWarnings() {
	m.warnings = nil
}

func (m *MockPunctuationService) DrainWarnings() []domain.Warning {
	out := m.warnings
	m.warnings = nil
	return out
}

func (m *MockPunctuationService) NewSession() driving.PunctuationService {
	m.Sessions++
	return m
}

var (
	_ driving.CutterService      = (*MockCutterService)(nil)
	_ driving.PunctuationService = (*MockPunctuationService)(nil)
)

func TestNewPorts(t *testing.T) {
	cutter := &MockCutterService{}
	punct := &MockPunctuationService{}

	ports := NewPorts(cutter, punct)

	assert.Equal(t, cutter, ports.Cutter)
	assert.Equal(t, punct, ports.Punctuation)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{"empty", &Ports{}, ErrMissingCutterService},
		{"missing punctuation", &Ports{Cutter: &MockCutterService{}}, ErrMissingPunctuationService},
		{"missing cutter", &Ports{Punctuation: &MockPunctuationService{}}, ErrMissingCutterService},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.ports.Validate(), tt.want)
		})
	}
}
