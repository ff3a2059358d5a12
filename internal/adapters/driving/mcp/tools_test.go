package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

func newTestServer(t *testing.T, cutter *mockCutterService, punct *mockPunctuationService) *Server {
	t.Helper()
	s, err := NewServer(&Ports{Cutter: cutter, Punctuation: punct})
	require.NoError(t, err)
	return s
}

func TestHandleCutterBuild(t *testing.T) {
	t.Run("defaults to personal name tag", func(t *testing.T) {
		cutter := &mockCutterService{
			cutter: ".S65",
			parts:  domain.NameParts{Lastname: "Smith", Firstname: "John"},
		}
		s := newTestServer(t, cutter, &mockPunctuationService{})

		result, output, err := s.handleCutterBuild(context.Background(), nil, CutterBuildInput{Text: "Smith, John"})
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, domain.TagPersonalName, cutter.lastTag)
		assert.Equal(t, ".S65", output.Cutter)
		assert.Equal(t, "Smith", output.Lastname)
		assert.Equal(t, "John", output.Firstname)
		assert.True(t, output.Found)
	})

	t.Run("passes tag through", func(t *testing.T) {
		cutter := &mockCutterService{cutter: ".G74", parts: domain.NameParts{Lastname: "Great"}}
		s := newTestServer(t, cutter, &mockPunctuationService{})

		_, output, err := s.handleCutterBuild(context.Background(), nil, CutterBuildInput{Text: "The Great War", Tag: "245"})
		require.NoError(t, err)
		assert.Equal(t, "245", cutter.lastTag)
		assert.Equal(t, ".G74", output.Cutter)
	})

	t.Run("no match reports not found", func(t *testing.T) {
		s := newTestServer(t, &mockCutterService{}, &mockPunctuationService{})

		_, output, err := s.handleCutterBuild(context.Background(), nil, CutterBuildInput{Text: "!!!"})
		require.NoError(t, err)
		assert.Empty(t, output.Cutter)
		assert.False(t, output.Found)
	})
}

func TestHandleCutterGenerate(t *testing.T) {
	cutter := &mockCutterService{cutter: ".S65"}
	s := newTestServer(t, cutter, &mockPunctuationService{})

	_, output, err := s.handleCutterGenerate(context.Background(), nil, CutterGenerateInput{
		Lastname:       "Smith",
		Firstname:      "John",
		Suffix:         "1999",
		FoldDiacritics: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "S651999", output.Cutter)
	assert.True(t, output.Found)
	assert.True(t, cutter.lastOpts.FoldDiacritics)
	assert.Equal(t, "1999", cutter.lastOpts.Suffix)
}

func TestHandleValidateField(t *testing.T) {
	t.Run("returns findings", func(t *testing.T) {
		punct := &mockPunctuationService{
			result: domain.ValidationResult{Findings: []domain.Finding{
				{Subfield: "a", ExpectedValue: "Title :", Index: 0, Rule: "245$a"},
			}},
		}
		s := newTestServer(t, &mockCutterService{}, punct)

		_, output, err := s.handleValidateField(context.Background(), nil, ValidateFieldInput{
			Field: "10$aTitle$bsubtitle",
			Tag:   "245",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, "Title :", output.Findings[0].ExpectedValue)
		assert.Equal(t, "245", punct.lastCtx.Tag)
		assert.Zero(t, punct.lastCtx.Delimiter)
	})

	t.Run("explicit delimiter", func(t *testing.T) {
		punct := &mockPunctuationService{}
		s := newTestServer(t, &mockCutterService{}, punct)

		_, _, err := s.handleValidateField(context.Background(), nil, ValidateFieldInput{
			Field: "10|aTitle", Tag: "245", Delimiter: "|",
		})
		require.NoError(t, err)
		assert.Equal(t, '|', punct.lastCtx.Delimiter)
	})

	t.Run("multi-character delimiter is rejected", func(t *testing.T) {
		s := newTestServer(t, &mockCutterService{}, &mockPunctuationService{})

		_, _, err := s.handleValidateField(context.Background(), nil, ValidateFieldInput{
			Field: "x", Tag: "245", Delimiter: "$$",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("service error propagates", func(t *testing.T) {
		punct := &mockPunctuationService{err: domain.ErrRulesUnavailable}
		s := newTestServer(t, &mockCutterService{}, punct)

		_, _, err := s.handleValidateField(context.Background(), nil, ValidateFieldInput{Field: "$aX", Tag: "245"})
		assert.True(t, errors.Is(err, domain.ErrRulesUnavailable))
	})
}

func TestHandleWarnings(t *testing.T) {
	t.Run("empty list is not nil", func(t *testing.T) {
		s := newTestServer(t, &mockCutterService{}, &mockPunctuationService{})

		_, output, err := s.handleGetWarnings(context.Background(), nil, WarningsInput{})
		require.NoError(t, err)
		assert.NotNil(t, output.Warnings)
		assert.Equal(t, 0, output.Count)
	})

	t.Run("clear returns removed warnings", func(t *testing.T) {
		punct := &mockPunctuationService{warnings: []domain.Warning{
			{Message: "subfield is not repeatable", Tag: "245", Subfield: "a"},
		}}
		s := newTestServer(t, &mockCutterService{}, punct)

		_, got, err := s.handleGetWarnings(context.Background(), nil, WarningsInput{})
		require.NoError(t, err)
		assert.Equal(t, 1, got.Count)

		_, cleared, err := s.handleClearWarnings(context.Background(), nil, WarningsInput{})
		require.NoError(t, err)
		assert.Equal(t, 1, cleared.Count)
		assert.Equal(t, 1, punct.drains, "warnings are read and cleared in one step")
		assert.Empty(t, punct.Warnings())
	})
}
