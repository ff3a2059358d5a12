package punctuation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/punctuation/checks"
)

const basePack = `{
	"name": "ISBD core",
	"245$a": {"suffix": ".", "must_be_first": true},
	"245$b": {"preceded_by": " :", "repeatable": false},
	"*$c": {"suffix": "."}
}`

func TestLoadRules_Base(t *testing.T) {
	rules, err := LoadRules([]byte(basePack), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"*$c", "245$a", "245$b"}, rules.Keys())

	a, ok := rules.Rule("245", "a")
	require.True(t, ok)
	assert.Equal(t, "245", a.Tag)
	assert.Equal(t, "a", a.Subfield)
	assert.True(t, a.MustBeFirst)
	assert.True(t, a.Repeatable)
	assert.Equal(t, domain.DocumentRulePack, a.Source)
	require.Len(t, a.Checks, 1)
	assert.Equal(t, checks.PropSuffix, a.Checks[0].Name())

	b, ok := rules.Rule("245", "b")
	require.True(t, ok)
	assert.False(t, b.Repeatable)

	name, ok := rules.Extra("name")
	require.True(t, ok)
	assert.JSONEq(t, `"ISBD core"`, string(name))
}

func TestLoadRules_WildcardAndSpecific(t *testing.T) {
	rules, err := LoadRules([]byte(`{"*$c": {"suffix": "."}, "260$c": {"suffix": ";"}}`), nil)
	require.NoError(t, err)

	specific, ok := rules.Rule("260", "c")
	require.True(t, ok)
	assert.Equal(t, "260$c", specific.Key)

	wild, ok := rules.Rule("300", "c")
	require.True(t, ok)
	assert.Equal(t, "*$c", wild.Key)

	_, ok = rules.Rule("300", "a")
	assert.False(t, ok)
}

func TestLoadRules_OptionsOverride(t *testing.T) {
	options := `{"245$a": {"suffix": "!"}, "500$a": {"suffix": "."}}`

	rules, err := LoadRules([]byte(basePack), []byte(options))
	require.NoError(t, err)

	v := NewValidator()

	overridden := v.ValidateField("$a Title.", domain.FieldContext{Tag: "245"}, rules)
	require.Len(t, overridden.Findings, 1)
	assert.Equal(t, "Title!", overridden.Findings[0].ExpectedValue)

	a, _ := rules.Rule("245", "a")
	assert.Equal(t, domain.DocumentOptions, a.Source)
	assert.False(t, a.MustBeFirst, "override replaces the whole rule")

	b, ok := rules.Rule("245", "b")
	require.True(t, ok)
	assert.Equal(t, domain.DocumentRulePack, b.Source)

	_, ok = rules.Rule("500", "a")
	assert.True(t, ok)
}

func TestLoadRules_OptionsDisable(t *testing.T) {
	rules, err := LoadRules([]byte(basePack), []byte(`{"245$a": {"disabled": true}}`))
	require.NoError(t, err)

	res := NewValidator().ValidateField("$a Title", domain.FieldContext{Tag: "245"}, rules)
	assert.Empty(t, res.Findings)
}

func TestLoadRules_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pack    string
		options string
		doc     string
		key     string
	}{
		{"malformed pack", `{"245$a": `, ``, domain.DocumentRulePack, ""},
		{"malformed options", basePack, `{oops}`, domain.DocumentOptions, ""},
		{"pack is an array", `[1, 2]`, ``, domain.DocumentRulePack, ""},
		{"pack is null", `null`, `null`, domain.DocumentRulePack, ""},
		{"options is null", basePack, ` null `, domain.DocumentOptions, ""},
		{"rule not an object", `{"245$a": "."}`, ``, domain.DocumentRulePack, "245$a"},
		{"rule is null", `{"245$a": null}`, ``, domain.DocumentRulePack, "245$a"},
		{"bad rule key", `{"24$a": {"suffix": "."}}`, ``, domain.DocumentRulePack, "24$a"},
		{"bad check value", basePack, `{"245$a": {"suffix": 1}}`, domain.DocumentOptions, "245$a"},
		{"bad modifier", `{"245$a": {"repeatable": "no"}}`, ``, domain.DocumentRulePack, "245$a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := LoadRules([]byte(tt.pack), []byte(tt.options))
			require.Error(t, err)
			assert.Nil(t, rules)
			assert.True(t, errors.Is(err, domain.ErrParse))

			var perr *domain.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.doc, perr.Document)
			assert.Equal(t, tt.key, perr.Key)
			assert.Contains(t, err.Error(), tt.doc)
		})
	}
}

func TestLoadRules_BlankDocuments(t *testing.T) {
	rules, err := LoadRules([]byte("  "), []byte("\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, rules.Len())

	rules, err = LoadRules([]byte("{}"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, rules.Len())
}

func TestLoadRules_Idempotent(t *testing.T) {
	options := []byte(`{"245$b": {"preceded_by": " ="}}`)
	first, err := LoadRules([]byte(basePack), options)
	require.NoError(t, err)
	second, err := LoadRules([]byte(basePack), options)
	require.NoError(t, err)

	assert.Equal(t, first.Keys(), second.Keys())

	inputs := []string{"$a Title $b sub", "$a Title : $b sub.", "$b sub $a Title"}
	for _, in := range inputs {
		v1, v2 := NewValidator(), NewValidator()
		fctx := domain.FieldContext{Tag: "245"}
		assert.Equal(t, v1.ValidateField(in, fctx, first), v2.ValidateField(in, fctx, second))
		assert.Equal(t, v1.Warnings(), v2.Warnings())
	}
}

func TestLoader_CustomRegistry(t *testing.T) {
	registry := checks.NewRegistry()
	registry.Register(checks.PropSuffix, func(_ json.RawMessage, _ map[string]json.RawMessage) (domain.Check, error) {
		return checks.NewSuffix(";", false), nil
	})

	rules, err := NewLoader(registry).Load([]byte(basePack), nil)
	require.NoError(t, err)

	b, ok := rules.Rule("245", "b")
	require.True(t, ok)
	assert.Empty(t, b.Checks, "unregistered properties are ignored")

	a, ok := rules.Rule("245", "a")
	require.True(t, ok)
	require.Len(t, a.Checks, 1)
}

type staticSource struct {
	pack, options []byte
	err           error
}

func (s staticSource) ReadPack(context.Context) ([]byte, error)    { return s.pack, s.err }
func (s staticSource) ReadOptions(context.Context) ([]byte, error) { return s.options, nil }

func TestLoadRulesFromSource(t *testing.T) {
	ctx := context.Background()

	rules, err := LoadRulesFromSource(ctx, staticSource{
		pack:    []byte(basePack),
		options: []byte(`{"245$a": {"suffix": ";"}}`),
	})
	require.NoError(t, err)
	rule, ok := rules.Rule("245", "a")
	require.True(t, ok)
	assert.Equal(t, "options", rule.Source)

	readErr := errors.New("disk gone")
	_, err = LoadRulesFromSource(ctx, staticSource{err: readErr})
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "read rule pack")
}
