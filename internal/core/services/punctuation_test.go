package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

const testPack = `{
	"245$a": {"suffix": "."},
	"245$b": {"preceded_by": " :"}
}`

// fakeRuleSource is a RulePackSource and RulePackWatcher driven by the test.
type fakeRuleSource struct {
	mu      sync.Mutex
	pack    []byte
	options []byte
	err     error
	changes chan struct{}
}

func newFakeRuleSource(pack string) *fakeRuleSource {
	return &fakeRuleSource{pack: []byte(pack), changes: make(chan struct{})}
}

func (f *fakeRuleSource) set(pack string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pack = []byte(pack)
	f.err = err
}

func (f *fakeRuleSource) ReadPack(context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pack, f.err
}

func (f *fakeRuleSource) ReadOptions(context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.options, nil
}

func (f *fakeRuleSource) Watch(ctx context.Context, onChange func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-f.changes:
			onChange()
		}
	}
}

func TestPunctuationService_NoRules(t *testing.T) {
	service := NewPunctuationService(nil)

	result, err := service.ValidateField("\x1faTitle", domain.FieldContext{Tag: "245"})

	assert.ErrorIs(t, err, domain.ErrRulesUnavailable)
	assert.NotNil(t, result.Findings)
	assert.Nil(t, service.Rules())
	assert.ErrorIs(t, service.Reload(context.Background()), domain.ErrRulesUnavailable)
	assert.ErrorIs(t, service.Watch(context.Background()), domain.ErrUnsupportedType)
}

func TestPunctuationService_LoadAndValidate(t *testing.T) {
	service := NewPunctuationService(nil)

	rules, err := service.LoadRules([]byte(testPack), nil)
	require.NoError(t, err)
	assert.Same(t, rules, service.Rules())

	result, err := service.ValidateField("\x1faTitle without period", domain.FieldContext{Tag: "245"})
	require.NoError(t, err)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "a", result.Findings[0].Subfield)
	assert.Equal(t, "Title without period.", result.Findings[0].ExpectedValue)

	result, err = service.ValidateField("\x1faTitle.", domain.FieldContext{Tag: "245"})
	require.NoError(t, err)
	assert.Empty(t, result.Findings)
}

func TestPunctuationService_LoadRulesParseError(t *testing.T) {
	service := NewPunctuationService(nil)
	_, err := service.LoadRules([]byte(testPack), nil)
	require.NoError(t, err)
	before := service.Rules()

	_, err = service.LoadRules([]byte(`{"245$a": `), nil)

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, domain.DocumentRulePack, parseErr.Document)
	assert.Same(t, before, service.Rules(), "failed load keeps the active rules")
}

func TestPunctuationService_Reload(t *testing.T) {
	ctx := context.Background()
	source := newFakeRuleSource(testPack)
	service := NewPunctuationService(source)

	require.NoError(t, service.Reload(ctx))
	assert.Equal(t, 2, service.Rules().Len())

	readErr := errors.New("gone")
	source.set(testPack, readErr)
	err := service.Reload(ctx)
	assert.ErrorIs(t, err, readErr)
	assert.Equal(t, 2, service.Rules().Len())
}

func TestPunctuationService_SessionsShareRulesNotWarnings(t *testing.T) {
	service := NewPunctuationService(nil)
	_, err := service.LoadRules([]byte(testPack), nil)
	require.NoError(t, err)

	other := service.NewSession()

	_, err = service.ValidateField("no delimiters here", domain.FieldContext{Tag: "245"})
	require.NoError(t, err)

	assert.NotEmpty(t, service.Warnings())
	assert.Empty(t, other.Warnings())
	assert.Same(t, service.Rules(), other.Rules())

	_, err = other.LoadRules([]byte(`{"245$a": {"suffix": ";"}}`), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, service.Rules().Len(), "rule changes are visible to every session")

	drained := service.DrainWarnings()
	assert.NotEmpty(t, drained)
	assert.Empty(t, service.Warnings())
	assert.NotEqual(t, service.SessionID(), other.SessionID())
}

func TestPunctuationService_Watch(t *testing.T) {
	source := newFakeRuleSource(testPack)
	service := NewPunctuationService(source)
	require.NoError(t, service.Reload(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- service.Watch(ctx) }()

	// A broken pack is ignored.
	source.set(`{"245$a": 1}`, nil)
	source.changes <- struct{}{}
	assert.Equal(t, 2, service.Rules().Len())

	source.set(`{"245$a": {"suffix": "."}}`, nil)
	source.changes <- struct{}{}
	assert.Eventually(t, func() bool { return service.Rules().Len() == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestPunctuationService_CheckRulesDoesNotActivate(t *testing.T) {
	service := NewPunctuationService(nil)

	rules, err := service.CheckRules([]byte(testPack), []byte(`{"245$c": {"suffix": "."}}`))
	require.NoError(t, err)
	assert.Equal(t, 3, rules.Len())
	assert.Nil(t, service.Rules())

	_, err = service.CheckRules([]byte(testPack), []byte(`[1]`))
	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, domain.DocumentOptions, parseErr.Document)
}
