package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marcassist/internal/core/domain"
	coresvc "github.com/custodia-labs/marcassist/internal/core/services"
)

func TestRootCmd_BootstrapRunsOnce(t *testing.T) {
	var got GlobalOptions
	cleaned := false
	SetBootstrap(func(_ context.Context, opts GlobalOptions) (*Services, func(), error) {
		got = opts
		return &Services{
			Cutter: coresvc.NewCutterService(domain.NewCutterTable(testEntries()), domain.CutterOptions{}),
		}, func() { cleaned = true }, nil
	})
	defer func() {
		SetBootstrap(nil)
		SetServices(nil)
	}()

	out, err := execute(t, "", "--config", "/tmp/marcassist-test", "-v", "cutter", "build", "Smith")

	require.NoError(t, err)
	assert.Contains(t, out, ".S655")
	assert.Equal(t, "/tmp/marcassist-test", got.ConfigPath)
	assert.True(t, got.Verbose)
	assert.True(t, cleaned, "cleanup runs after the command")
}

func TestRootCmd_CleanupRunsWhenCommandFails(t *testing.T) {
	punctuation := coresvc.NewPunctuationService(nil)
	_, err := punctuation.LoadRules([]byte(testPack), nil)
	require.NoError(t, err)

	cleaned := false
	SetBootstrap(func(context.Context, GlobalOptions) (*Services, func(), error) {
		return &Services{Punctuation: punctuation}, func() { cleaned = true }, nil
	})
	defer func() {
		SetBootstrap(nil)
		SetServices(nil)
	}()

	_, err = execute(t, "", "validate", "$aTitle", "--strict")

	assert.ErrorIs(t, err, errFindings)
	assert.True(t, cleaned, "cleanup runs after a failing command")
}

func TestRootCmd_BootstrapError(t *testing.T) {
	SetBootstrap(func(context.Context, GlobalOptions) (*Services, func(), error) {
		return nil, nil, errors.New("config unreadable")
	})
	defer SetBootstrap(nil)

	_, err := execute(t, "", "cutter", "build", "Smith")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialise: config unreadable")
}

func TestRootCmd_NoServices(t *testing.T) {
	_, err := execute(t, "", "cutter", "build", "Smith")

	assert.ErrorIs(t, err, errNotConfigured)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(new(bytes.Buffer)))
}

func TestLongRunningCommands_RequireServices(t *testing.T) {
	for _, args := range [][]string{{"mcp", "serve"}, {"tui"}} {
		_, err := execute(t, "", args...)
		assert.ErrorIs(t, err, errNotConfigured, args)
	}
}
