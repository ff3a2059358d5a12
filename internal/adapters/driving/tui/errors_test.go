package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	errs := []error{ErrMissingCutterService, ErrMissingPunctuationService}

	for _, err := range errs {
		assert.True(t, strings.HasPrefix(err.Error(), "tui: "), err.Error())
	}
	assert.False(t, errors.Is(ErrMissingCutterService, ErrMissingPunctuationService))
}
