package checks

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

// DefaultReplace lists trailing punctuation replaced when a correction is built.
const DefaultReplace = ".,;:/="

// Rule object properties.
const (
	PropSuffix     = "suffix"
	PropPrecededBy = "preceded_by"
	PropOnlyLast   = "only_last"
	PropReplace    = "replace"
)

// RegisterDefaults registers all built-in checks with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(PropSuffix, buildSuffix)
	r.Register(PropPrecededBy, buildPrecededBy)
}

// Default returns a registry with the built-in checks.
func Default() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// buildSuffix creates a suffix check.
// Supported modifiers:
//   - only_last (bool): apply only to the final subfield (default: false)
//   - replace (string): trailing characters dropped before the suffix is added
func buildSuffix(value json.RawMessage, props map[string]json.RawMessage) (domain.Check, error) {
	suffix, err := punctuationValue(PropSuffix, value)
	if err != nil {
		return nil, err
	}

	var onlyLast bool
	if raw, ok := props[PropOnlyLast]; ok {
		if err := json.Unmarshal(raw, &onlyLast); err != nil {
			return nil, fmt.Errorf("%s: %w", PropOnlyLast, err)
		}
	}

	replace, err := replaceSet(props)
	if err != nil {
		return nil, err
	}

	return &Suffix{suffix: suffix, onlyLast: onlyLast, replace: replace}, nil
}

// buildPrecededBy creates a preceded_by check.
// Supported modifiers:
//   - replace (string): trailing characters dropped before the punctuation is added
func buildPrecededBy(value json.RawMessage, props map[string]json.RawMessage) (domain.Check, error) {
	punct, err := punctuationValue(PropPrecededBy, value)
	if err != nil {
		return nil, err
	}

	replace, err := replaceSet(props)
	if err != nil {
		return nil, err
	}

	return &PrecededBy{punctuation: punct, replace: replace}, nil
}

// punctuationValue decodes a non-empty string property.
func punctuationValue(name string, value json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	if s == "" {
		return "", fmt.Errorf("%s: %w", name, errors.New("must not be empty"))
	}
	return s, nil
}

// replaceSet reads the replace modifier, falling back to DefaultReplace.
func replaceSet(props map[string]json.RawMessage) (string, error) {
	raw, ok := props[PropReplace]
	if !ok {
		return DefaultReplace, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%s: %w", PropReplace, err)
	}
	return s, nil
}
