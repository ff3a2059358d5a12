package punctuation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driven"
	"github.com/custodia-labs/marcassist/internal/punctuation/checks"
)

// Rule object modifiers read by the loader rather than the check registry.
const (
	propDisabled    = "disabled"
	propRepeatable  = "repeatable"
	propMustBeFirst = "must_be_first"
)

var errNotObject = errors.New("top level is not a JSON object")

// ruleKeyPattern matches "245$a" and "*$6".
var ruleKeyPattern = regexp.MustCompile(`^(\d{3}|\*)\$([a-z0-9])$`)

// Loader compiles rule packs using a check registry.
type Loader struct {
	registry *checks.Registry
}

// NewLoader creates a loader. A nil registry uses the built-in checks.
func NewLoader(registry *checks.Registry) *Loader {
	if registry == nil {
		registry = checks.Default()
	}
	return &Loader{registry: registry}
}

var defaultLoader = NewLoader(nil)

// LoadRules compiles pack with options merged over it using the built-in checks.
func LoadRules(pack, options []byte) (*domain.RuleSet, error) {
	return defaultLoader.Load(pack, options)
}

// LoadRulesFromSource reads both documents from src and compiles them
// using the built-in checks.
func LoadRulesFromSource(ctx context.Context, src driven.RulePackSource) (*domain.RuleSet, error) {
	return defaultLoader.LoadFromSource(ctx, src)
}

// LoadFromSource reads both documents from src and compiles them.
func (l *Loader) LoadFromSource(ctx context.Context, src driven.RulePackSource) (*domain.RuleSet, error) {
	pack, err := src.ReadPack(ctx)
	if err != nil {
		return nil, fmt.Errorf("read rule pack: %w", err)
	}
	options, err := src.ReadOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("read rule options: %w", err)
	}
	return l.Load(pack, options)
}

// Load compiles pack with options merged over it.
// Malformed documents fail with a *domain.ParseError naming the document.
func (l *Loader) Load(pack, options []byte) (*domain.RuleSet, error) {
	base, err := decodeDocument(domain.DocumentRulePack, pack)
	if err != nil {
		return nil, err
	}
	overlay, err := decodeDocument(domain.DocumentOptions, options)
	if err != nil {
		return nil, err
	}

	baseRules, baseExtra, err := l.compileDocument(domain.DocumentRulePack, base)
	if err != nil {
		return nil, err
	}
	overRules, overExtra, err := l.compileDocument(domain.DocumentOptions, overlay)
	if err != nil {
		return nil, err
	}

	return domain.NewRuleSet(
		mergeRules(baseRules, overRules),
		mergeRaw(baseExtra, overExtra),
	), nil
}

// decodeDocument parses a JSON object. Blank input is an empty object.
func decodeDocument(name string, data []byte) (map[string]json.RawMessage, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &domain.ParseError{Document: name, Err: err}
	}
	if doc == nil {
		return nil, &domain.ParseError{Document: name, Err: errNotObject}
	}
	return doc, nil
}

// compileDocument splits a document into compiled rules and extra values.
func (l *Loader) compileDocument(name string, doc map[string]json.RawMessage) (
	map[string]domain.PunctuationRule, map[string]json.RawMessage, error,
) {
	rules := make(map[string]domain.PunctuationRule)
	extra := make(map[string]json.RawMessage)

	for _, key := range sortedKeys(doc) {
		if !strings.Contains(key, "$") {
			extra[key] = doc[key]
			continue
		}
		rule, err := l.compileRule(key, doc[key])
		if err != nil {
			return nil, nil, &domain.ParseError{Document: name, Key: key, Err: err}
		}
		rule.Source = name
		rules[key] = rule
	}
	return rules, extra, nil
}

// compileRule builds one rule from its key and JSON object.
func (l *Loader) compileRule(key string, raw json.RawMessage) (domain.PunctuationRule, error) {
	m := ruleKeyPattern.FindStringSubmatch(key)
	if m == nil {
		return domain.PunctuationRule{}, errors.New("rule key must look like 245$a or *$a")
	}

	var props map[string]json.RawMessage
	if err := json.Unmarshal(raw, &props); err != nil || props == nil {
		return domain.PunctuationRule{}, errors.New("rule must be a JSON object")
	}

	rule := domain.PunctuationRule{
		Key:        key,
		Tag:        m[1],
		Subfield:   m[2],
		Repeatable: true,
	}
	if err := decodeBool(props, propDisabled, &rule.Disabled); err != nil {
		return domain.PunctuationRule{}, err
	}
	if err := decodeBool(props, propRepeatable, &rule.Repeatable); err != nil {
		return domain.PunctuationRule{}, err
	}
	if err := decodeBool(props, propMustBeFirst, &rule.MustBeFirst); err != nil {
		return domain.PunctuationRule{}, err
	}

	for _, name := range l.registry.Names() {
		value, ok := props[name]
		if !ok {
			continue
		}
		check, err := l.registry.Build(name, value, props)
		if err != nil {
			return domain.PunctuationRule{}, err
		}
		rule.Checks = append(rule.Checks, check)
	}
	return rule, nil
}

// decodeBool reads an optional boolean property into dst.
func decodeBool(props map[string]json.RawMessage, name string, dst *bool) error {
	raw, ok := props[name]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// mergeRules overlays over on base key by key. Keys are visited in sorted
// order so the resulting slice is stable.
func mergeRules(base, over map[string]domain.PunctuationRule) []domain.PunctuationRule {
	merged := make(map[string]domain.PunctuationRule, len(base)+len(over))
	for k, r := range base {
		merged[k] = r
	}
	for k, r := range over {
		merged[k] = r
	}

	out := make([]domain.PunctuationRule, 0, len(merged))
	for _, k := range sortedKeys(merged) {
		out = append(out, merged[k])
	}
	return out
}

// mergeRaw overlays over on base key by key.
func mergeRaw(base, over map[string]json.RawMessage) map[string]json.RawMessage {
	merged := make(map[string]json.RawMessage, len(base)+len(over))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range over {
		merged[k] = v
	}
	return merged
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
