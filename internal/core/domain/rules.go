package domain

import (
	"encoding/json"
	"sort"
)

// WildcardTag matches any field tag in a rule key.
const WildcardTag = "*"

// RuleKey builds the "TAG$c" key used in rule packs.
func RuleKey(tag, code string) string {
	return tag + "$" + code
}

// Correction is a replacement value proposed for one subfield occurrence.
type Correction struct {
	// Index is the position of the subfield that must change.
	Index int

	// Value is the corrected subfield value.
	Value string
}

// Outcome is the result of applying a Check to one subfield occurrence.
type Outcome struct {
	// Mismatch is true when Correction holds an expected value.
	Mismatch bool

	Correction Correction

	// Anomaly describes structurally odd input the check could not judge.
	Anomaly string
}

// Check inspects one subfield occurrence of a field.
type Check interface {
	// Name returns the rule property the check was compiled from.
	Name() string

	// Apply checks the subfield at index.
	Apply(field *Field, index int) Outcome
}

// PunctuationRule is the compiled rule for one (tag, subfield) key.
type PunctuationRule struct {
	Key      string
	Tag      string
	Subfield string

	// Checks run in order against each occurrence.
	Checks []Check

	// Disabled rules are kept in the set but never applied.
	Disabled bool

	// Repeatable is false when a second occurrence is an anomaly.
	Repeatable bool

	// MustBeFirst is true when the subfield may only open the field.
	MustBeFirst bool

	// Source names the document the rule came from.
	Source string
}

// RuleSet is an immutable compiled rule pack.
type RuleSet struct {
	rules map[string]PunctuationRule
	extra map[string]json.RawMessage
}

// NewRuleSet builds a rule set. Later rules with the same key replace
// earlier ones.
func NewRuleSet(rules []PunctuationRule, extra map[string]json.RawMessage) *RuleSet {
	rs := &RuleSet{
		rules: make(map[string]PunctuationRule, len(rules)),
		extra: make(map[string]json.RawMessage, len(extra)),
	}
	for _, r := range rules {
		rs.rules[r.Key] = r
	}
	for k, v := range extra {
		rs.extra[k] = v
	}
	return rs
}

// Rule resolves the rule for a subfield. An exact tag match wins over a
// wildcard rule.
func (rs *RuleSet) Rule(tag, code string) (PunctuationRule, bool) {
	if rs == nil {
		return PunctuationRule{}, false
	}
	if r, ok := rs.rules[RuleKey(tag, code)]; ok {
		return r, true
	}
	r, ok := rs.rules[RuleKey(WildcardTag, code)]
	return r, ok
}

// Keys returns all rule keys in sorted order.
func (rs *RuleSet) Keys() []string {
	if rs == nil {
		return nil
	}
	keys := make([]string, 0, len(rs.rules))
	for k := range rs.rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of compiled rules.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Extra returns a raw top-level value that is not a rule, such as a pack name.
func (rs *RuleSet) Extra(key string) (json.RawMessage, bool) {
	if rs == nil {
		return nil, false
	}
	v, ok := rs.extra[key]
	return v, ok
}
