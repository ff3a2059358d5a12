package domain

import (
	"sort"
	"strings"
)

// CutterPrefix is the separator marker placed before a displayed Cutter number.
const CutterPrefix = "."

// CutterTable maps lookup keys to the digits of a Cutter number.
// Keys are lowercase surnames or "surname,i." for a given-name initial.
// A CutterTable is never modified after construction and is safe for
// concurrent reads.
type CutterTable struct {
	entries map[string]string
}

// NewCutterTable builds a table from entries. Keys are lowercased and
// trimmed; entries with an empty key or value are dropped.
func NewCutterTable(entries map[string]string) *CutterTable {
	t := &CutterTable{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		key := strings.ToLower(strings.TrimSpace(k))
		val := strings.TrimSpace(v)
		if key == "" || val == "" {
			continue
		}
		t.entries[key] = val
	}
	return t
}

// Lookup returns the digits stored for key.
func (t *CutterTable) Lookup(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (t *CutterTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Keys returns all keys in sorted order.
func (t *CutterTable) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns a copy of the table contents.
func (t *CutterTable) Entries() map[string]string {
	out := make(map[string]string, t.Len())
	if t == nil {
		return out
	}
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

// CutterOptions tunes Cutter generation.
type CutterOptions struct {
	// Suffix is appended verbatim to a generated Cutter number.
	Suffix string `json:"suffix,omitempty"`

	// FoldDiacritics strips accents before cleaning, so "Müller" is looked
	// up as "muller" rather than "mller".
	FoldDiacritics bool `json:"fold_diacritics,omitempty"`
}

// TableStats summarises a Cutter table.
type TableStats struct {
	Entries int `json:"entries"`

	// Initials counts entries by first letter of the key.
	Initials map[string]int `json:"initials"`

	// WithInitial counts "surname,i." keys.
	WithInitial int `json:"with_initial"`
}

// Stats summarises the table.
func (t *CutterTable) Stats() TableStats {
	stats := TableStats{Entries: t.Len(), Initials: make(map[string]int)}
	for _, key := range t.Keys() {
		stats.Initials[key[:1]]++
		if strings.Contains(key, ",") {
			stats.WithInitial++
		}
	}
	return stats
}
