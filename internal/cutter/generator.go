package cutter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

// Generator produces Cutter numbers from a table.
type Generator struct {
	table    *domain.CutterTable
	defaults domain.CutterOptions
}

// Option configures the generator defaults used by Build.
type Option func(*Generator)

// WithSuffix sets the suffix appended by Build.
func WithSuffix(suffix string) Option {
	return func(g *Generator) {
		g.defaults.Suffix = suffix
	}
}

// WithFoldDiacritics enables accent folding for Build.
func WithFoldDiacritics(fold bool) Option {
	return func(g *Generator) {
		g.defaults.FoldDiacritics = fold
	}
}

// New creates a generator over table. A nil table behaves as empty.
func New(table *domain.CutterTable, opts ...Option) *Generator {
	if table == nil {
		table = domain.NewCutterTable(nil)
	}

	g := &Generator{table: table}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Table returns the table the generator reads from.
func (g *Generator) Table() *domain.CutterTable {
	return g.table
}

// Defaults returns the options Build applies.
func (g *Generator) Defaults() domain.CutterOptions {
	return g.defaults
}

// Build parses raw for tag and generates its Cutter number, prefixed with
// a single separator. It returns "" when no usable surname is found.
func (g *Generator) Build(raw, tag string) string {
	parts := Parse(raw, tag)
	result := g.Generate(parts.Lastname, parts.Firstname, g.defaults)
	if result == "" {
		return ""
	}
	if !strings.HasPrefix(result, domain.CutterPrefix) {
		result = domain.CutterPrefix + result
	}
	return result
}

// Generate looks the name up in the table and formats the Cutter number
// without a separator. It returns "" when the lastname is empty after
// cleaning or when no table entry matches.
func (g *Generator) Generate(lastname, firstname string, opts domain.CutterOptions) string {
	last := clean(lastname, opts.FoldDiacritics)
	if last == "" {
		return ""
	}
	first := clean(firstname, opts.FoldDiacritics)

	digits, ok := g.lookupWithInitial(last, first)
	if !ok {
		digits, ok = g.lookupPrefix(last)
	}
	if !ok {
		return ""
	}

	return strings.ToUpper(last[:1]) + digits + opts.Suffix
}

// lookupWithInitial probes "last,x." from the given-name initial down to "a".
func (g *Generator) lookupWithInitial(last, first string) (string, bool) {
	if first == "" {
		return "", false
	}
	initial := first[0]
	if initial < 'a' || initial > 'z' {
		return "", false
	}

	for c := initial; c >= 'a'; c-- {
		if digits, ok := g.table.Lookup(last + "," + string(c) + "."); ok {
			return digits, true
		}
	}
	return "", false
}

// lookupPrefix probes last, then each shorter prefix of it.
func (g *Generator) lookupPrefix(last string) (string, bool) {
	for n := len(last); n > 0; n-- {
		if digits, ok := g.table.Lookup(last[:n]); ok {
			return digits, true
		}
	}
	return "", false
}

// stripAccents returns a fresh transformer; chained transformers hold
// state and must not be shared between goroutines.
func stripAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// clean lowercases s and keeps only ASCII word characters.
func clean(s string, fold bool) string {
	if fold {
		if folded, _, err := transform.String(stripAccents(), s); err == nil {
			s = folded
		}
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
