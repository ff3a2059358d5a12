package cutter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		tag  string
		want domain.NameParts
	}{
		{"empty input", "", "245", domain.NameParts{}},
		{"whitespace only", "   \t\n ", "700", domain.NameParts{}},
		{"punctuation only", "!!! ???", "700", domain.NameParts{}},

		{"personal name keeps first token", "Smith, John, 1950-", "100", domain.NameParts{Lastname: "Smith,"}},
		{"personal name ignores given name", "Austen Jane", "100", domain.NameParts{Lastname: "Austen"}},

		{"title skips definite article", "  The   Great War ", "245", domain.NameParts{Lastname: "Great", Firstname: "War"}},
		{"title skips indefinite article", "A tale of two cities", "245", domain.NameParts{Lastname: "tale", Firstname: "of"}},
		{"title skips an", "An Essay", "245", domain.NameParts{Lastname: "Essay"}},
		{"lone article is kept", "The", "245", domain.NameParts{Lastname: "The"}},
		{"article match is case insensitive", "THE END", "245", domain.NameParts{Lastname: "END"}},
		{"corporate name is title-like", "The Acme Corp.", "110", domain.NameParts{Lastname: "Acme", Firstname: "Corp"}},
		{"meeting name is title-like", "Congress on Cataloging", "111", domain.NameParts{Lastname: "Congress", Firstname: "on"}},

		{"inverted name", "Smith, John Q.", "700", domain.NameParts{Lastname: "Smith", Firstname: "John"}},
		{"inverted name keeps apostrophe", "O'Brien, Pat", "600", domain.NameParts{Lastname: "O'Brien", Firstname: "Pat"}},
		{"inverted name without given name", "Smith,", "700", domain.NameParts{Lastname: "Smith"}},

		{"natural order", "John Quincy Adams", "700", domain.NameParts{Lastname: "Adams", Firstname: "John"}},
		{"single token", "Plato", "700", domain.NameParts{Lastname: "Plato"}},
		{"unknown tag uses natural order", "Ada Lovelace", "", domain.NameParts{Lastname: "Lovelace", Firstname: "Ada"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw, tt.tag))
		})
	}
}

func TestTokenise(t *testing.T) {
	assert.Equal(t, []string{"Smith,", "J", "1950"}, tokenise("Smith, J. (1950-)"))
	assert.Empty(t, tokenise("-- . --"))
}

func TestNormalise(t *testing.T) {
	assert.Equal(t, "a b c", normalise("  a \t b\n\nc  "))
	assert.Equal(t, "", normalise(""))
}
