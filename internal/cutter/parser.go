package cutter

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

// articles are skipped at the start of title-like fields.
var articles = map[string]bool{
	"a":   true,
	"an":  true,
	"the": true,
}

// Parse splits raw into name parts according to the source field tag.
// Empty or unusable input yields empty parts.
func Parse(raw, tag string) domain.NameParts {
	text := normalise(raw)
	if text == "" {
		return domain.NameParts{}
	}

	switch {
	case tag == domain.TagPersonalName:
		return parseFirstWord(text)
	case domain.IsTitleLike(tag):
		return parseTitle(text)
	case strings.Contains(text, ","):
		return parseInverted(text)
	default:
		return parseNatural(text)
	}
}

// normalise collapses whitespace runs and trims.
func normalise(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// tokenise drops everything except letters, digits, commas and whitespace,
// then splits on whitespace.
func tokenise(text string) []string {
	kept := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ',' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
	return strings.Fields(kept)
}

// parseFirstWord keeps only the first token as the lastname.
// Personal-name entries are expected in inverted order already.
func parseFirstWord(text string) domain.NameParts {
	tokens := tokenise(text)
	if len(tokens) == 0 {
		return domain.NameParts{}
	}
	return domain.NameParts{Lastname: tokens[0]}
}

// parseTitle skips a leading article, then takes the next two tokens.
func parseTitle(text string) domain.NameParts {
	tokens := tokenise(text)
	if len(tokens) > 1 && articles[strings.ToLower(strings.Trim(tokens[0], ","))] {
		tokens = tokens[1:]
	}

	var parts domain.NameParts
	if len(tokens) > 0 {
		parts.Lastname = tokens[0]
	}
	if len(tokens) > 1 {
		parts.Firstname = tokens[1]
	}
	return parts
}

// parseInverted handles "Last, First ..." input.
func parseInverted(text string) domain.NameParts {
	before, after, _ := strings.Cut(text, ",")

	parts := domain.NameParts{Lastname: strings.TrimSpace(before)}
	if rest := strings.Fields(after); len(rest) > 0 {
		parts.Firstname = rest[0]
	}
	return parts
}

// parseNatural handles "First ... Last" input.
func parseNatural(text string) domain.NameParts {
	tokens := tokenise(text)
	switch len(tokens) {
	case 0:
		return domain.NameParts{}
	case 1:
		return domain.NameParts{Lastname: tokens[0]}
	default:
		return domain.NameParts{
			Lastname:  tokens[len(tokens)-1],
			Firstname: tokens[0],
		}
	}
}
