package punctuation

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

// fieldTerminator ends a field in MARC transmission format.
const fieldTerminator = "\x1e"

// ParseField splits input into its subfield sequence. Structural oddities
// are returned as warnings; parsing itself never fails.
func ParseField(input string, fctx domain.FieldContext) (domain.Field, []domain.Warning) {
	field := domain.Field{Tag: fctx.Tag}
	var warnings []domain.Warning

	input = strings.TrimSuffix(input, fieldTerminator)
	if strings.TrimSpace(input) == "" {
		return field, nil
	}

	delim := fctx.Delimiter
	if delim == 0 {
		delim = domain.DelimiterDollar
		if strings.ContainsRune(input, domain.DelimiterMARC) {
			delim = domain.DelimiterMARC
		}
	}

	chunks := strings.Split(input, string(delim))
	field.Leader = strings.TrimSpace(chunks[0])
	if field.Leader != "" && !isIndicators(field.Leader) {
		warnings = append(warnings, domain.Warning{
			Message: fmt.Sprintf("unexpected text before first subfield: %q", field.Leader),
			Tag:     fctx.Tag,
		})
	}

	for _, chunk := range chunks[1:] {
		if chunk == "" {
			warnings = append(warnings, domain.Warning{
				Message: "subfield delimiter without a code",
				Tag:     fctx.Tag,
			})
			continue
		}

		code, value := splitCode(chunk)
		if !isSubfieldCode(code) {
			warnings = append(warnings, domain.Warning{
				Message:  fmt.Sprintf("invalid subfield code %q", code),
				Tag:      fctx.Tag,
				Subfield: code,
			})
		}
		field.Subfields = append(field.Subfields, domain.Subfield{Code: code, Value: value})
	}

	if len(field.Subfields) == 0 {
		msg := "field has no subfields"
		if len(chunks) == 1 {
			msg = "field has no subfield delimiters"
		}
		warnings = append(warnings, domain.Warning{Message: msg, Tag: fctx.Tag})
	}
	return field, warnings
}

// splitCode takes the first rune of chunk as the code and trims the rest.
func splitCode(chunk string) (string, string) {
	for i := range chunk {
		if i > 0 {
			return chunk[:i], strings.TrimSpace(chunk[i:])
		}
	}
	return chunk, ""
}

func isSubfieldCode(code string) bool {
	if len(code) != 1 {
		return false
	}
	c := code[0]
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}

// isIndicators accepts up to two indicator positions: digits, blanks shown
// as '#' or '_', or spaces.
func isIndicators(s string) bool {
	if len(s) > 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c == '#' || c == '_' || c == ' ') {
			return false
		}
	}
	return true
}
