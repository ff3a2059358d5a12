package domain

// Subfield delimiters understood by the field parser.
const (
	// DelimiterMARC is the MARC 21 subfield delimiter (unit separator).
	DelimiterMARC = '\x1f'

	// DelimiterDollar is the display convention used by most editors.
	DelimiterDollar = '$'
)

// Subfield is one coded component of a field.
type Subfield struct {
	Code  string `json:"code"`
	Value string `json:"value"`
}

// Field is a bibliographic field split into its subfield sequence.
type Field struct {
	Tag string `json:"tag"`

	// Leader holds any text before the first delimiter, usually indicators.
	Leader string `json:"leader,omitempty"`

	Subfields []Subfield `json:"subfields"`
}

// IsLast returns true if index is the final subfield.
func (f *Field) IsLast(index int) bool {
	return index == len(f.Subfields)-1
}

// FieldContext describes the field being validated.
type FieldContext struct {
	// Tag is the field tag, e.g. "245".
	Tag string `json:"tag"`

	// Delimiter precedes each subfield code. Zero means autodetect:
	// DelimiterMARC when present in the input, DelimiterDollar otherwise.
	Delimiter rune `json:"delimiter,omitempty"`
}
