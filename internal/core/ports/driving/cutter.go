package driving

import "github.com/custodia-labs/marcassist/internal/core/domain"

// CutterService generates Cutter numbers.
type CutterService interface {
	// Build parses text for the source field tag and returns the Cutter
	// number with a leading separator, or "" when nothing matches.
	Build(text, tag string) string

	// Generate returns the Cutter number for name parts without a separator.
	Generate(lastname, firstname string, opts domain.CutterOptions) string

	// Parse splits text into name parts for the source field tag.
	Parse(text, tag string) domain.NameParts

	// TableSize returns the number of entries in the loaded table.
	TableSize() int
}
