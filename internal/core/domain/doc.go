// Package domain defines the core cataloguing entities for marcassist.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CutterTable: The immutable alphabetic table behind Cutter numbers
//   - NameParts: A parsed (lastname, firstname) pair
//   - Field, Subfield: A bibliographic field split into coded subfields
//   - RuleSet, PunctuationRule: A compiled punctuation rule pack
//   - Finding, Warning: Validation output
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
