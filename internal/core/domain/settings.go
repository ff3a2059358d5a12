package domain

import "fmt"

const unknownDescription = "Unknown"

// TableStore selects where the Cutter table is loaded from.
type TableStore string

// Available table stores.
const (
	// TableStoreFile reads a JSON, TOML or CSV table file.
	TableStoreFile TableStore = "file"

	// TableStoreSQLite reads the table imported into the local database.
	TableStoreSQLite TableStore = "sqlite"
)

// IsValid returns true if the table store is recognised.
func (s TableStore) IsValid() bool {
	switch s {
	case TableStoreFile, TableStoreSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s TableStore) String() string {
	return string(s)
}

// Description returns a human-readable description of the store.
func (s TableStore) Description() string {
	switch s {
	case TableStoreFile:
		return "Table file (JSON, TOML or CSV)"
	case TableStoreSQLite:
		return "Imported table (SQLite)"
	default:
		return unknownDescription
	}
}

// CutterSettings holds Cutter generation configuration.
type CutterSettings struct {
	// Store selects the table source.
	Store TableStore

	// TablePath is the table file used when Store is TableStoreFile.
	TablePath string

	// Suffix is appended to every generated Cutter number.
	Suffix string

	// FoldDiacritics strips accents before table lookup.
	FoldDiacritics bool
}

// Options converts the settings into generation options.
func (c CutterSettings) Options() CutterOptions {
	return CutterOptions{Suffix: c.Suffix, FoldDiacritics: c.FoldDiacritics}
}

// RulesSettings holds punctuation rule pack configuration.
type RulesSettings struct {
	// PackPath is the base rule pack JSON file.
	PackPath string

	// OptionsPath is the optional overlay merged over the pack.
	OptionsPath string

	// Watch reloads the rule set when either file changes.
	Watch bool
}

// IsConfigured returns true if a rule pack path is set.
func (r RulesSettings) IsConfigured() bool {
	return r.PackPath != ""
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Cutter holds Cutter number settings.
	Cutter CutterSettings

	// Rules holds rule pack settings.
	Rules RulesSettings

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultAppSettings returns settings with sensible defaults.
// No table or rule pack is configured by default.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Cutter: CutterSettings{
			Store: TableStoreFile,
		},
		Rules: RulesSettings{},
	}
}

// Validate checks that the settings are internally consistent.
func (s *AppSettings) Validate() error {
	if !s.Cutter.Store.IsValid() {
		return fmt.Errorf("%w: table store %q", ErrInvalidInput, s.Cutter.Store)
	}
	if s.Rules.OptionsPath != "" && s.Rules.PackPath == "" {
		return fmt.Errorf("%w: rules options set without a rule pack", ErrInvalidInput)
	}
	return nil
}

// AllTableStores returns all available table stores.
func AllTableStores() []TableStore {
	return []TableStore{
		TableStoreFile,
		TableStoreSQLite,
	}
}
