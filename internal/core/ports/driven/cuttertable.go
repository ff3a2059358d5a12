package driven

import (
	"context"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

// CutterTableStore loads the Cutter table.
type CutterTableStore interface {
	// Load returns the complete table. Implementations may read from disk
	// or a database; the returned table is immutable.
	Load(ctx context.Context) (*domain.CutterTable, error)
}

// CutterTableWriter replaces the contents of a stored table.
type CutterTableWriter interface {
	// Replace swaps the stored entries for entries in one transaction.
	Replace(ctx context.Context, entries map[string]string) error
}

// CutterTableFile is a table that can be both read and replaced, such as a
// table file or the local database.
type CutterTableFile interface {
	CutterTableStore
	CutterTableWriter
}

// CutterTableOpener opens the table file at path. Unknown formats fail
// with domain.ErrUnsupportedType.
type CutterTableOpener func(path string) (CutterTableFile, error)
