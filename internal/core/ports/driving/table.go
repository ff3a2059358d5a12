package driving

import (
	"context"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

// TableService moves Cutter tables between files and the local store.
type TableService interface {
	// Import replaces the stored table with the entries in the file at path.
	// Returns the number of entries imported.
	Import(ctx context.Context, path string) (int, error)

	// Export writes the stored table to the file at path.
	// Returns the number of entries written.
	Export(ctx context.Context, path string) (int, error)

	// Stats summarises the stored table.
	Stats(ctx context.Context) (domain.TableStats, error)
}
