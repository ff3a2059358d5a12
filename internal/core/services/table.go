package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driven"
	"github.com/custodia-labs/marcassist/internal/core/ports/driving"
	"github.com/custodia-labs/marcassist/internal/logger"
)

// Ensure TableService implements the interface.
var _ driving.TableService = (*TableService)(nil)

// TableService imports and exports the stored Cutter table.
type TableService struct {
	store driven.CutterTableFile
	open  driven.CutterTableOpener
}

// NewTableService creates a table service over store, using open to reach
// table files.
func NewTableService(store driven.CutterTableFile, open driven.CutterTableOpener) *TableService {
	return &TableService{store: store, open: open}
}

// Import replaces the stored table with the file at path.
func (s *TableService) Import(ctx context.Context, path string) (int, error) {
	if s.store == nil {
		return 0, domain.ErrTableUnavailable
	}
	file, err := s.open(path)
	if err != nil {
		return 0, err
	}

	table, err := file.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("read table: %w", err)
	}
	if err := s.store.Replace(ctx, table.Entries()); err != nil {
		return 0, fmt.Errorf("store table: %w", err)
	}

	logger.Info("Imported %d cutter entries from %s", table.Len(), path)
	return table.Len(), nil
}

// Export writes the stored table to the file at path.
func (s *TableService) Export(ctx context.Context, path string) (int, error) {
	if s.store == nil {
		return 0, domain.ErrTableUnavailable
	}
	file, err := s.open(path)
	if err != nil {
		return 0, err
	}

	table, err := s.store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load table: %w", err)
	}
	if err := file.Replace(ctx, table.Entries()); err != nil {
		return 0, fmt.Errorf("write table: %w", err)
	}

	logger.Info("Exported %d cutter entries to %s", table.Len(), path)
	return table.Len(), nil
}

// Stats summarises the stored table.
func (s *TableService) Stats(ctx context.Context) (domain.TableStats, error) {
	if s.store == nil {
		return domain.TableStats{}, domain.ErrTableUnavailable
	}
	table, err := s.store.Load(ctx)
	if err != nil {
		return domain.TableStats{}, fmt.Errorf("load table: %w", err)
	}
	return table.Stats(), nil
}
