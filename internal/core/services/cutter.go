package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driven"
	"github.com/custodia-labs/marcassist/internal/core/ports/driving"
	"github.com/custodia-labs/marcassist/internal/cutter"
	"github.com/custodia-labs/marcassist/internal/logger"
)

// Ensure CutterService implements the interface.
var _ driving.CutterService = (*CutterService)(nil)

// CutterService generates Cutter numbers from a loaded table.
type CutterService struct {
	generator *cutter.Generator
}

// NewCutterService creates a Cutter service over an in-memory table.
// A nil table is treated as empty; every lookup then returns "".
func NewCutterService(table *domain.CutterTable, opts domain.CutterOptions) *CutterService {
	return &CutterService{
		generator: cutter.New(table,
			cutter.WithSuffix(opts.Suffix),
			cutter.WithFoldDiacritics(opts.FoldDiacritics),
		),
	}
}

// LoadCutterService loads the table from store and creates the service.
// A nil store yields a service with an empty table.
func LoadCutterService(ctx context.Context, store driven.CutterTableStore, opts domain.CutterOptions) (*CutterService, error) {
	if store == nil {
		logger.Warn("Cutter table store not configured, lookups will return no results")
		return NewCutterService(nil, opts), nil
	}

	table, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cutter table: %w", err)
	}
	logger.Info("Cutter table loaded: %d entries", table.Len())

	return NewCutterService(table, opts), nil
}

// Build parses text and returns the prefixed Cutter number.
func (s *CutterService) Build(text, tag string) string {
	logger.Section("Cutter Build")
	parts := cutter.Parse(text, tag)
	logger.Debug("Tag %q parsed %q as lastname=%q firstname=%q", tag, text, parts.Lastname, parts.Firstname)

	result := s.generator.Build(text, tag)
	if result == "" {
		logger.Debug("No table entry for %q", parts.Lastname)
	} else {
		logger.Info("Cutter: %s", result)
	}
	return result
}

// Generate returns the Cutter number for explicit name parts.
func (s *CutterService) Generate(lastname, firstname string, opts domain.CutterOptions) string {
	result := s.generator.Generate(lastname, firstname, opts)
	logger.Debug("Generate lastname=%q firstname=%q suffix=%q: %q", lastname, firstname, opts.Suffix, result)
	return result
}

// Parse splits text into name parts.
func (s *CutterService) Parse(text, tag string) domain.NameParts {
	return cutter.Parse(text, tag)
}

// TableSize returns the number of entries in the table.
func (s *CutterService) TableSize() int {
	return s.generator.Table().Len()
}

// Defaults returns the options Build applies.
func (s *CutterService) Defaults() domain.CutterOptions {
	return s.generator.Defaults()
}
