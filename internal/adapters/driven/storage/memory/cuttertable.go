package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driven"
)

// Ensure CutterTableStore implements the interfaces.
var (
	_ driven.CutterTableStore  = (*CutterTableStore)(nil)
	_ driven.CutterTableWriter = (*CutterTableStore)(nil)
)

// CutterTableStore holds Cutter table entries in memory.
type CutterTableStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewCutterTableStore creates a store seeded with a copy of entries.
func NewCutterTableStore(entries map[string]string) *CutterTableStore {
	s := &CutterTableStore{}
	_ = s.Replace(context.Background(), entries)
	return s
}

// Load returns an immutable snapshot of the entries.
func (s *CutterTableStore) Load(_ context.Context) (*domain.CutterTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.NewCutterTable(s.entries), nil
}

// Replace swaps the stored entries.
func (s *CutterTableStore) Replace(_ context.Context, entries map[string]string) error {
	copied := make(map[string]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = copied
	return nil
}
