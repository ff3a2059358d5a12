package rulepack

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driven"
)

// Ensure FileSource implements the interfaces.
var (
	_ driven.RulePackSource  = (*FileSource)(nil)
	_ driven.RulePackWatcher = (*FileSource)(nil)
)

// FileSource reads the rule pack and an optional options overlay from files.
type FileSource struct {
	packPath    string
	optionsPath string
	opts        watchOptions
}

// NewFileSource creates a source. optionsPath may be empty.
func NewFileSource(packPath, optionsPath string, opts ...WatchOption) (*FileSource, error) {
	if packPath == "" {
		return nil, fmt.Errorf("%w: rule pack path is required", domain.ErrInvalidInput)
	}
	s := &FileSource{
		packPath:    packPath,
		optionsPath: optionsPath,
		opts:        defaultWatchOptions(),
	}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s, nil
}

// PackPath returns the rule pack path.
func (s *FileSource) PackPath() string {
	return s.packPath
}

// OptionsPath returns the options overlay path, or "".
func (s *FileSource) OptionsPath() string {
	return s.optionsPath
}

// ReadPack returns the rule pack contents.
func (s *FileSource) ReadPack(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.packPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRulesUnavailable, s.packPath)
	}
	return data, err
}

// ReadOptions returns the overlay contents. A missing or unset overlay
// reads as nil.
func (s *FileSource) ReadOptions(_ context.Context) ([]byte, error) {
	if s.optionsPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(s.optionsPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}
