// Package tui provides an interactive terminal workbench for marcassist.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/marcassist/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Cutter builds Cutter numbers for the live preview.
	Cutter driving.CutterService

	// Punctuation validates fields. The TUI opens its own session.
	Punctuation driving.PunctuationService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(cutter driving.CutterService, punctuation driving.PunctuationService) *Ports {
	return &Ports{
		Cutter:      cutter,
		Punctuation: punctuation,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Cutter == nil {
		return ErrMissingCutterService
	}
	if p.Punctuation == nil {
		return ErrMissingPunctuationService
	}
	return nil
}
