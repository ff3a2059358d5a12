package mcp

import (
	"github.com/custodia-labs/marcassist/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server calls into.
type Ports struct {
	// Cutter builds Cutter numbers.
	Cutter driving.CutterService

	// Punctuation validates fields. The server opens its own session.
	Punctuation driving.PunctuationService
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
