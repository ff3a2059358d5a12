// Package mcp provides an MCP (Model Context Protocol) server adapter for
// marcassist. It lets AI assistants build Cutter numbers and check field
// punctuation while cataloguing.
package mcp

import "errors"

// ErrMissingCutterService is returned when the Cutter service is not provided.
var ErrMissingCutterService = errors.New("mcp: cutter service is required")

// ErrMissingPunctuationService is returned when the punctuation service is not provided.
var ErrMissingPunctuationService = errors.New("mcp: punctuation service is required")
