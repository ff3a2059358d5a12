// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/marcassist/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewCutter is the live Cutter number preview.
	ViewCutter
	// ViewValidate is the field punctuation checker.
	ViewValidate
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewCutter:
		return "cutter"
	case ViewValidate:
		return "validate"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ValidationCompleted carries the outcome of validating one field.
// Warnings is the session log after the call.
type ValidationCompleted struct {
	Result   domain.ValidationResult
	Warnings []domain.Warning
	Err      error
}

// RulesReloaded signals the rule pack was re-read.
type RulesReloaded struct {
	Rules int
	Err   error
}

// WarningsCleared signals the session warnings were emptied.
type WarningsCleared struct {
	Count int
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
