// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the menu.
	Back key.Binding

	// Up and Down navigate lists.
	Up   key.Binding
	Down key.Binding

	// Select confirms a menu entry.
	Select key.Binding

	// NextTag cycles the source field tag.
	NextTag key.Binding

	// NextInput moves focus between inputs.
	NextInput key.Binding

	// Validate checks the current field.
	Validate key.Binding

	// Reload re-reads the rule pack.
	Reload key.Binding

	// ClearWarnings empties the session warnings.
	ClearWarnings key.Binding
}

// DefaultKeyMap returns the default keybindings.
// Views with text inputs only react to control keys.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?/f1", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		NextTag: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "next tag"),
		),
		NextInput: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch input"),
		),
		Validate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "validate"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload rules"),
		),
		ClearWarnings: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear warnings"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// CutterHelp returns keybindings for the Cutter view.
func (k *KeyMap) CutterHelp() []key.Binding {
	return []key.Binding{k.NextTag, k.Back}
}

// ValidateHelp returns keybindings for the validation view.
func (k *KeyMap) ValidateHelp() []key.Binding {
	return []key.Binding{k.Validate, k.NextInput, k.Reload, k.ClearWarnings, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.NextTag, k.NextInput, k.Validate},
		{k.Reload, k.ClearWarnings},
		{k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
