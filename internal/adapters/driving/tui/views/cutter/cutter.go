// Package cutter provides the live Cutter number preview for the TUI.
package cutter

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driving"
)

// Tags are the source field tags the view cycles through.
var Tags = []string{
	domain.TagPersonalName,
	domain.TagCorporateName,
	domain.TagMeetingName,
	domain.TagTitle,
}

// View previews the Cutter number of a heading as it is typed.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.CutterService
	heading *input.Field
	tagIdx  int
	parts   domain.NameParts
	cutter  string
	width   int
	height  int
}

// NewView creates a new Cutter view.
func NewView(s *styles.Styles, service driving.CutterService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		service: service,
		heading: input.NewField(s, "Heading", "Smith, John  or  The great war", 256),
		width:   80,
		height:  24,
	}
}

// Init focuses the heading input.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.heading.Focus(), v.heading.Init())
}

// Update handles messages for the Cutter view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && keymap.Matches(key.String(), v.keymap.NextTag) {
		v.tagIdx = (v.tagIdx + 1) % len(Tags)
		v.refresh()
		return v, nil
	}

	var cmd tea.Cmd
	v.heading, cmd = v.heading.Update(msg)
	v.refresh()
	return v, cmd
}

// refresh recomputes the preview from the current input.
func (v *View) refresh() {
	text := v.heading.Value()
	if v.service == nil || strings.TrimSpace(text) == "" {
		v.parts = domain.NameParts{}
		v.cutter = ""
		return
	}
	v.parts = v.service.Parse(text, v.Tag())
	v.cutter = v.service.Build(text, v.Tag())
}

// View renders the Cutter view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Cutter number"))
	b.WriteString("\n\n")
	b.WriteString(v.heading.View())
	b.WriteString("\n\n")

	b.WriteString(v.styles.Muted.Render("Tag: "))
	for i, tag := range Tags {
		if i == v.tagIdx {
			b.WriteString(v.styles.Selected.Render(" " + tag + " "))
		} else {
			b.WriteString(v.styles.Muted.Render(" " + tag + " "))
		}
	}
	b.WriteString("\n\n")

	switch {
	case strings.TrimSpace(v.heading.Value()) == "":
		b.WriteString(v.styles.Muted.Render("Type a heading to see its Cutter number"))
	case v.cutter == "":
		b.WriteString(v.styles.Warning.Render("No table entry matches this heading"))
	default:
		b.WriteString(v.styles.Cutter.Render(v.cutter))
	}
	b.WriteString("\n\n")

	if !v.parts.IsEmpty() {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("lastname: %s", v.parts.Lastname)))
		if v.parts.Firstname != "" {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("   firstname: %s", v.parts.Firstname)))
		}
		b.WriteString("\n")
	}
	if v.service != nil && v.service.TableSize() == 0 {
		b.WriteString(v.styles.Error.Render("No Cutter table loaded; see 'marcassist settings'"))
		b.WriteString("\n")
	}

	return b.String()
}

// Tag returns the selected source field tag.
func (v *View) Tag() string {
	return Tags[v.tagIdx]
}

// Cutter returns the current preview, or "" when nothing matches.
func (v *View) Cutter() string {
	return v.cutter
}

// Parts returns the parsed name parts of the current heading.
func (v *View) Parts() domain.NameParts {
	return v.parts
}

// Reset clears the input and preview.
func (v *View) Reset() {
	v.heading.Reset()
	v.refresh()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.heading.SetWidth(width)
}
