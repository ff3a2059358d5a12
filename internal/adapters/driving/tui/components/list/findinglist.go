// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/marcassist/internal/core/domain"
)

// FindingList displays validation findings in a navigable list.
type FindingList struct {
	findings []domain.Finding
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewFindingList creates a new finding list component.
func NewFindingList(s *styles.Styles) *FindingList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &FindingList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *FindingList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *FindingList) Update(msg tea.Msg) (*FindingList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			l.MoveUp()
		case tea.KeyDown:
			l.MoveDown()
		default:
		}
	}
	return l, nil
}

// View renders the list.
func (l *FindingList) View() string {
	if len(l.findings) == 0 {
		return l.styles.Success.Render("Punctuation OK")
	}

	lines := make([]string, 0, len(l.findings)+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Findings (%d)", len(l.findings))), "")

	// Each finding takes one line
	visible := l.height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.findings) {
		end = len(l.findings)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderFinding(i, &l.findings[i]))
	}
	return strings.Join(lines, "\n")
}

func (l *FindingList) renderFinding(index int, f *domain.Finding) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	expected := f.ExpectedValue
	maxLen := l.width - 20
	if maxLen < 10 {
		maxLen = 10
	}
	if len(expected) > maxLen {
		expected = expected[:maxLen-3] + "..."
	}

	code := fmt.Sprintf("$%s #%d", f.Subfield, f.Index+1)
	if index == l.selected {
		return l.styles.Selected.Render(fmt.Sprintf("%s%-8s %s", indicator, code, expected))
	}
	return indicator + l.styles.Code.Render(fmt.Sprintf("%-8s", code)) + " " +
		l.styles.Normal.Render(expected) + l.styles.Muted.Render("  "+f.Rule)
}

// SetFindings replaces the list contents and resets the selection.
func (l *FindingList) SetFindings(findings []domain.Finding) {
	l.findings = findings
	l.selected = 0
}

// Findings returns the current findings.
func (l *FindingList) Findings() []domain.Finding {
	return l.findings
}

// Selected returns the index of the selected finding.
func (l *FindingList) Selected() int {
	return l.selected
}

// SelectedFinding returns the currently selected finding, or nil if none.
func (l *FindingList) SelectedFinding() *domain.Finding {
	if len(l.findings) == 0 {
		return nil
	}
	return &l.findings[l.selected]
}

// MoveUp moves selection up.
func (l *FindingList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *FindingList) MoveDown() {
	if l.selected < len(l.findings)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *FindingList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of findings.
func (l *FindingList) Count() int {
	return len(l.findings)
}
