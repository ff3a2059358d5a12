// Package validate provides the field punctuation checker for the TUI.
package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driving"
)

// maxWarnings is how many warnings are rendered below the findings.
const maxWarnings = 5

// View checks the punctuation of a field typed by the user.
type View struct {
	ctx      context.Context
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	service  driving.PunctuationService
	field    *input.Field
	tag      *input.Field
	findings *list.FindingList
	warnings []domain.Warning
	checked  bool
	notice   string
	err      error
	width    int
	height   int
}

// NewView creates a new validation view over a punctuation session.
func NewView(s *styles.Styles, service driving.PunctuationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	tag := input.NewField(s, "Tag", "245", 3)
	tag.SetValue(domain.TagTitle)

	return &View{
		ctx:      context.Background(),
		styles:   s,
		keymap:   keymap.DefaultKeyMap(),
		service:  service,
		field:    input.NewField(s, "Field", "10$aTitle :$bsubtitle /$cauthor.", 0),
		tag:      tag,
		findings: list.NewFindingList(s),
		width:    80,
		height:   24,
	}
}

// WithContext sets the context used for rule reloads.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init focuses the field input.
func (v *View) Init() tea.Cmd {
	v.tag.Blur()
	return tea.Batch(v.field.Focus(), v.field.Init())
}

// Update handles messages for the validation view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ValidationCompleted:
		v.checked = msg.Err == nil
		v.err = msg.Err
		v.notice = ""
		v.findings.SetFindings(msg.Result.Findings)
		v.warnings = msg.Warnings
		return v, nil

	case messages.RulesReloaded:
		v.err = msg.Err
		if msg.Err == nil {
			v.notice = fmt.Sprintf("Reloaded %d rules", msg.Rules)
		}
		return v, nil

	case messages.WarningsCleared:
		v.warnings = nil
		v.notice = fmt.Sprintf("Cleared %d warnings", msg.Count)
		return v, nil

	case tea.KeyMsg:
		switch {
		case keymap.Matches(msg.String(), v.keymap.Validate):
			return v, v.validate()
		case keymap.Matches(msg.String(), v.keymap.NextInput):
			return v, v.switchInput()
		case keymap.Matches(msg.String(), v.keymap.Reload):
			return v, v.reload()
		case keymap.Matches(msg.String(), v.keymap.ClearWarnings):
			return v, v.clearWarnings()
		case msg.Type == tea.KeyUp || msg.Type == tea.KeyDown:
			// j and k stay with the inputs
			v.findings, _ = v.findings.Update(msg)
			return v, nil
		}
	}

	var cmd tea.Cmd
	if v.tag.Focused() {
		v.tag, cmd = v.tag.Update(msg)
	} else {
		v.field, cmd = v.field.Update(msg)
	}
	return v, cmd
}

func (v *View) switchInput() tea.Cmd {
	if v.field.Focused() {
		v.field.Blur()
		return v.tag.Focus()
	}
	v.tag.Blur()
	return v.field.Focus()
}

func (v *View) validate() tea.Cmd {
	if v.service == nil {
		return nil
	}
	text := v.field.Value()
	fctx := domain.FieldContext{Tag: strings.TrimSpace(v.tag.Value())}
	service := v.service

	return func() tea.Msg {
		result, err := service.ValidateField(text, fctx)
		return messages.ValidationCompleted{
			Result:   result,
			Warnings: service.Warnings(),
			Err:      err,
		}
	}
}

func (v *View) reload() tea.Cmd {
	if v.service == nil {
		return nil
	}
	ctx, service := v.ctx, v.service
	return func() tea.Msg {
		err := service.Reload(ctx)
		return messages.RulesReloaded{Rules: service.Rules().Len(), Err: err}
	}
}

func (v *View) clearWarnings() tea.Cmd {
	if v.service == nil {
		return nil
	}
	service := v.service
	return func() tea.Msg {
		return messages.WarningsCleared{Count: len(service.DrainWarnings())}
	}
}

// View renders the validation view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Punctuation"))
	if v.service != nil {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %d rules", v.service.Rules().Len())))
	}
	b.WriteString("\n\n")
	b.WriteString(v.tag.View())
	b.WriteString("\n")
	b.WriteString(v.field.View())
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(describeError(v.err)))
	case v.checked:
		b.WriteString(v.findings.View())
	default:
		b.WriteString(v.styles.Muted.Render("Press enter to check the field"))
	}
	b.WriteString("\n")

	if v.notice != "" {
		b.WriteString("\n" + v.styles.Success.Render(v.notice) + "\n")
	}

	if len(v.warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Warnings (%d)", len(v.warnings))))
		b.WriteString("\n")
		shown := v.warnings
		if len(shown) > maxWarnings {
			shown = shown[len(shown)-maxWarnings:]
		}
		for _, w := range shown {
			b.WriteString(v.styles.Muted.Render("  " + formatWarning(w)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func describeError(err error) string {
	if errors.Is(err, domain.ErrRulesUnavailable) {
		return "No rule pack loaded; set rules.pack with 'marcassist settings set'"
	}
	return fmt.Sprintf("Error: %v", err)
}

func formatWarning(w domain.Warning) string {
	if w.Tag == "" {
		return w.Message
	}
	return fmt.Sprintf("%s$%s: %s", w.Tag, w.Subfield, w.Message)
}

// Findings returns the findings of the last check.
func (v *View) Findings() []domain.Finding {
	return v.findings.Findings()
}

// Warnings returns the warnings shown by the view.
func (v *View) Warnings() []domain.Warning {
	return v.warnings
}

// Err returns the last error, if any.
func (v *View) Err() error {
	return v.err
}

// TagFocused reports whether the tag input has focus.
func (v *View) TagFocused() bool {
	return v.tag.Focused()
}

// Reset clears the inputs and results. The tag keeps its value.
func (v *View) Reset() {
	v.field.Reset()
	v.findings.SetFindings(nil)
	v.warnings = nil
	v.checked = false
	v.notice = ""
	v.err = nil
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.field.SetWidth(width)
	v.tag.SetWidth(20)
	v.findings.SetDimensions(width, height-14)
}
