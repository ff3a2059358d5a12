package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/styles"
)

var errNotConfigured = errors.New("services not configured")

// requireServices returns the wired services or an error.
func requireServices() (*Services, error) {
	if services == nil {
		return nil, errNotConfigured
	}
	return services, nil
}

// printer renders command output, styled only on a terminal.
type printer struct {
	cmd    *cobra.Command
	styles *styles.Styles
	styled bool
}

func newPrinter(cmd *cobra.Command) *printer {
	return &printer{
		cmd:    cmd,
		styles: styles.DefaultStyles(),
		styled: isTerminal(cmd.OutOrStdout()),
	}
}

func (p *printer) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

func (p *printer) heading(s string) {
	p.cmd.Println(p.render(p.styles.Title, s))
}

func (p *printer) ok(format string, args ...any) {
	p.cmd.Println(p.render(p.styles.Success, fmt.Sprintf(format, args...)))
}

func (p *printer) warn(format string, args ...any) {
	p.cmd.Println(p.render(p.styles.Warning, fmt.Sprintf(format, args...)))
}

func (p *printer) problem(format string, args ...any) {
	p.cmd.Println(p.render(p.styles.Error, fmt.Sprintf(format, args...)))
}

func (p *printer) muted(format string, args ...any) {
	p.cmd.Println(p.render(p.styles.Muted, fmt.Sprintf(format, args...)))
}

// printJSON writes v as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
