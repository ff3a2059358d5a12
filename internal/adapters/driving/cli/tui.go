package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive workbench",
	Long: `Launch the interactive terminal workbench.

The workbench previews Cutter numbers as you type a heading and checks
the punctuation of fields against the active rule pack.

Controls:
  ↑/k, ↓/j - Navigate the menu
  Enter    - Select / Validate
  Tab      - Switch between field and tag
  Ctrl+T   - Cycle the Cutter source tag
  Ctrl+R   - Reload the rule pack
  Ctrl+L   - Clear warnings
  Esc      - Back to menu
  F1       - Help
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	s, err := requireServices()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(s.Cutter, s.Punctuation))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	startRuleWatch(ctx, s)

	if err := app.WithContext(ctx).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
