// Package cli provides the marcassist command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/marcassist/internal/core/ports/driving"
	"github.com/custodia-labs/marcassist/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	verbose    bool
	configPath string
)

// Services are the driving ports commands call into.
type Services struct {
	Cutter      driving.CutterService
	Punctuation driving.PunctuationService
	Settings    driving.SettingsService
	Tables      driving.TableService
}

// GlobalOptions carries the global flags to the bootstrap function.
type GlobalOptions struct {
	ConfigPath string
	Verbose    bool
}

// Bootstrap builds services once flags are parsed. The returned cleanup
// runs after the command finishes.
type Bootstrap func(ctx context.Context, opts GlobalOptions) (*Services, func(), error)

var (
	bootstrap Bootstrap
	services  *Services
	cleanup   func()
)

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that wires services.
func SetBootstrap(fn Bootstrap) {
	bootstrap = fn
}

// SetServices installs services directly, bypassing bootstrap.
func SetServices(s *Services) {
	services = s
}

var rootCmd = &cobra.Command{
	Use:   "marcassist",
	Short: "Cataloguing assistant for Cutter numbers and MARC punctuation",
	Long: `marcassist helps catalogers with two routine tasks:

  - building Cutter numbers for names and titles from a Cutter table
  - checking the punctuation between subfields of a MARC field against
    a JSON rule pack

Settings live in ~/.marcassist/config.toml; see 'marcassist settings'.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetVerbose(verbose)

		if services != nil || bootstrap == nil || skipBootstrap(cmd) {
			return nil
		}
		s, done, err := bootstrap(cmd.Context(), GlobalOptions{ConfigPath: configPath, Verbose: verbose})
		if err != nil {
			return fmt.Errorf("initialise: %w", err)
		}
		services, cleanup = s, done
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config directory or .toml file (default ~/.marcassist)")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return run(ctx)
}

// run executes the root command and releases bootstrapped resources.
// Cobra skips post-run hooks when a command fails, so cleanup is deferred
// here instead.
func run(ctx context.Context) error {
	defer shutdown()
	return rootCmd.ExecuteContext(ctx)
}

func shutdown() {
	if cleanup != nil {
		cleanup()
		cleanup = nil
	}
	logger.Sync()
}

// skipBootstrap reports commands that need no services.
func skipBootstrap(cmd *cobra.Command) bool {
	return cmd == versionCmd || cmd.Name() == "help" || cmd.Name() == "completion"
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
