package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change marcassist settings.

Settings are stored in ~/.marcassist/config.toml unless --config is given.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting by key.

Keys:
  cutter.store            file or sqlite
  cutter.table_path       table file used when cutter.store is file
  cutter.suffix           text appended to every built Cutter number
  cutter.fold_diacritics  true to strip accents before lookup
  rules.pack_path         base rule pack (JSON)
  rules.options_path      options overlay merged over the pack
  rules.watch             true to reload rules when the files change
  log.verbose             true to always log debug output`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	settings, err := s.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	p := newPrinter(cmd)
	p.heading("Current Settings")
	cmd.Println()

	cmd.Println("[Cutter]")
	cmd.Printf("  Store: %s\n", settings.Cutter.Store.Description())
	cmd.Printf("  Table: %s\n", orUnset(settings.Cutter.TablePath))
	cmd.Printf("  Suffix: %s\n", orUnset(settings.Cutter.Suffix))
	cmd.Printf("  Fold diacritics: %s\n", yesNo(settings.Cutter.FoldDiacritics))
	if s.Cutter != nil {
		cmd.Printf("  Loaded entries: %d\n", s.Cutter.TableSize())
	}
	cmd.Println()

	cmd.Println("[Rules]")
	cmd.Printf("  Pack: %s\n", orUnset(settings.Rules.PackPath))
	cmd.Printf("  Options: %s\n", orUnset(settings.Rules.OptionsPath))
	cmd.Printf("  Watch: %s\n", yesNo(settings.Rules.Watch))
	if s.Punctuation != nil && s.Punctuation.Rules() != nil {
		cmd.Printf("  Loaded rules: %d\n", s.Punctuation.Rules().Len())
	}
	cmd.Println()

	cmd.Println("[Logging]")
	cmd.Printf("  Verbose: %s\n", yesNo(settings.Verbose))
	cmd.Println()

	if err := settings.Validate(); err != nil {
		p.warn("Warning: %v", err)
	} else {
		p.ok("Configuration is valid.")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	key, value := strings.TrimSpace(args[0]), args[1]
	if err := s.Settings.Set(key, value); err != nil {
		return fmt.Errorf("%w (known keys: %s)", err, strings.Join(s.Settings.Keys(), ", "))
	}
	newPrinter(cmd).ok("Set %s = %s", key, value)
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
