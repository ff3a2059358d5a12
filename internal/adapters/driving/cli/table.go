package cli

import (
	"sort"

	"github.com/spf13/cobra"
)

var tableJSON bool

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Manage the local Cutter table",
	Long: `Import and export the Cutter table kept in the local database.
Files may be JSON, TOML or CSV; the format follows the file extension.
Set cutter.store to sqlite to build Cutter numbers from the imported table.`,
}

var tableImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the local table with a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTableImport,
}

var tableExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the local table to a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTableExport,
}

var tableStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise the local table",
	Args:  cobra.NoArgs,
	RunE:  runTableStats,
}

func init() {
	tableStatsCmd.Flags().BoolVar(&tableJSON, "json", false, "output as JSON")
	tableCmd.AddCommand(tableImportCmd)
	tableCmd.AddCommand(tableExportCmd)
	tableCmd.AddCommand(tableStatsCmd)
	rootCmd.AddCommand(tableCmd)
}

func runTableImport(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	n, err := s.Tables.Import(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	newPrinter(cmd).ok("Imported %d entries from %s", n, args[0])
	return nil
}

func runTableExport(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	n, err := s.Tables.Export(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	newPrinter(cmd).ok("Exported %d entries to %s", n, args[0])
	return nil
}

func runTableStats(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	stats, err := s.Tables.Stats(cmd.Context())
	if err != nil {
		return err
	}
	if tableJSON {
		return printJSON(cmd, stats)
	}

	cmd.Printf("Entries:        %d\n", stats.Entries)
	cmd.Printf("With initial:   %d\n", stats.WithInitial)

	initials := make([]string, 0, len(stats.Initials))
	for k := range stats.Initials {
		initials = append(initials, k)
	}
	sort.Strings(initials)
	for _, k := range initials {
		cmd.Printf("  %s  %d\n", k, stats.Initials[k])
	}
	return nil
}
