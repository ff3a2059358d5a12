package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

var (
	cutterTag    string
	cutterJSON   bool
	cutterSuffix string
	cutterFold   bool
)

var cutterCmd = &cobra.Command{
	Use:   "cutter",
	Short: "Build Cutter numbers",
	Long: `Build Cutter numbers from the configured Cutter table.

The table is chosen with the cutter.store and cutter.table_path settings.`,
}

var cutterBuildCmd = &cobra.Command{
	Use:   "build [text]",
	Short: "Build a Cutter number from a heading",
	Long: `Parse a heading as it appears in the field named by --tag and look up
its Cutter number. Titles (245) and corporate or meeting names (110, 111)
skip a leading article; personal names (100) use the first word.

Examples:
  marcassist cutter build "Smith, John" --tag 700
  marcassist cutter build "The Great War" --tag 245`,
	Args: cobra.ExactArgs(1),
	RunE: runCutterBuild,
}

var cutterGenerateCmd = &cobra.Command{
	Use:   "generate [lastname] [firstname]",
	Short: "Generate a Cutter number from name parts",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runCutterGenerate,
}

var cutterParseCmd = &cobra.Command{
	Use:   "parse [text]",
	Short: "Show how a heading is split into name parts",
	Args:  cobra.ExactArgs(1),
	RunE:  runCutterParse,
}

func init() {
	cutterBuildCmd.Flags().StringVarP(&cutterTag, "tag", "t", domain.TagPersonalName, "source field tag")
	cutterBuildCmd.Flags().BoolVar(&cutterJSON, "json", false, "output as JSON")
	cutterParseCmd.Flags().StringVarP(&cutterTag, "tag", "t", domain.TagPersonalName, "source field tag")
	cutterGenerateCmd.Flags().StringVar(&cutterSuffix, "suffix", "", "text appended to the number")
	cutterGenerateCmd.Flags().BoolVar(&cutterFold, "fold", false, "strip diacritics before lookup")

	cutterCmd.AddCommand(cutterBuildCmd)
	cutterCmd.AddCommand(cutterGenerateCmd)
	cutterCmd.AddCommand(cutterParseCmd)
	rootCmd.AddCommand(cutterCmd)
}

// cutterResult is the JSON form of a build.
type cutterResult struct {
	Text   string           `json:"text"`
	Tag    string           `json:"tag"`
	Name   domain.NameParts `json:"name"`
	Cutter string           `json:"cutter"`
}

func runCutterBuild(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	result := cutterResult{
		Text:   args[0],
		Tag:    cutterTag,
		Name:   s.Cutter.Parse(args[0], cutterTag),
		Cutter: s.Cutter.Build(args[0], cutterTag),
	}
	if cutterJSON {
		return printJSON(cmd, result)
	}

	p := newPrinter(cmd)
	if result.Cutter == "" {
		p.warn("No Cutter number for %q (table has %d entries)", args[0], s.Cutter.TableSize())
		return nil
	}
	p.ok("%s", result.Cutter)
	return nil
}

func runCutterGenerate(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	firstname := ""
	if len(args) > 1 {
		firstname = args[1]
	}
	got := s.Cutter.Generate(args[0], firstname, domain.CutterOptions{
		Suffix:         cutterSuffix,
		FoldDiacritics: cutterFold,
	})

	p := newPrinter(cmd)
	if got == "" {
		p.warn("No Cutter number for %q", args[0])
		return nil
	}
	p.ok("%s", got)
	return nil
}

func runCutterParse(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	parts := s.Cutter.Parse(args[0], cutterTag)
	cmd.Printf("Lastname:  %s\n", parts.Lastname)
	cmd.Printf("Firstname: %s\n", parts.Firstname)
	return nil
}
