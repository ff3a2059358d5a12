package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driving"
)

var (
	validateTag       string
	validateDelimiter string
	validateJSON      bool
	validateStrict    bool
	validateRules     string
	validateOptions   string
)

// errFindings is returned by --strict when a field has findings.
var errFindings = errors.New("punctuation findings reported")

var validateCmd = &cobra.Command{
	Use:   "validate [field]",
	Short: "Check subfield punctuation of a field",
	Long: `Validate the punctuation between the subfields of one field against the
configured rule pack. Subfields are introduced by $ or by the MARC
delimiter (0x1F); the delimiter is detected unless --delimiter is given.
Use - to read the field from standard input.

Findings list the corrected value a subfield should have. Warnings report
structural problems that do not stop validation.

Examples:
  marcassist validate '10$aTitle without period' --tag 245
  marcassist validate '$aTitle$bsubtitle' --tag 245 --rules isbd.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateTag, "tag", "t", domain.TagTitle, "field tag")
	validateCmd.Flags().StringVarP(&validateDelimiter, "delimiter", "d", "", "subfield delimiter (default: detect)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output as JSON")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "exit with an error when findings are reported")
	validateCmd.Flags().StringVar(&validateRules, "rules", "", "rule pack file (overrides settings)")
	validateCmd.Flags().StringVar(&validateOptions, "options", "", "options overlay file, used with --rules")
	rootCmd.AddCommand(validateCmd)
}

// validateOutput is the JSON form of a validation.
type validateOutput struct {
	Tag      string           `json:"tag"`
	Findings []domain.Finding `json:"findings"`
	Warnings []domain.Warning `json:"warnings"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	fctx, err := fieldContext(validateTag, validateDelimiter)
	if err != nil {
		return err
	}

	text := args[0]
	if text == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read field: %w", err)
		}
		text = string(data)
	}

	session := s.Punctuation.NewSession()
	if validateRules != "" {
		if err := loadRuleFiles(session, validateRules, validateOptions); err != nil {
			return err
		}
	}

	result, err := session.ValidateField(text, fctx)
	if errors.Is(err, domain.ErrRulesUnavailable) {
		return fmt.Errorf("%w: set rules.pack_path or pass --rules", err)
	}
	if err != nil {
		return err
	}

	out := validateOutput{Tag: fctx.Tag, Findings: result.Findings, Warnings: session.Warnings()}
	if out.Warnings == nil {
		out.Warnings = []domain.Warning{}
	}
	if validateJSON {
		if err := printJSON(cmd, out); err != nil {
			return err
		}
	} else {
		printValidation(newPrinter(cmd), out)
	}

	if validateStrict && len(out.Findings) > 0 {
		return errFindings
	}
	return nil
}

func printValidation(p *printer, out validateOutput) {
	if len(out.Findings) == 0 {
		p.ok("No punctuation findings.")
	} else {
		p.heading(fmt.Sprintf("Findings (%d)", len(out.Findings)))
		for _, f := range out.Findings {
			p.problem("  $%s [%d] expected %q (%s)", f.Subfield, f.Index+1, f.ExpectedValue, f.Rule)
		}
	}

	if len(out.Warnings) > 0 {
		p.cmd.Println()
		p.heading(fmt.Sprintf("Warnings (%d)", len(out.Warnings)))
		for _, w := range out.Warnings {
			p.warn("  %s", w.Message)
		}
	}
}

// fieldContext builds the validation context from flags.
func fieldContext(tag, delimiter string) (domain.FieldContext, error) {
	fctx := domain.FieldContext{Tag: tag}
	switch utf8.RuneCountInString(delimiter) {
	case 0:
	case 1:
		fctx.Delimiter, _ = utf8.DecodeRuneInString(delimiter)
	default:
		return fctx, fmt.Errorf("%w: delimiter must be a single character", domain.ErrInvalidInput)
	}
	return fctx, nil
}

// loadRuleFiles compiles rule files into session.
func loadRuleFiles(session driving.PunctuationService, packPath, optionsPath string) error {
	pack, options, err := readRuleFiles(packPath, optionsPath)
	if err != nil {
		return err
	}
	_, err = session.LoadRules(pack, options)
	return err
}

func readRuleFiles(packPath, optionsPath string) (pack, options []byte, err error) {
	pack, err = os.ReadFile(packPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read rule pack: %w", err)
	}
	if optionsPath != "" {
		if options, err = os.ReadFile(optionsPath); err != nil {
			return nil, nil, fmt.Errorf("read rule options: %w", err)
		}
	}
	return pack, options, nil
}
