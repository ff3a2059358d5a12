package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect punctuation rule packs",
}

var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the active rules",
	Args:  cobra.NoArgs,
	RunE:  runRulesShow,
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check [pack] [options]",
	Short: "Compile a rule pack and report errors",
	Long: `Compile a rule pack, and optionally an options overlay, without making
it active. Errors name the document and rule key that failed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRulesCheck,
}

func init() {
	rulesCmd.AddCommand(rulesShowCmd)
	rulesCmd.AddCommand(rulesCheckCmd)
	rootCmd.AddCommand(rulesCmd)
}

func runRulesShow(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	rules := s.Punctuation.Rules()
	if rules == nil {
		return fmt.Errorf("%w: set rules.pack_path", domain.ErrRulesUnavailable)
	}
	printRules(newPrinter(cmd), rules)
	return nil
}

func runRulesCheck(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	optionsPath := ""
	if len(args) > 1 {
		optionsPath = args[1]
	}
	pack, options, err := readRuleFiles(args[0], optionsPath)
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	rules, err := s.Punctuation.CheckRules(pack, options)
	var parseErr *domain.ParseError
	if errors.As(err, &parseErr) {
		p.problem("Invalid %s: %v", parseErr.Document, parseErr.Err)
		if parseErr.Key != "" {
			p.muted("  rule %s", parseErr.Key)
		}
		return err
	}
	if err != nil {
		return err
	}

	p.ok("OK: %d rules", rules.Len())
	return nil
}

func printRules(p *printer, rules *domain.RuleSet) {
	p.heading(fmt.Sprintf("Rules (%d)", rules.Len()))
	for _, key := range rules.Keys() {
		tag, code, _ := strings.Cut(key, "$")
		rule, _ := rules.Rule(tag, code)

		names := make([]string, 0, len(rule.Checks))
		for _, c := range rule.Checks {
			names = append(names, c.Name())
		}
		line := fmt.Sprintf("  %-6s %s", key, strings.Join(names, ", "))

		var flags []string
		if rule.Disabled {
			flags = append(flags, "disabled")
		}
		if !rule.Repeatable {
			flags = append(flags, "not repeatable")
		}
		if rule.MustBeFirst {
			flags = append(flags, "first")
		}
		if len(flags) > 0 {
			line += " [" + strings.Join(flags, ", ") + "]"
		}

		if rule.Disabled {
			p.muted("%s", line)
			continue
		}
		p.cmd.Println(line)
	}
}
