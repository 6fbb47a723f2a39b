package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codesweep/codesweep/internal/domain"
	"github.com/codesweep/codesweep/internal/domain/rules"
)

func newRulesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List every language, extension and rule",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := rules.Default(rules.Options{}).Catalog()
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(catalogJSON(catalog))
			}

			out := cmd.OutOrStdout()
			for _, lr := range catalog {
				fmt.Fprintf(out, "%s (%s)\n", lr.Language, strings.Join(lr.Extensions, ", "))
				for _, r := range lr.Rules {
					marker := " "
					if r.Fixable() {
						marker = "*"
					}
					fmt.Fprintf(out, "  %s %-32s %-8s %s\n", marker, r.ID(), r.Severity(), r.Category())
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, "rules marked * are resolved by --fix")
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

type ruleInfo struct {
	ID       string          `json:"id"`
	Category domain.Category `json:"category"`
	Severity domain.Severity `json:"severity"`
	Fixable  bool            `json:"fixable"`
}

type languageInfo struct {
	Language   string     `json:"language"`
	Extensions []string   `json:"extensions"`
	Rules      []ruleInfo `json:"rules"`
}

func catalogJSON(catalog []rules.LanguageRules) []languageInfo {
	out := make([]languageInfo, 0, len(catalog))
	for _, lr := range catalog {
		li := languageInfo{Language: lr.Language, Extensions: lr.Extensions}
		for _, r := range lr.Rules {
			li.Rules = append(li.Rules, ruleInfo{
				ID:       r.ID(),
				Category: r.Category(),
				Severity: r.Severity(),
				Fixable:  r.Fixable(),
			})
		}
		out = append(out, li)
	}
	return out
}
