package rules

import "github.com/codesweep/codesweep/internal/domain"

// Ruby builds the rule set for .rb files.
func Ruby(opts Options) *RuleSet {
	return newSet("ruby", opts,
		newPatternRule("ruby/no-puts", domain.CategoryDebugOutput, domain.SeverityWarning,
			`\b(?:puts|print) `, "puts/print call (route debug output through a logger)"),
		newLineLengthRule("ruby", opts.limit("ruby", 120)),
	)
}
