package rules

import "github.com/codesweep/codesweep/internal/domain"

// Java builds the rule set for .java files.
func Java(opts Options) *RuleSet {
	return newSet("java", opts,
		newPatternRule("java/no-system-out", domain.CategoryDebugOutput, domain.SeverityWarning,
			`System\.out\.println`, "System.out.println call (route debug output through a logger)"),
		newPatternRule("java/brace-style", domain.CategoryConvention, domain.SeverityInfo,
			`^\s*\{`, "opening brace on its own line (put it on the statement line)"),
	)
}
