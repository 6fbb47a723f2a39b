package rules

import (
	"strings"

	"github.com/codesweep/codesweep/internal/domain"
)

// Rust builds the rule set for .rs files.
func Rust(opts Options) *RuleSet {
	return newSet("rust", opts,
		newPatternRule("rust/no-unwrap", domain.CategoryUnsafe, domain.SeverityWarning,
			`\.unwrap\(\)`, ".unwrap() call (handle the error or use expect)"),
		rustPrintlnRule{baseRule: baseRule{
			id:       "rust/no-println",
			category: domain.CategoryDebugOutput,
			severity: domain.SeverityWarning,
		}},
	)
}

// rustPrintlnRule flags println! outside test files. A file containing a
// #[test] attribute is assumed to be test code, where printing is fine.
type rustPrintlnRule struct {
	baseRule
}

func (r rustPrintlnRule) Apply(src string) Result {
	if strings.Contains(src, "#[test]") {
		return Result{Content: src}
	}
	var issues []domain.Issue
	for _, n := range matchLines(src, func(line string) bool {
		return strings.Contains(line, "println!")
	}) {
		issues = append(issues, r.issue(n, "println! macro (route debug output through a logger)"))
	}
	return Result{Content: src, Issues: issues}
}
