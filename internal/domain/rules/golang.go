package rules

import (
	"strings"

	"github.com/codesweep/codesweep/internal/domain"
)

// Go builds the rule set for .go files. All three rules are detect-only:
// rewriting Go source is gofmt's job, not ours.
func Go(opts Options) *RuleSet {
	return newSet("go", opts,
		newPatternRule("go/no-fmt-println", domain.CategoryDebugOutput, domain.SeverityWarning,
			`fmt\.Println\(`, "fmt.Println call (route debug output through a logger)"),
		uncheckedErrorsRule{baseRule: baseRule{
			id:       "go/unchecked-errors",
			category: domain.CategoryUnsafe,
			severity: domain.SeverityInfo,
		}},
		newPatternRule("go/space-indentation", domain.CategoryWhitespace, domain.SeverityWarning,
			`^    `, "space indentation (Go convention is tabs)"),
	)
}

// uncheckedErrorsRule is a file-level heuristic: source that mentions error
// values but never tests `if err != nil` probably drops an error somewhere.
type uncheckedErrorsRule struct {
	baseRule
}

func (r uncheckedErrorsRule) Apply(src string) Result {
	if !strings.Contains(src, "error") || strings.Contains(src, "if err != nil") {
		return Result{Content: src}
	}
	return Result{
		Content: src,
		Issues:  []domain.Issue{r.issue(0, "mentions errors but never checks `if err != nil`")},
	}
}
