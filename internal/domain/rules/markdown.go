package rules

import (
	"regexp"
	"strings"

	"github.com/codesweep/codesweep/internal/domain"
)

// Markdown builds the rule set for .md files.
func Markdown(opts Options) *RuleSet {
	return newSet("markdown", opts,
		blankLinesRule{baseRule: baseRule{
			id:       "markdown/blank-lines",
			category: domain.CategoryMarkup,
			severity: domain.SeverityInfo,
		}},
		headingSpaceRule{baseRule: baseRule{
			id:       "markdown/heading-space",
			category: domain.CategoryMarkup,
			severity: domain.SeverityWarning,
		}},
	)
}

// blankLinesRule flags runs of consecutive blank lines, one issue per line
// beyond the first. Whitespace-only lines count as blank.
type blankLinesRule struct {
	baseRule
}

func (r blankLinesRule) Apply(src string) Result {
	var issues []domain.Issue
	blanks := 0
	lines := splitLines(src)
	for i, line := range lines {
		if i == len(lines)-1 && line == "" {
			break
		}
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > 1 {
				issues = append(issues, r.issue(i+1, "multiple consecutive blank lines"))
			}
			continue
		}
		blanks = 0
	}
	return Result{Content: src, Issues: issues}
}

var headingNoSpaceRe = regexp.MustCompile(`^#{1,6}[^#\s]`)

// headingSpaceRule flags headings written #Heading instead of # Heading.
type headingSpaceRule struct {
	baseRule
}

func (r headingSpaceRule) Apply(src string) Result {
	var issues []domain.Issue
	for _, n := range matchLines(src, headingNoSpaceRe.MatchString) {
		issues = append(issues, r.issue(n, "missing space after # in heading"))
	}
	return Result{Content: src, Issues: issues}
}
