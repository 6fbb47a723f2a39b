package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/codesweep/codesweep/internal/domain"
)

// splitLines splits content on newlines. A trailing newline produces an
// empty final segment; joinLines reverses the split exactly, so per-line
// transforms preserve the original newline layout.
func splitLines(src string) []string {
	return strings.Split(src, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// matchLines returns the 1-based numbers of every line for which match is
// true, skipping the empty tail segment left by a trailing newline.
func matchLines(src string, match func(string) bool) []int {
	lines := splitLines(src)
	var out []int
	for i, line := range lines {
		if i == len(lines)-1 && line == "" {
			break
		}
		if match(line) {
			out = append(out, i+1)
		}
	}
	return out
}

// mapLines rewrites content line by line and returns the new content plus
// the 1-based numbers of the lines that changed.
func mapLines(src string, rewrite func(string) string) (string, []int) {
	lines := splitLines(src)
	var changed []int
	for i, line := range lines {
		if next := rewrite(line); next != line {
			lines[i] = next
			changed = append(changed, i+1)
		}
	}
	return joinLines(lines), changed
}

// expandLeadingTabs replaces each tab in the line's indentation with width
// spaces, leaving interior tabs alone.
func expandLeadingTabs(line string, width int) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	indent := line[:i]
	if !strings.Contains(indent, "\t") {
		return line
	}
	return strings.ReplaceAll(indent, "\t", strings.Repeat(" ", width)) + line[i:]
}

// patternRule flags every line matching a regular expression. Detect-only.
type patternRule struct {
	baseRule
	re      *regexp.Regexp
	message string
}

func newPatternRule(id string, cat domain.Category, sev domain.Severity, pattern, message string) patternRule {
	return patternRule{
		baseRule: baseRule{id: id, category: cat, severity: sev},
		re:       regexp.MustCompile(pattern),
		message:  message,
	}
}

func (r patternRule) Apply(src string) Result {
	var issues []domain.Issue
	for _, n := range matchLines(src, r.re.MatchString) {
		issues = append(issues, r.issue(n, r.message))
	}
	return Result{Content: src, Issues: issues}
}

// lineLengthRule flags lines longer than the limit, counting runes so that
// multi-byte characters are not over-counted. Detect-only; it runs after the
// whitespace-normalizing rules of its set so measurements reflect the fixed
// content.
type lineLengthRule struct {
	baseRule
	limit int
}

func newLineLengthRule(lang string, limit int) lineLengthRule {
	return lineLengthRule{
		baseRule: baseRule{
			id:       lang + "/line-length",
			category: domain.CategoryLineLength,
			severity: domain.SeverityWarning,
		},
		limit: limit,
	}
}

func (r lineLengthRule) Apply(src string) Result {
	lines := splitLines(src)
	var issues []domain.Issue
	for i, line := range lines {
		if n := len([]rune(line)); n > r.limit {
			issues = append(issues, r.issue(i+1, fmt.Sprintf("line exceeds %d characters (%d)", r.limit, n)))
		}
	}
	return Result{Content: src, Issues: issues}
}

// tabIndentRule converts leading tabs to spaces. Fixable.
type tabIndentRule struct {
	baseRule
	width int
}

func newTabIndentRule(lang string, width int) tabIndentRule {
	return tabIndentRule{
		baseRule: baseRule{
			id:       lang + "/tab-indentation",
			category: domain.CategoryWhitespace,
			severity: domain.SeverityWarning,
			fixable:  true,
		},
		width: width,
	}
}

func (r tabIndentRule) Apply(src string) Result {
	out, changed := mapLines(src, func(line string) string {
		return expandLeadingTabs(line, r.width)
	})
	var issues []domain.Issue
	for _, n := range changed {
		issues = append(issues, r.issue(n, fmt.Sprintf("tab indentation (expected %d-space indents)", r.width)))
	}
	return Result{Content: out, Issues: issues}
}

// trailingWhitespaceRule strips spaces and tabs from line ends. Fixable.
type trailingWhitespaceRule struct {
	baseRule
}

func newTrailingWhitespaceRule(lang string) trailingWhitespaceRule {
	return trailingWhitespaceRule{
		baseRule: baseRule{
			id:       lang + "/trailing-whitespace",
			category: domain.CategoryWhitespace,
			severity: domain.SeverityWarning,
			fixable:  true,
		},
	}
}

func (r trailingWhitespaceRule) Apply(src string) Result {
	out, changed := mapLines(src, func(line string) string {
		return strings.TrimRight(line, " \t")
	})
	var issues []domain.Issue
	for _, n := range changed {
		issues = append(issues, r.issue(n, "trailing whitespace"))
	}
	return Result{Content: out, Issues: issues}
}
