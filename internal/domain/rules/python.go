package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/codesweep/codesweep/internal/domain"
)

// Python builds the rule set for .py files. The whitespace fixers run first
// so the line-length check measures corrected content.
func Python(opts Options) *RuleSet {
	return newSet("python", opts,
		newTrailingWhitespaceRule("python"),
		newTabIndentRule("python", 4),
		newPatternRule("python/no-print", domain.CategoryDebugOutput, domain.SeverityWarning,
			`\bprint\(`, "print call (route debug output through logging)"),
		importPositionRule{baseRule: baseRule{
			id:       "python/import-position",
			category: domain.CategoryConvention,
			severity: domain.SeverityInfo,
		}},
		namingConventionRule{baseRule: baseRule{
			id:       "python/naming-convention",
			category: domain.CategoryConvention,
			severity: domain.SeverityInfo,
		}},
		newLineLengthRule("python", opts.limit("python", 120)),
	)
}

// importPositionRule flags module-level imports that appear after the first
// real statement. Blank lines, comments and the module docstring do not count
// as statements; indented (conditional) imports are ignored.
type importPositionRule struct {
	baseRule
}

func (r importPositionRule) Apply(src string) Result {
	var issues []domain.Issue
	inDocstring := false
	docDelim := ""
	seenCode := false

	lines := splitLines(src)
	for i, line := range lines {
		if i == len(lines)-1 && line == "" {
			break
		}
		trimmed := strings.TrimSpace(line)

		if inDocstring {
			if strings.Contains(trimmed, docDelim) {
				inDocstring = false
			}
			continue
		}
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if delim, open := docstringDelim(trimmed); open {
			inDocstring = true
			docDelim = delim
			continue
		} else if delim != "" {
			continue // single-line docstring
		}

		isImport := strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "from ")
		if isImport {
			if seenCode {
				issues = append(issues, r.issue(i+1, "import after the first statement (group imports at the top)"))
			}
			continue
		}
		seenCode = true
	}
	return Result{Content: src, Issues: issues}
}

// docstringDelim reports whether a trimmed line starts a string-literal
// statement. open is true when the literal does not close on the same line.
func docstringDelim(trimmed string) (delim string, open bool) {
	for _, d := range []string{`"""`, `'''`} {
		if strings.HasPrefix(trimmed, d) {
			rest := trimmed[len(d):]
			return d, !strings.Contains(rest, d)
		}
	}
	return "", false
}

var pyDefRe = regexp.MustCompile(`^\s*def\s+([A-Za-z_][A-Za-z0-9_]*)`)

// namingConventionRule flags camelCase function definitions and suggests the
// snake_case spelling.
type namingConventionRule struct {
	baseRule
}

func (r namingConventionRule) Apply(src string) Result {
	var issues []domain.Issue
	lines := splitLines(src)
	for i, line := range lines {
		m := pyDefRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := m[1]
		if name == strings.ToLower(name) {
			continue
		}
		issues = append(issues, r.issue(i+1,
			fmt.Sprintf("function %s is not snake_case (try %s)", name, snakeCase(name))))
	}
	return Result{Content: src, Issues: issues}
}

// snakeCase converts a camelCase identifier to its snake_case spelling.
func snakeCase(name string) string {
	words := camelcase.Split(name)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if w == "_" {
			continue
		}
		parts = append(parts, strings.ToLower(w))
	}
	return strings.Join(parts, "_")
}
