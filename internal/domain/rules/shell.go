package rules

import (
	"strings"

	"github.com/codesweep/codesweep/internal/domain"
)

// Shell builds the rule set for .sh files.
func Shell(opts Options) *RuleSet {
	return newSet("shell", opts,
		shebangRule{baseRule: baseRule{
			id:       "shell/shebang",
			category: domain.CategoryHeader,
			severity: domain.SeverityWarning,
			fixable:  true,
		}},
		setERule{baseRule: baseRule{
			id:       "shell/set-e",
			category: domain.CategoryConvention,
			severity: domain.SeverityInfo,
		}},
		unquotedVarsRule{baseRule: baseRule{
			id:       "shell/unquoted-variables",
			category: domain.CategoryUnsafe,
			severity: domain.SeverityWarning,
		}},
	)
}

// shebangRule prepends #!/bin/bash when the script does not start with a
// shebang.
type shebangRule struct {
	baseRule
}

func (r shebangRule) Apply(src string) Result {
	if strings.HasPrefix(src, "#!") {
		return Result{Content: src}
	}
	return Result{
		Content: "#!/bin/bash\n" + src,
		Issues:  []domain.Issue{r.issue(1, "missing shebang line")},
	}
}

// setERule wants scripts to fail fast. Any `set -e` variant (set -e,
// set -euo pipefail, ...) satisfies it.
type setERule struct {
	baseRule
}

func (r setERule) Apply(src string) Result {
	if strings.Contains(src, "set -e") {
		return Result{Content: src}
	}
	return Result{
		Content: src,
		Issues:  []domain.Issue{r.issue(0, "missing `set -e` (script continues after failed commands)")},
	}
}

// unquotedVarsRule flags $VAR and ${VAR} expansions outside double quotes.
// The scan tracks quote state per line: single-quoted spans are literal,
// double-quoted expansions are safe, $( and $(( are substitutions, not
// expansions. Heredocs and strings spanning lines are approximated
// line-by-line.
type unquotedVarsRule struct {
	baseRule
}

func (r unquotedVarsRule) Apply(src string) Result {
	var issues []domain.Issue
	lines := splitLines(src)
	for i, line := range lines {
		if col := firstUnquotedVar(line); col > 0 {
			issues = append(issues, r.issueAt(i+1, col, "unquoted variable expansion (wrap it in double quotes)"))
		}
	}
	return Result{Content: src, Issues: issues}
}

// firstUnquotedVar returns the 1-based column of the first unquoted variable
// expansion in the line, or 0 when there is none.
func firstUnquotedVar(line string) int {
	inSingle, inDouble := false, false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\\' && !inSingle:
			i++
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case c == '#' && !inSingle && !inDouble && (i == 0 || line[i-1] == ' ' || line[i-1] == '\t'):
			return 0 // comment: rest of the line is not code
		case c == '$' && !inSingle && !inDouble && i+1 < len(line):
			next := line[i+1]
			if next == '{' || next == '_' || isASCIILetter(next) {
				return i + 1
			}
		}
	}
	return 0
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
