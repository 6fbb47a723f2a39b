package rules

import (
	"strings"

	"github.com/codesweep/codesweep/internal/domain"
)

// JavaScript builds the rule set for .js/.jsx files.
func JavaScript(opts Options) *RuleSet {
	return newSet("javascript", opts,
		newConsoleRule("javascript"),
		newTabIndentRule("javascript", 2),
		newEOFSemicolonRule("javascript"),
		newLineLengthRule("javascript", opts.limit("javascript", 100)),
	)
}

// TypeScript builds the rule set for .ts/.tsx files: the javascript rules
// under typescript IDs plus the any-type check.
func TypeScript(opts Options) *RuleSet {
	return newSet("typescript", opts,
		newConsoleRule("typescript"),
		newTabIndentRule("typescript", 2),
		newEOFSemicolonRule("typescript"),
		newPatternRule("typescript/no-any", domain.CategoryConvention, domain.SeverityInfo,
			`:\s*any\b`, "uses the 'any' type (prefer a concrete type)"),
		newLineLengthRule("typescript", opts.limit("typescript", 100)),
	)
}

// consoleRule removes console.log calls. The argument scan balances
// parentheses and skips string literals, so calls with nested calls or
// parens inside string arguments are removed whole. Lines the removal
// leaves blank are dropped.
type consoleRule struct {
	baseRule
}

func newConsoleRule(lang string) consoleRule {
	return consoleRule{
		baseRule: baseRule{
			id:       lang + "/no-console",
			category: domain.CategoryDebugOutput,
			severity: domain.SeverityWarning,
			fixable:  true,
		},
	}
}

func (r consoleRule) Apply(src string) Result {
	out, removed := stripCalls(src, "console.log(")
	var issues []domain.Issue
	for _, n := range removed {
		issues = append(issues, r.issue(n, "console.log call (route debug output through a logger)"))
	}
	return Result{Content: out, Issues: issues}
}

// eofSemicolonRule appends a semicolon when the last meaningful character of
// the file is neither ';' nor '}'. Empty and whitespace-only files are left
// alone.
type eofSemicolonRule struct {
	baseRule
}

func newEOFSemicolonRule(lang string) eofSemicolonRule {
	return eofSemicolonRule{
		baseRule: baseRule{
			id:       lang + "/eof-semicolon",
			category: domain.CategoryConvention,
			severity: domain.SeverityInfo,
			fixable:  true,
		},
	}
}

func (r eofSemicolonRule) Apply(src string) Result {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" || strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, "}") {
		return Result{Content: src}
	}
	out := strings.TrimRight(src, " \t\r\n") + ";\n"
	return Result{
		Content: out,
		Issues:  []domain.Issue{r.issue(0, "missing semicolon at end of file")},
	}
}

// callSpan is one call expression located in source text: [start,end) byte
// offsets including a trailing semicolon, and the 1-based line it starts on.
type callSpan struct {
	start, end int
	line       int
}

// findCalls locates every occurrence of call (a name including the opening
// parenthesis, e.g. "console.log(") whose argument list closes.
func findCalls(src, call string) []callSpan {
	var spans []callSpan
	line := 1
	for i := 0; i < len(src); {
		if src[i] == '\n' {
			line++
			i++
			continue
		}
		if strings.HasPrefix(src[i:], call) {
			if closing, ok := matchParen(src, i+len(call)-1); ok {
				end := closing + 1
				if end < len(src) && src[end] == ';' {
					end++
				}
				spans = append(spans, callSpan{start: i, end: end, line: line})
				line += strings.Count(src[i:end], "\n")
				i = end
				continue
			}
		}
		i++
	}
	return spans
}

// matchParen returns the offset of the parenthesis closing the one at open.
// Single-, double- and backtick-quoted literals are skipped, so parens inside
// string arguments do not end the scan.
func matchParen(src string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(src); i++ {
		switch src[i] {
		case '\'', '"', '`':
			q := src[i]
			i++
			for i < len(src) && src[i] != q {
				if src[i] == '\\' {
					i++
				}
				i++
			}
			if i >= len(src) {
				return 0, false
			}
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// stripCalls removes every located call from src and drops lines the removal
// leaves whitespace-only. It returns the rewritten content and the original
// 1-based line of each removed call.
func stripCalls(src, call string) (string, []int) {
	spans := findCalls(src, call)
	if len(spans) == 0 {
		return src, nil
	}

	var b strings.Builder
	var removedAt []int
	hosts := make(map[int]bool, len(spans))
	last := 0
	outLine := 1
	for _, s := range spans {
		seg := src[last:s.start]
		outLine += strings.Count(seg, "\n")
		b.WriteString(seg)
		hosts[outLine] = true
		removedAt = append(removedAt, s.line)
		last = s.end
	}
	b.WriteString(src[last:])

	lines := splitLines(b.String())
	kept := make([]string, 0, len(lines))
	for i, line := range lines {
		if hosts[i+1] && strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}
	return joinLines(kept), removedAt
}
