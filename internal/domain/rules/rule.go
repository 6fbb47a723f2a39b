// Package rules holds the per-language rule sets: deterministic, text-level
// checks and fixes over file content. Rules are pure — they see content,
// never paths or modes — and idempotent: applying a rule to its own output
// yields no further fixable issues and identical content.
package rules

import "github.com/codesweep/codesweep/internal/domain"

// Rule is a single check over file content.
type Rule interface {
	// ID is the stable identifier, "<language>/<rule-name>".
	ID() string
	// Category groups the issues this rule produces.
	Category() domain.Category
	// Severity applies to every issue this rule produces.
	Severity() domain.Severity
	// Fixable reports whether the rule rewrites content.
	Fixable() bool
	// Apply inspects src and returns the (possibly rewritten) content plus
	// the issues found. Detect-only rules return Content == src.
	Apply(src string) Result
}

// Result is the outcome of applying one rule or a whole set.
type Result struct {
	Content string
	Issues  []domain.Issue
}

// baseRule carries the static identity shared by every rule implementation.
type baseRule struct {
	id       string
	category domain.Category
	severity domain.Severity
	fixable  bool
}

func (b baseRule) ID() string                { return b.id }
func (b baseRule) Category() domain.Category { return b.category }
func (b baseRule) Severity() domain.Severity { return b.severity }
func (b baseRule) Fixable() bool             { return b.fixable }

// issue builds an issue stamped with the rule's identity. Line 0 marks a
// file-scoped issue.
func (b baseRule) issue(line int, msg string) domain.Issue {
	return domain.Issue{
		Rule:     b.id,
		Severity: b.severity,
		Category: b.category,
		Line:     line,
		Message:  msg,
		Fixable:  b.fixable,
	}
}

func (b baseRule) issueAt(line, column int, msg string) domain.Issue {
	is := b.issue(line, msg)
	is.Column = column
	return is
}
