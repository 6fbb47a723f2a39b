package rules

import "github.com/codesweep/codesweep/internal/domain"

// RuleSet is the ordered list of rules for one language. Order is part of
// the contract: each rule receives the previous rule's output, in every
// mode, so normalizing rules run before measuring ones and two runs over the
// same content always produce the same issues.
type RuleSet struct {
	language string
	rules    []Rule
}

func NewRuleSet(language string, rules ...Rule) *RuleSet {
	return &RuleSet{language: language, rules: rules}
}

// Language returns the name the set was registered under.
func (rs *RuleSet) Language() string { return rs.language }

// Rules returns the rules in application order.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Apply runs every rule in order, threading content through the chain and
// concatenating issues in rule order.
func (rs *RuleSet) Apply(src string) Result {
	out := src
	var issues []domain.Issue
	for _, r := range rs.rules {
		res := r.Apply(out)
		issues = append(issues, res.Issues...)
		out = res.Content
	}
	return Result{Content: out, Issues: issues}
}
