package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codesweep/codesweep/internal/domain/rules"
)

func ruleByID(t *testing.T, set *rules.RuleSet, id string) rules.Rule {
	t.Helper()
	for _, r := range set.Rules() {
		if r.ID() == id {
			return r
		}
	}
	t.Fatalf("rule %s not in set %s", id, set.Language())
	return nil
}

// assertIdempotent applies the set twice and requires the second pass to be a
// no-op: same content, no fixable issues left.
func assertIdempotent(t *testing.T, set *rules.RuleSet, src string) {
	t.Helper()
	first := set.Apply(src)
	second := set.Apply(first.Content)
	assert.Equal(t, first.Content, second.Content, "second pass changed content")
	for _, is := range second.Issues {
		assert.False(t, is.Fixable, "second pass still reports fixable %s", is.Rule)
	}
}

func TestRuleSet_ThreadsContentThroughRules(t *testing.T) {
	// The trailing-whitespace fixer runs before the line-length check, so a
	// line that only exceeds the limit because of trailing spaces is clean
	// after threading.
	set := rules.Python(rules.Options{})
	line := strings.Repeat("x", 118) + strings.Repeat(" ", 10)

	res := set.Apply(line + "\n")

	for _, is := range res.Issues {
		assert.NotEqual(t, "python/line-length", is.Rule,
			"line length must be measured after the whitespace fix")
	}
	assert.Equal(t, strings.Repeat("x", 118)+"\n", res.Content)
}

func TestRuleSet_IssuesKeepRuleOrder(t *testing.T) {
	set := rules.Python(rules.Options{})
	src := "x = 1 \nprint(x)\n"

	res := set.Apply(src)

	require.Len(t, res.Issues, 2)
	assert.Equal(t, "python/trailing-whitespace", res.Issues[0].Rule)
	assert.Equal(t, "python/no-print", res.Issues[1].Rule)
}

func TestRuleSet_EmptySetIsNoop(t *testing.T) {
	set := rules.NewRuleSet("none")
	res := set.Apply("anything at all\n")
	assert.Equal(t, "anything at all\n", res.Content)
	assert.Empty(t, res.Issues)
}

func TestRuleSet_RulesReturnsCopy(t *testing.T) {
	set := rules.Python(rules.Options{})
	got := set.Rules()
	got[0] = nil

	assert.NotNil(t, set.Rules()[0], "mutating the returned slice must not affect the set")
}
