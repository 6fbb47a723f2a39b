package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codesweep/codesweep/internal/domain"
	"github.com/codesweep/codesweep/internal/domain/rules"
)

func TestYAML_ValidDocument(t *testing.T) {
	set := rules.YAML(rules.Options{})
	src := "name: codesweep\nitems:\n  - one\n  - two\n"

	res := set.Apply(src)

	assert.Empty(t, res.Issues)
	assert.Equal(t, src, res.Content)
}

func TestYAML_MultiDocument(t *testing.T) {
	set := rules.YAML(rules.Options{})
	src := "a: 1\n---\nb: 2\n"

	res := set.Apply(src)

	assert.Empty(t, res.Issues)
}

func TestYAML_SyntaxError(t *testing.T) {
	set := rules.YAML(rules.Options{})
	src := "a:\n\tb: 1\n" // tab indentation is not legal YAML

	res := set.Apply(src)

	require.NotEmpty(t, res.Issues)
	is := res.Issues[0]
	assert.Equal(t, "yaml/syntax", is.Rule)
	assert.Equal(t, domain.SeverityError, is.Severity)
	assert.False(t, is.Fixable)
	assert.Contains(t, is.Message, "invalid YAML")
	assert.Equal(t, src, res.Content, "nothing rewrites YAML")
}

func TestYAML_NoTabs(t *testing.T) {
	src := "a:\n\tb: 1\n"
	set := rules.YAML(rules.Options{})

	res := set.Apply(src)

	var tabs []int
	for _, is := range res.Issues {
		if is.Rule == "yaml/no-tabs" {
			tabs = append(tabs, is.Line)
		}
	}
	assert.Equal(t, []int{2}, tabs, "tab finding survives alongside the syntax error")
}

func TestYAML_TrailingWhitespace_DetectOnly(t *testing.T) {
	set := rules.YAML(rules.Options{})
	src := "key: value  \n"

	res := set.Apply(src)

	require.Len(t, res.Issues, 1)
	is := res.Issues[0]
	assert.Equal(t, "yaml/trailing-whitespace", is.Rule)
	assert.False(t, is.Fixable)
	assert.Equal(t, src, res.Content)
}

func TestYAML_EmptyFileIsValid(t *testing.T) {
	set := rules.YAML(rules.Options{})

	res := set.Apply("")

	assert.Empty(t, res.Issues)
}
