package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codesweep/codesweep/internal/domain/rules"
)

func TestRuby_NoPuts(t *testing.T) {
	set := rules.Ruby(rules.Options{})
	src := "puts 'hi'\nlogger.info 'ok'\noutputs = 1\n"

	res := set.Apply(src)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, "ruby/no-puts", res.Issues[0].Rule)
	assert.Equal(t, 1, res.Issues[0].Line)
}

func TestRuby_LineLength(t *testing.T) {
	set := rules.Ruby(rules.Options{})
	src := "# " + strings.Repeat("y", 120) + "\n"

	res := set.Apply(src)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, "ruby/line-length", res.Issues[0].Rule)
}
