package rules

import (
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/codesweep/codesweep/internal/domain"
)

// YAML builds the rule set for .yml/.yaml files. The syntax check runs
// first: whitespace findings on an unparseable file are still reported, but
// nothing here rewrites YAML.
func YAML(opts Options) *RuleSet {
	return newSet("yaml", opts,
		yamlSyntaxRule{baseRule: baseRule{
			id:       "yaml/syntax",
			category: domain.CategorySerialization,
			severity: domain.SeverityError,
		}},
		newPatternRule("yaml/no-tabs", domain.CategoryWhitespace, domain.SeverityWarning,
			"\t", "tab character (YAML indentation must use spaces)"),
		newPatternRule("yaml/trailing-whitespace", domain.CategoryWhitespace, domain.SeverityWarning,
			`[ \t]+$`, "trailing whitespace"),
	)
}

// yamlSyntaxRule parses every document in the file and reports the first
// decode failure as a content validation error.
type yamlSyntaxRule struct {
	baseRule
}

func (r yamlSyntaxRule) Apply(src string) Result {
	dec := yaml.NewDecoder(strings.NewReader(src))
	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return Result{Content: src}
		}
		if err != nil {
			msg := strings.TrimPrefix(err.Error(), "yaml: ")
			return Result{
				Content: src,
				Issues:  []domain.Issue{r.issue(0, "invalid YAML: "+msg)},
			}
		}
	}
}
