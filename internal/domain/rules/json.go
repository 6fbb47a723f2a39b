package rules

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/codesweep/codesweep/internal/domain"
)

// JSON builds the rule set for .json files.
func JSON(opts Options) *RuleSet {
	return newSet("json", opts,
		canonicalJSONRule{baseRule: baseRule{
			id:       "json/canonical-format",
			category: domain.CategorySerialization,
			severity: domain.SeverityWarning,
			fixable:  true,
		}},
	)
}

// canonicalJSONRule rewrites JSON to its canonical form: two-space indent,
// object keys sorted, HTML escaping off, trailing newline. Numbers pass
// through as json.Number so literals survive the round trip. Unparseable
// content is a content validation error, reported non-fixable.
type canonicalJSONRule struct {
	baseRule
}

func (r canonicalJSONRule) Apply(src string) Result {
	canonical, err := canonicalizeJSON(src)
	if err != nil {
		is := r.issue(0, "invalid JSON: "+err.Error())
		is.Severity = domain.SeverityError
		is.Fixable = false
		return Result{Content: src, Issues: []domain.Issue{is}}
	}
	if canonical == src {
		return Result{Content: src}
	}
	return Result{
		Content: canonical,
		Issues:  []domain.Issue{r.issue(0, "non-canonical formatting (re-indent with sorted keys)")},
	}
}

func canonicalizeJSON(src string) (string, error) {
	dec := json.NewDecoder(strings.NewReader(src))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return "", errors.New("trailing data after top-level value")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
