package rules

import (
	"sort"
	"strings"
)

// Options tunes the shipped rule sets from project configuration.
type Options struct {
	// SkipRules removes rules by ID from their sets.
	SkipRules map[string]bool
	// LineLength overrides the per-language line-length limit.
	LineLength map[string]int
}

func (o Options) skip(id string) bool { return o.SkipRules[id] }

func (o Options) limit(language string, def int) int {
	if n, ok := o.LineLength[language]; ok && n > 0 {
		return n
	}
	return def
}

// Registry maps lowercase file extensions (dot form, ".py") to the RuleSet
// that handles them. Several extensions may share one set.
type Registry struct {
	sets map[string]*RuleSet
}

func NewRegistry() *Registry {
	return &Registry{sets: make(map[string]*RuleSet)}
}

// Register binds a rule set to one or more extensions.
func (r *Registry) Register(set *RuleSet, extensions ...string) {
	for _, ext := range extensions {
		r.sets[normalizeExt(ext)] = set
	}
}

// Lookup returns the rule set registered for an extension. Callers skip
// files whose extension has no set.
func (r *Registry) Lookup(ext string) (*RuleSet, bool) {
	set, ok := r.sets[normalizeExt(ext)]
	return set, ok
}

// Extensions returns every registered extension, sorted.
func (r *Registry) Extensions() []string {
	out := make([]string, 0, len(r.sets))
	for ext := range r.sets {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Languages returns the distinct registered language names, sorted.
func (r *Registry) Languages() []string {
	seen := make(map[string]bool)
	var out []string
	for _, set := range r.sets {
		if !seen[set.Language()] {
			seen[set.Language()] = true
			out = append(out, set.Language())
		}
	}
	sort.Strings(out)
	return out
}

// RuleIDs returns the IDs of every registered rule, sorted.
func (r *Registry) RuleIDs() []string {
	seen := make(map[string]bool)
	var out []string
	for _, set := range r.sets {
		for _, rule := range set.Rules() {
			if !seen[rule.ID()] {
				seen[rule.ID()] = true
				out = append(out, rule.ID())
			}
		}
	}
	sort.Strings(out)
	return out
}

// LanguageRules describes one registered language for listings.
type LanguageRules struct {
	Language   string
	Extensions []string
	Rules      []Rule
}

// Catalog returns the registered languages with their extensions and rules,
// sorted by language name.
func (r *Registry) Catalog() []LanguageRules {
	byLang := make(map[string]*LanguageRules)
	for ext, set := range r.sets {
		lr, ok := byLang[set.Language()]
		if !ok {
			lr = &LanguageRules{Language: set.Language(), Rules: set.Rules()}
			byLang[set.Language()] = lr
		}
		lr.Extensions = append(lr.Extensions, ext)
	}
	out := make([]LanguageRules, 0, len(byLang))
	for _, lr := range byLang {
		sort.Strings(lr.Extensions)
		out = append(out, *lr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Language < out[j].Language })
	return out
}

// Default builds the registry of every shipped language, honoring opts.
func Default(opts Options) *Registry {
	reg := NewRegistry()
	reg.Register(JavaScript(opts), ".js", ".jsx")
	reg.Register(TypeScript(opts), ".ts", ".tsx")
	reg.Register(Python(opts), ".py")
	reg.Register(Go(opts), ".go")
	reg.Register(Java(opts), ".java")
	reg.Register(Rust(opts), ".rs")
	reg.Register(Ruby(opts), ".rb")
	reg.Register(Shell(opts), ".sh")
	reg.Register(YAML(opts), ".yml", ".yaml")
	reg.Register(JSON(opts), ".json")
	reg.Register(Markdown(opts), ".md")
	return reg
}

// newSet builds a language set with the skipped rules filtered out.
func newSet(language string, opts Options, all ...Rule) *RuleSet {
	var kept []Rule
	for _, r := range all {
		if !opts.skip(r.ID()) {
			kept = append(kept, r)
		}
	}
	return NewRuleSet(language, kept...)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
