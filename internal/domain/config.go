package domain

import (
	"fmt"
	"strings"
)

// SessionConfig describes one run: mode, target, extension allowlist and
// execution knobs. An empty Extensions slice means "every registered
// extension".
type SessionConfig struct {
	Mode       Mode     `json:"mode"`
	TargetPath string   `json:"target"`
	Extensions []string `json:"extensions,omitempty"`
	Jobs       int      `json:"jobs,omitempty"`
	Verbose    bool     `json:"verbose,omitempty"`
}

// Validate checks the configuration before any filesystem access.
func (c SessionConfig) Validate() error {
	// 1. mode must be one of the three session modes
	switch c.Mode {
	case ModeReport, ModeCheck, ModeFix:
	default:
		return &ConfigurationError{Reason: fmt.Sprintf("unknown mode %q", string(c.Mode))}
	}

	// 2. target must be non-empty
	if strings.TrimSpace(c.TargetPath) == "" {
		return &ConfigurationError{Reason: "target path is empty"}
	}

	// 3. extensions must be normalized dot-form
	for _, ext := range c.Extensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") || ext != strings.ToLower(ext) {
			return &ConfigurationError{Reason: fmt.Sprintf("invalid extension %q (expected lowercase dot form, e.g. %q)", ext, ".py")}
		}
	}

	return nil
}

// NormalizeExtensions lowercases entries, prepends the missing dot and drops
// empties, preserving input order.
func NormalizeExtensions(exts []string) []string {
	var out []string
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

// ProjectConfig holds optional per-project tuning loaded from
// .codesweep.yaml at the target root.
type ProjectConfig struct {
	ExcludeDirs []string       `yaml:"exclude_dirs" json:"exclude_dirs,omitempty"`
	SkipRules   []string       `yaml:"skip_rules"   json:"skip_rules,omitempty"`
	LineLength  map[string]int `yaml:"line_length"  json:"line_length,omitempty"`
}

// DefaultProjectConfig returns a zero-value config that changes nothing.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{}
}

// Validate checks the config against the known rule IDs and languages.
func (c ProjectConfig) Validate(knownRules, knownLanguages []string) error {
	// 1. skip_rules entries must name shipped rules
	for _, id := range c.SkipRules {
		if !contains(knownRules, id) {
			return &ConfigurationError{Reason: fmt.Sprintf("unknown rule %q in skip_rules", id)}
		}
	}

	// 2. line_length keys must name shipped languages, values must be positive
	for lang, limit := range c.LineLength {
		if !contains(knownLanguages, lang) {
			return &ConfigurationError{Reason: fmt.Sprintf("unknown language %q in line_length", lang)}
		}
		if limit <= 0 {
			return &ConfigurationError{Reason: fmt.Sprintf("line_length[%q] = %d (must be > 0)", lang, limit)}
		}
	}

	// 3. exclude_dirs entries must be bare directory names, not paths
	for _, dir := range c.ExcludeDirs {
		if dir == "" || strings.ContainsAny(dir, `/\`) {
			return &ConfigurationError{Reason: fmt.Sprintf("exclude_dirs entry %q must be a plain directory name", dir)}
		}
	}

	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
