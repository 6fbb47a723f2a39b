package domain

import "time"

// Severity classifies how serious an issue is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Category groups issues by the kind of problem they describe.
type Category string

const (
	CategoryWhitespace    Category = "whitespace"
	CategoryLineLength    Category = "line-length"
	CategoryDebugOutput   Category = "debug-output"
	CategoryUnsafe        Category = "unsafe-construct"
	CategorySerialization Category = "serialization"
	CategoryConvention    Category = "convention"
	CategoryMarkup        Category = "markup"
	CategoryHeader        Category = "header"
)

// Mode selects what a session does with the issues it finds.
type Mode string

const (
	ModeReport Mode = "report"
	ModeCheck  Mode = "check"
	ModeFix    Mode = "fix"
)

// ModeFromFlags derives the session mode from the --check/--fix flags.
// Requesting both is a configuration error, caught before any file I/O.
func ModeFromFlags(check, fix bool) (Mode, error) {
	if check && fix {
		return "", &ConfigurationError{Reason: "--check and --fix are mutually exclusive"}
	}
	switch {
	case check:
		return ModeCheck, nil
	case fix:
		return ModeFix, nil
	default:
		return ModeReport, nil
	}
}

// Issue represents a single problem found in a file.
type Issue struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Category Category `json:"category"`
	File     string   `json:"file,omitempty"`
	Line     int      `json:"line,omitempty"`
	Column   int      `json:"column,omitempty"`
	Message  string   `json:"message"`
	Fixable  bool     `json:"fixable"`
}

// FileReport holds the outcome of processing one file. In fix mode Issues
// carries only what the fixer could not resolve; FixedCount preserves the
// number of issues that were corrected.
type FileReport struct {
	Path       string  `json:"path"`
	Language   string  `json:"language,omitempty"`
	Issues     []Issue `json:"issues,omitempty"`
	Fixed      bool    `json:"fixed,omitempty"`
	FixedCount int     `json:"fixed_count,omitempty"`
	Failed     bool    `json:"failed,omitempty"`
	Err        string  `json:"error,omitempty"`
}

// Clean reports whether the file had nothing to say: no issues, no rewrite,
// no failure.
func (fr FileReport) Clean() bool {
	return len(fr.Issues) == 0 && !fr.Fixed && !fr.Failed
}

// Counters aggregates session-wide totals. FilesProcessed counts every file
// that reached a rule set, including ones whose read failed; IssuesFound
// includes issues that fix mode resolved.
type Counters struct {
	FilesProcessed int `json:"files_processed"`
	IssuesFound    int `json:"issues_found"`
	FilesFixed     int `json:"files_fixed"`
	FilesErrored   int `json:"files_errored"`
}

// RunReport is the complete result of one session.
type RunReport struct {
	Target     string       `json:"target"`
	Mode       Mode         `json:"mode"`
	CommitHash string       `json:"commit_hash,omitempty"`
	Timestamp  time.Time    `json:"timestamp"`
	Files      []FileReport `json:"files"`
	Counters   Counters     `json:"counters"`
}

// Process exit statuses.
const (
	ExitOK          = 0
	ExitIssuesFound = 1
	ExitFileErrors  = 2
)

// ExitCode maps the report to the process exit status. File-level failures
// dominate; check mode fails on any issue; report and fix modes are
// otherwise informational.
func (r *RunReport) ExitCode() int {
	switch {
	case r.Counters.FilesErrored > 0:
		return ExitFileErrors
	case r.Mode == ModeCheck && r.Counters.IssuesFound > 0:
		return ExitIssuesFound
	default:
		return ExitOK
	}
}

// FixableCount returns how many reported issues a fix run would resolve.
func (r *RunReport) FixableCount() int {
	n := 0
	for _, f := range r.Files {
		for _, issue := range f.Issues {
			if issue.Fixable {
				n++
			}
		}
	}
	return n
}

// Aggregate recomputes the counters from the per-file reports in a single
// pass. It is the only place counters are written, after the parallel phase
// has finished.
func (r *RunReport) Aggregate() {
	var c Counters
	for _, f := range r.Files {
		c.FilesProcessed++
		c.IssuesFound += len(f.Issues) + f.FixedCount
		if f.Fixed {
			c.FilesFixed++
		}
		if f.Failed {
			c.FilesErrored++
		}
	}
	r.Counters = c
}
