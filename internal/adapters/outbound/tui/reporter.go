package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codesweep/codesweep/internal/domain"
)

// Options controls reporter output. Color off renders plain text regardless
// of terminal capabilities; Verbose adds a line for every clean file.
type Options struct {
	Color   bool
	Verbose bool
}

// Reporter renders a RunReport for the terminal. All styles are built by the
// constructor, so two reporters with different options never interfere.
type Reporter struct {
	opts Options

	title   lipgloss.Style
	dim     lipgloss.Style
	faint   lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
	file    lipgloss.Style
	hint    lipgloss.Style
	errTag  lipgloss.Style
	warnTag lipgloss.Style
	infoTag lipgloss.Style
}

func NewReporter(opts Options) *Reporter {
	r := &Reporter{opts: opts}

	plain := lipgloss.NewStyle()
	r.title, r.dim, r.faint = plain, plain, plain
	r.pass, r.fail, r.file, r.hint = plain, plain, plain, plain
	r.errTag, r.warnTag, r.infoTag = plain, plain, plain
	if !opts.Color {
		return r
	}

	// Warm palette.
	var (
		accent  = lipgloss.Color("#D97706") // amber
		fg      = lipgloss.Color("#E8E6E3") // warm light gray
		dim     = lipgloss.Color("#6B7280") // muted gray
		faint   = lipgloss.Color("#3F3F46") // very dim
		success = lipgloss.Color("#22C55E") // green
		danger  = lipgloss.Color("#EF4444") // red
		warning = lipgloss.Color("#F59E0B") // amber-yellow
		info    = lipgloss.Color("#8B949E") // soft blue-gray
	)

	r.title = lipgloss.NewStyle().Bold(true).Foreground(accent)
	r.dim = lipgloss.NewStyle().Foreground(dim)
	r.faint = lipgloss.NewStyle().Foreground(faint)
	r.pass = lipgloss.NewStyle().Foreground(success)
	r.fail = lipgloss.NewStyle().Foreground(danger)
	r.file = lipgloss.NewStyle().Foreground(fg)
	r.hint = lipgloss.NewStyle().Foreground(dim).Italic(true)
	r.errTag = lipgloss.NewStyle().Foreground(danger).Bold(true)
	r.warnTag = lipgloss.NewStyle().Foreground(warning).Bold(true)
	r.infoTag = lipgloss.NewStyle().Foreground(info)
	return r
}

// Render formats the full report: a header, per-file findings, a counter
// summary and a fix hint when fixable issues remain.
func (r *Reporter) Render(report *domain.RunReport) string {
	var b strings.Builder

	b.WriteString("\n")
	header := r.title.Render("codesweep") + "  " + r.dim.Render(string(report.Mode)+" · "+report.Target)
	if report.CommitHash != "" {
		header += "  " + r.faint.Render(report.CommitHash)
	}
	b.WriteString("  " + header + "\n\n")

	rendered := false
	for _, f := range report.Files {
		rendered = r.renderFile(&b, f) || rendered
	}

	c := report.Counters
	if !rendered && c.IssuesFound == 0 && c.FilesErrored == 0 {
		b.WriteString("  " + r.pass.Render("✓") + " " + r.dim.Render("no issues found") + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + r.faint.Render(strings.Repeat("─", 44)) + "\n")
	r.renderCounter(&b, "files processed", c.FilesProcessed, r.dim)
	r.renderCounter(&b, "issues found", c.IssuesFound, r.dim)
	r.renderCounter(&b, "files fixed", c.FilesFixed, r.pass)
	r.renderCounter(&b, "files errored", c.FilesErrored, r.fail)

	if report.Mode != domain.ModeFix {
		if n := report.FixableCount(); n > 0 {
			noun := "issues"
			if n == 1 {
				noun = "issue"
			}
			fmt.Fprintf(&b, "\n  %s\n", r.hint.Render(fmt.Sprintf("%d %s fixable with --fix", n, noun)))
		}
	}

	return b.String()
}

// renderFile writes the block for one file and reports whether anything was
// written.
func (r *Reporter) renderFile(b *strings.Builder, f domain.FileReport) bool {
	switch {
	case f.Failed:
		fmt.Fprintf(b, "  %s %s  %s\n", r.fail.Render("✗"), r.file.Render(f.Path), r.dim.Render(f.Err))
	case f.Fixed:
		noun := "issues"
		if f.FixedCount == 1 {
			noun = "issue"
		}
		fmt.Fprintf(b, "  %s %s  %s\n",
			r.pass.Render("✓"), r.file.Render(f.Path),
			r.dim.Render(fmt.Sprintf("fixed %d %s", f.FixedCount, noun)))
	case len(f.Issues) > 0:
		fmt.Fprintf(b, "  %s\n", r.file.Render(f.Path))
	default:
		if r.opts.Verbose {
			fmt.Fprintf(b, "  %s %s\n", r.dim.Render("○"), r.dim.Render(f.Path))
			return true
		}
		return false
	}

	for _, issue := range f.Issues {
		fmt.Fprintf(b, "    %s %s  %s  %s\n",
			r.dim.Render(padRight(position(issue), 7)),
			r.severityTag(issue.Severity),
			issue.Message,
			r.faint.Render(issue.Rule))
	}
	return true
}

func (r *Reporter) renderCounter(b *strings.Builder, label string, n int, accent lipgloss.Style) {
	value := strconv.Itoa(n)
	if n > 0 {
		value = accent.Render(value)
	}
	fmt.Fprintf(b, "  %s %s\n", r.dim.Render(padRight(label, 17)), value)
}

func (r *Reporter) severityTag(severity domain.Severity) string {
	switch severity {
	case domain.SeverityError:
		return r.errTag.Render("error")
	case domain.SeverityWarning:
		return r.warnTag.Render("warn ")
	default:
		return r.infoTag.Render("info ")
	}
}

// position formats the issue location. File-scoped issues carry no line.
func position(issue domain.Issue) string {
	switch {
	case issue.Line > 0 && issue.Column > 0:
		return fmt.Sprintf("%d:%d", issue.Line, issue.Column)
	case issue.Line > 0:
		return strconv.Itoa(issue.Line)
	default:
		return "-"
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
