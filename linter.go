package scsslint

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/scsslint/internal/lint"
	"github.com/yacobolo/scsslint/internal/lint/rules"
	"github.com/yacobolo/scsslint/internal/scss"
)

// LintConfig holds linting configuration
type LintConfig struct {
	Paths      []string          // Patterns to scan (e.g., "app/**/*.scss")
	Enable     []string          // Rules to run; empty means all
	Disable    []string          // Rules to skip
	Severities map[string]string // Rule name -> "error" | "warning" | "info"
	Strict     bool              // Exit with code 1 on any issue

	// Output configuration
	MaxSameIssues    int  // 0 = unlimited (default)
	PrintIssuedLines bool // Show source lines with issues (default: true)
	PrintLinterName  bool // Show (rule-name) suffix (default: true)
	UseColors        bool // Force color output (default: auto-detect)

	Logger *zap.Logger // nil disables logging
}

// LintResult contains linting results
type LintResult struct {
	Issues         []Issue // All issues, in file then document order
	FilesScanned   int     // Files parsed and linted
	FilesSkipped   int     // Files excluded by .gitignore
	ErrorCount     int     // Issues with error severity
	TruncatedCount int     // Issues removed by MaxSameIssues
}

// Lint runs the selected rules over every file matched by config.Paths.
// A file that cannot be read or parsed does not stop the run: the result
// covers every other file and the returned error combines the failures.
func Lint(config LintConfig) (*LintResult, error) {
	log := config.logger()

	if err := config.validate(); err != nil {
		return nil, err
	}
	selected, err := rules.Select(config.Enable, config.Disable)
	if err != nil {
		return nil, err
	}

	files, stats, err := DiscoverFiles(config.Paths)
	if err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}
	log.Debug("discovered files",
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("skipped", stats.FilesSkipped))

	linter := lint.New(log, selected...)
	result := &LintResult{FilesSkipped: stats.FilesSkipped}

	var errs error
	for _, file := range files {
		// #nosec G304 - path comes from configured glob patterns
		src, err := os.ReadFile(file)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("read %s: %w", file, err))
			continue
		}
		issues, err := lintFile(linter, file, src, config)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		result.FilesScanned++
		result.Issues = append(result.Issues, issues...)
	}

	result.Issues, result.TruncatedCount = limitSameIssues(result.Issues, config.MaxSameIssues)
	result.ErrorCount = countSeverity(result.Issues, SeverityError)

	log.Info("lint finished",
		zap.Int("files", result.FilesScanned),
		zap.Int("issues", len(result.Issues)),
		zap.Int("failed", len(multierr.Errors(errs))))
	return result, errs
}

// LintSource lints a single in-memory stylesheet. filename is only used
// for issue positions.
func LintSource(filename string, src []byte, config LintConfig) ([]Issue, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	selected, err := rules.Select(config.Enable, config.Disable)
	if err != nil {
		return nil, err
	}
	return lintFile(lint.New(config.logger(), selected...), filename, src, config)
}

func lintFile(linter *lint.Linter, filename string, src []byte, config LintConfig) ([]Issue, error) {
	tree, err := scss.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	findings := linter.Run(tree)
	lines := strings.Split(string(src), "\n")
	issues := make([]Issue, 0, len(findings))
	for _, f := range findings {
		issues = append(issues, newIssue(filename, lines, f, config.severity(f.Rule)))
	}
	return issues, nil
}

// newIssue converts a rule finding into a golangci-style issue.
func newIssue(filename string, lines []string, f lint.Finding, severity string) Issue {
	start, end := f.Node.Range.Start, f.Node.Range.End
	issue := Issue{
		FromLinter: f.Rule,
		Text:       f.Message,
		Severity:   severity,
		Pos: IssuePos{
			Filename: filename,
			Line:     start.Line,
			Column:   start.Column,
		},
	}
	if start.Line > 0 {
		issue.LineRange = &LineRange{From: start.Line, To: max(start.Line, end.Line)}
	}
	if start.Line > 0 && start.Line <= len(lines) {
		issue.SourceLines = []string{strings.TrimRight(lines[start.Line-1], "\r")}
	}
	return issue
}

// limitSameIssues keeps at most limit issues with identical text.
func limitSameIssues(issues []Issue, limit int) ([]Issue, int) {
	if limit <= 0 {
		return issues, 0
	}
	seen := make(map[string]int)
	kept := issues[:0:0]
	for _, issue := range issues {
		seen[issue.Text]++
		if seen[issue.Text] <= limit {
			kept = append(kept, issue)
		}
	}
	return kept, len(issues) - len(kept)
}

func countSeverity(issues []Issue, severity string) int {
	n := 0
	for _, issue := range issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}

func (c LintConfig) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c LintConfig) severity(rule string) string {
	s, ok := c.Severities[rule]
	if !ok {
		return DefaultSeverity
	}
	if s == "info" {
		return SeverityInfo
	}
	return s
}

func (c LintConfig) validate() error {
	known := rules.Names()
	for rule, s := range c.Severities {
		if !validSeverity(s) {
			return fmt.Errorf("invalid severity %q for rule %s (want error, warning or info)", s, rule)
		}
		if !slices.Contains(known, rule) {
			return fmt.Errorf("severity configured for unknown rule %q", rule)
		}
	}
	return nil
}
