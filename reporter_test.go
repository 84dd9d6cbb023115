package scsslint

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  color: red;",
			column:     10,
			want:       "         ^", // 9 spaces + caret
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\tcolor: red;",
			column:     10,
			want:       "\t\t       ^", // 2 tabs + 7 spaces + caret
		},
		{
			name:       "start of line",
			sourceLine: "$next-blue: #fff;",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func sampleIssues() []Issue {
	return []Issue{
		{
			FromLinter:  "deprecated-variables",
			Text:        "The variable `next-blue` is deprecated. Use the `color()` function instead.",
			Severity:    SeverityError,
			SourceLines: []string{"  border: $next-blue;"},
			Pos:         IssuePos{Filename: "b.scss", Line: 2, Column: 11},
		},
		{
			FromLinter:  "color-keywords-in-function-call",
			Text:        "Color `red` should be written in hexadecimal form as `#f00`",
			Severity:    SeverityWarning,
			SourceLines: []string{"a { color: red; }"},
			Pos:         IssuePos{Filename: "a.scss", Line: 1, Column: 12},
		},
		{
			FromLinter:  "color-literals-in-variable",
			Text:        "Color literals like `red` should only be used in variable declarations; they should be referred to via variable everywhere else.",
			Severity:    SeverityWarning,
			SourceLines: []string{"a { color: red; }"},
			Pos:         IssuePos{Filename: "a.scss", Line: 1, Column: 12},
		},
	}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf, printLines: true, printLinterName: true}

	reporter.PrintIssues(sampleIssues())

	want := "a.scss:1:12: Color `red` should be written in hexadecimal form as `#f00` (color-keywords-in-function-call)\n" +
		"\ta { color: red; }\n" +
		"\t           ^\n" +
		"a.scss:1:12: Color literals like `red` should only be used in variable declarations; they should be referred to via variable everywhere else. (color-literals-in-variable)\n" +
		"\ta { color: red; }\n" +
		"\t           ^\n" +
		"b.scss:2:11: error: The variable `next-blue` is deprecated. Use the `color()` function instead. (deprecated-variables)\n" +
		"\t  border: $next-blue;\n" +
		"\t          ^\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintIssues_KeepsCallerOrder(t *testing.T) {
	issues := sampleIssues()
	reporter := &Reporter{w: io.Discard}

	reporter.PrintIssues(issues)

	assert.Equal(t, sampleIssues(), issues)
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	assert.True(t, shouldUseColors(LintConfig{UseColors: true}))

	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, shouldUseColors(LintConfig{}))

	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "true")
	assert.True(t, shouldUseColors(LintConfig{}))
}

func TestPrintIssues_Compact(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintIssues(sampleIssues()[1:2])

	assert.Equal(t, "a.scss:1:12: Color `red` should be written in hexadecimal form as `#f00`\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result LintResult
		want   string
	}{
		{
			name:   "no issues",
			result: LintResult{FilesScanned: 4},
			want:   "\nNo issues found (4 files scanned)\n",
		},
		{
			name:   "mixed severities",
			result: LintResult{Issues: sampleIssues()},
			want: "\n3 issues (1 error, 2 warnings):\n" +
				"* color-keywords-in-function-call: 1\n" +
				"* color-literals-in-variable: 1\n" +
				"* deprecated-variables: 1\n",
		},
		{
			name:   "truncated",
			result: LintResult{Issues: sampleIssues()[1:2], TruncatedCount: 2},
			want: "\n1 issue (2 issues truncated):\n" +
				"* color-keywords-in-function-call: 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			(&Reporter{w: &buf}).PrintSummary(tt.result)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintStatistics(t *testing.T) {
	var buf bytes.Buffer
	(&Reporter{w: &buf}).PrintStatistics(LintResult{FilesScanned: 2, FilesSkipped: 1, ErrorCount: 1, Issues: sampleIssues()})

	out := buf.String()
	assert.Contains(t, out, "SCSS Lint Statistics")
	assert.Contains(t, out, "Files Scanned:     2")
	assert.Contains(t, out, "Files Skipped:     1")
	assert.Contains(t, out, "Issues:            3")
}

func TestRenderStyle(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
	assert.Equal(t, "2 files", pluralizeCount(2, "file", "files"))
}

func TestDetermineOutputFormat(t *testing.T) {
	assert.Equal(t, OutputIssues, DetermineOutputFormat(""))
	assert.Equal(t, OutputIssues, DetermineOutputFormat("issues"))
	assert.Equal(t, OutputIssues, DetermineOutputFormat("text"))
	assert.Equal(t, OutputJSON, DetermineOutputFormat("json"))
	assert.Equal(t, OutputIssues, DetermineOutputFormat("markdown"))
}

func TestWriteOutput_JSON(t *testing.T) {
	result := &LintResult{Issues: sampleIssues(), FilesScanned: 2, TruncatedCount: 1}

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, result, OutputJSON, LintConfig{}))

	var got JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "1.0", got.Version)
	assert.NotEmpty(t, got.Timestamp)
	assert.Equal(t, JSONSummary{
		TotalIssues:  3,
		Errors:       1,
		Warnings:     2,
		FilesScanned: 2,
		Truncated:    1,
		ByRule: map[string]int{
			"color-keywords-in-function-call": 1,
			"color-literals-in-variable":      1,
			"deprecated-variables":            1,
		},
	}, got.Summary)

	require.Len(t, got.Issues, 3)
	assert.Equal(t, JSONIssue{
		File:     "b.scss",
		Line:     2,
		Column:   11,
		Severity: "error",
		Message:  "The variable `next-blue` is deprecated. Use the `color()` function instead.",
		Linter:   "deprecated-variables",
		Source:   "  border: $next-blue;",
	}, got.Issues[0])
}

func TestWriteOutput_Issues(t *testing.T) {
	result := &LintResult{Issues: sampleIssues()[:1], FilesScanned: 1}

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, result, OutputIssues, LintConfig{PrintLinterName: true}))

	out := buf.String()
	assert.Contains(t, out, "b.scss:2:11:")
	assert.Contains(t, out, "(deprecated-variables)")
	assert.Contains(t, out, "1 issue:")
}

func TestWriteOutput_DoesNotReorderResult(t *testing.T) {
	result := &LintResult{Issues: sampleIssues(), FilesScanned: 2}

	require.NoError(t, WriteOutput(io.Discard, result, OutputIssues, LintConfig{}))

	assert.Equal(t, sampleIssues(), result.Issues)
}
