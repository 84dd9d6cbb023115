package scsslint

import (
	"fmt"
	"io"
)

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows issues in golangci-lint format followed by a summary
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from the configured
// value. Unknown or empty values fall back to the default.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "issues", "text":
		return OutputIssues
	case "json":
		return OutputJSON
	default:
		return DetermineDefaultOutputFormat()
	}
}

// DetermineDefaultOutputFormat returns the default output format
// Following golangci-lint's UX: issues only by default
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) error {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
	return nil
}
