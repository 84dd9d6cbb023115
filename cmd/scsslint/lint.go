package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/scsslint"
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Lint SCSS files",
	Long: `Check SCSS files for color keywords, color literals outside variable
declarations and deprecated variables. Paths are doublestar glob patterns;
files ignored by .gitignore are skipped.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) > 0 {
			if err := k.Set("lint.paths", args); err != nil {
				return fmt.Errorf("setting paths: %w", err)
			}
		}
		return runLint()
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", scsslint.DefaultPaths, "File patterns to lint")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|json")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (rule-name) suffix on issues")
	f.StringSlice("enable", nil, "Only run these rules")
	f.StringSlice("disable", nil, "Skip these rules")
}

// runLint is shared between `scsslint lint` and the bare `scsslint` command.
func runLint() error {
	log := newLogger(getBool("verbose", false), getBool("quiet", false))
	defer func() { _ = log.Sync() }()
	return lintTo(os.Stdout, log)
}

// lintTo lints with the loaded configuration and writes the report to w.
func lintTo(w io.Writer, log *zap.Logger) error {
	quiet := getBool("quiet", false)
	verbose := getBool("verbose", false)

	lintConfig := buildLintConfig()
	lintConfig.Logger = log

	result, err := scsslint.Lint(lintConfig)
	if result == nil {
		return fmt.Errorf("lint failed: %w", err)
	}
	for _, e := range multierr.Errors(err) {
		log.Error("file not linted", zap.Error(e))
	}

	format := scsslint.DetermineOutputFormat(getString("lint.output-format", ""))
	if !quiet {
		if werr := scsslint.WriteOutput(w, result, format, lintConfig); werr != nil {
			return werr
		}
		if verbose && format == scsslint.OutputIssues {
			scsslint.NewReporter(w, lintConfig).PrintStatistics(*result)
		}
	}

	if code := exitCode(result, lintConfig.Strict, err); code != 0 {
		return &exitError{code: code}
	}
	return nil
}

// exitCode implements the "soft gate": only errors fail the build unless
// strict mode is on, in which case any issue does. Files that could not be
// linted always fail.
func exitCode(result *scsslint.LintResult, strict bool, runErr error) int {
	switch {
	case runErr != nil:
		return 1
	case strict && len(result.Issues) > 0:
		return 1
	case result.ErrorCount > 0:
		return 1
	}
	return 0
}
