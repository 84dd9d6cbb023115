// Package scsslint lints SCSS stylesheets for color and design token usage.
//
// Three rules run over every file:
//
//   - color-keywords-in-function-call: "red" should be written as "#f00"
//     unless it is the key passed to color(red).
//   - color-literals-in-variable: color literals belong in variable
//     declarations and are referenced through the variable elsewhere.
//   - deprecated-variables: retired design token variables such as
//     $next-blue must be replaced by helper functions like color().
//
// # Linting
//
//	result, err := scsslint.Lint(scsslint.LintConfig{
//		Paths: []string{"app/assets/stylesheets/**/*.scss"},
//	})
//
// Lint returns the result even when some files could not be read; err then
// combines the per-file failures.
//
// # CLI Tool
//
//	go install github.com/yacobolo/scsslint/cmd/scsslint@latest
package scsslint
