// Package rules holds the stylesheet lint rules.
package rules

import (
	"regexp"

	"github.com/yacobolo/scsslint/internal/colors"
	"github.com/yacobolo/scsslint/internal/lint"
	"github.com/yacobolo/scsslint/internal/scss"
	"github.com/yacobolo/scsslint/internal/textscan"
)

// colorFunction is the helper whose first argument may be a keyword.
const colorFunction = "color"

// Source ranges sometimes run past the value (a trailing ")"), so the
// keyword is taken from the first alphabetic run.
var leadingWord = regexp.MustCompile(`(?i)[a-z]+`)

// ColorKeywordsRule flags color keywords that should be hex literals,
// except as the key passed to color().
type ColorKeywordsRule struct{}

// NewColorKeywordsRule creates the rule.
func NewColorKeywordsRule() *ColorKeywordsRule {
	return &ColorKeywordsRule{}
}

// Name returns the rule identifier.
func (r *ColorKeywordsRule) Name() string {
	return "color-keywords-in-function-call"
}

// Description returns what the rule checks.
func (r *ColorKeywordsRule) Description() string {
	return "Color keywords must be written in hexadecimal form unless passed to color()"
}

// VisitColor checks a color value.
func (r *ColorKeywordsRule) VisitColor(ctx *lint.Context, node *scss.Node) {
	if lint.InFunctionCall(node, colorFunction) {
		return
	}
	r.check(ctx, node, leadingWord.FindString(node.Raw))
}

// VisitString checks every whole word of unquoted text.
func (r *ColorKeywordsRule) VisitString(ctx *lint.Context, node *scss.Node) {
	if lint.IsLiteralString(node) || lint.InFunctionCall(node, colorFunction) {
		return
	}
	for tok := range textscan.Words(textscan.StripQuoted(node.Value)) {
		r.check(ctx, node, tok.Text)
	}
}

func (r *ColorKeywordsRule) check(ctx *lint.Context, node *scss.Node, word string) {
	hex, ok := colors.Lookup(word)
	if !ok {
		return
	}
	ctx.Report(node, "Color `%s` should be written in hexadecimal form as `%s`", word, hex)
}
