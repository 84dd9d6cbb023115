package rules

import (
	"regexp"

	"github.com/yacobolo/scsslint/internal/colors"
	"github.com/yacobolo/scsslint/internal/lint"
	"github.com/yacobolo/scsslint/internal/scss"
	"github.com/yacobolo/scsslint/internal/textscan"
)

var literalPattern = regexp.MustCompile(`(?i)#?[a-z0-9]+`)

// ColorLiteralsRule requires color literals to live in variable
// declarations and be referenced through the variable everywhere else.
type ColorLiteralsRule struct{}

// NewColorLiteralsRule creates the rule.
func NewColorLiteralsRule() *ColorLiteralsRule {
	return &ColorLiteralsRule{}
}

// Name returns the rule identifier.
func (r *ColorLiteralsRule) Name() string {
	return "color-literals-in-variable"
}

// Description returns what the rule checks.
func (r *ColorLiteralsRule) Description() string {
	return "Color literals may only appear in variable declarations or color() calls"
}

// VisitColor checks a color value.
func (r *ColorLiteralsRule) VisitColor(ctx *lint.Context, node *scss.Node) {
	if r.exempt(node) {
		return
	}
	if color := literalPattern.FindString(node.Raw); colors.IsColor(color) {
		r.report(ctx, node, color)
	}
}

// VisitString checks every hex run or word of unquoted text. Quoted
// strings are data, not color references.
func (r *ColorLiteralsRule) VisitString(ctx *lint.Context, node *scss.Node) {
	if lint.IsLiteralString(node) || r.exempt(node) {
		return
	}
	for tok := range textscan.ColorCandidates(textscan.StripQuoted(node.Value)) {
		if colors.IsColor(tok.Text) {
			r.report(ctx, node, tok.Text)
		}
	}
}

func (r *ColorLiteralsRule) exempt(node *scss.Node) bool {
	return lint.InVariableDeclarationValue(node) || lint.InFunctionCall(node, colorFunction)
}

func (r *ColorLiteralsRule) report(ctx *lint.Context, node *scss.Node, color string) {
	ctx.Report(node, "Color literals like `%s` should only be used in variable declarations; "+
		"they should be referred to via variable everywhere else.", color)
}
