package rules

import (
	"regexp"

	"github.com/yacobolo/scsslint/internal/lint"
	"github.com/yacobolo/scsslint/internal/scss"
)

// deprecation maps retired token names to the function replacing them.
type deprecation struct {
	pattern  *regexp.Regexp
	function string
}

// Checked in order; the first match wins.
var deprecations = []deprecation{
	{regexp.MustCompile(`next-(black|white|slate|sky|blue|green|yellow|orange|red|teal|purple)`), "color()"},
	{regexp.MustCompile(`default_box_shadow|next-box-shadow-default`), "shadow()"},
	{regexp.MustCompile(`next-border-radius-default`), "border-radius()"},
	{regexp.MustCompile(`next-border`), "border()"},
}

// DeprecatedVariablesRule flags uses and definitions of retired design
// token variables.
type DeprecatedVariablesRule struct{}

// NewDeprecatedVariablesRule creates the rule.
func NewDeprecatedVariablesRule() *DeprecatedVariablesRule {
	return &DeprecatedVariablesRule{}
}

// Name returns the rule identifier.
func (r *DeprecatedVariablesRule) Name() string {
	return "deprecated-variables"
}

// Description returns what the rule checks.
func (r *DeprecatedVariablesRule) Description() string {
	return "Retired design token variables must be replaced by their helper functions"
}

// VisitVariable checks a variable reference.
func (r *DeprecatedVariablesRule) VisitVariable(ctx *lint.Context, node *scss.Node) {
	r.check(ctx, node)
}

// VisitVariableDeclaration checks the declared name. The value is visited
// separately by the walk.
func (r *DeprecatedVariablesRule) VisitVariableDeclaration(ctx *lint.Context, node *scss.Node) {
	r.check(ctx, node)
}

func (r *DeprecatedVariablesRule) check(ctx *lint.Context, node *scss.Node) {
	for _, d := range deprecations {
		if d.pattern.MatchString(node.Name) {
			ctx.Report(node, "The variable `%s` is deprecated. Use the `%s` function instead.", node.Name, d.function)
			return
		}
	}
}
