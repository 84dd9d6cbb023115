package lint

import (
	"go.uber.org/zap"

	"github.com/yacobolo/scsslint/internal/scss"
)

// Linter dispatches syntax tree nodes to rules. It holds no per-run state,
// so one Linter can serve any number of runs.
type Linter struct {
	rules []Rule
	log   *zap.Logger
}

// New creates a Linter for the given rules. A nil logger is replaced by a
// no-op one.
func New(log *zap.Logger, rules ...Rule) *Linter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Linter{rules: rules, log: log.Named("lint")}
}

// Rules returns the registered rules in registration order.
func (l *Linter) Rules() []Rule {
	return l.rules
}

// Run walks root in document pre-order and returns the findings in the
// order they were reported.
func (l *Linter) Run(root *scss.Node) []Finding {
	findings := make([]Finding, 0)
	contexts := make([]*Context, len(l.rules))
	for i, r := range l.rules {
		contexts[i] = &Context{rule: r.Name(), findings: &findings}
	}

	visited := 0
	scss.Walk(root, func(n *scss.Node) bool {
		visited++
		for i, r := range l.rules {
			dispatch(r, contexts[i], n)
		}
		return true
	})

	l.log.Debug("lint run complete",
		zap.Int("nodes", visited),
		zap.Int("rules", len(l.rules)),
		zap.Int("findings", len(findings)))
	return findings
}

// dispatch calls the visitor method of r matching the node kind, if r
// implements it. Kinds no rule handles are a no-op.
func dispatch(r Rule, ctx *Context, n *scss.Node) {
	switch n.Kind {
	case scss.KindColorValue:
		if v, ok := r.(ColorVisitor); ok {
			v.VisitColor(ctx, n)
		}
	case scss.KindStringValue:
		if v, ok := r.(StringVisitor); ok {
			v.VisitString(ctx, n)
		}
	case scss.KindVariableReference:
		if v, ok := r.(VariableVisitor); ok {
			v.VisitVariable(ctx, n)
		}
	case scss.KindVariableDeclaration:
		if v, ok := r.(VariableDeclarationVisitor); ok {
			v.VisitVariableDeclaration(ctx, n)
		}
	}
}
