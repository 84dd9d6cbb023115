// Package lint runs stylesheet rules over an scss syntax tree.
//
// A rule is any value with a name and a description. It opts into the node
// kinds it cares about by implementing the matching visitor interface; the
// Linter walks the tree once and calls every interested rule for each node.
package lint

import "github.com/yacobolo/scsslint/internal/scss"

// Rule is implemented by every lint rule.
type Rule interface {
	// Name is the kebab-case identifier used in configuration and output.
	Name() string
	// Description is a one-line summary of what the rule checks.
	Description() string
}

// ColorVisitor is called for every ColorValue node.
type ColorVisitor interface {
	VisitColor(ctx *Context, node *scss.Node)
}

// StringVisitor is called for every StringValue node.
type StringVisitor interface {
	VisitString(ctx *Context, node *scss.Node)
}

// VariableVisitor is called for every VariableReference node.
type VariableVisitor interface {
	VisitVariable(ctx *Context, node *scss.Node)
}

// VariableDeclarationVisitor is called for every VariableDeclaration node.
// The walk always continues into the declared value afterwards.
type VariableDeclarationVisitor interface {
	VisitVariableDeclaration(ctx *Context, node *scss.Node)
}
