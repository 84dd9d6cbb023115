package lint

import (
	"fmt"

	"github.com/yacobolo/scsslint/internal/scss"
)

// Context is handed to a rule for each node it visits. It records findings
// for the current run on behalf of that rule.
type Context struct {
	rule     string
	findings *[]Finding
}

// Report records a finding against node.
func (c *Context) Report(node *scss.Node, format string, args ...any) {
	*c.findings = append(*c.findings, Finding{
		Rule:    c.rule,
		Node:    node,
		Message: fmt.Sprintf(format, args...),
	})
}

// Rule is the name of the rule the context reports for.
func (c *Context) Rule() string {
	return c.rule
}

// InFunctionCall reports whether the node two levels up is a call to the
// named function. Only that fixed depth is inspected: a value nested deeper
// inside the call's arguments does not count.
func InFunctionCall(node *scss.Node, name string) bool {
	call := node.Ancestor(2)
	return call.Is(scss.KindFunctionCall) && call.Name == name
}

// InVariableDeclarationValue reports whether node is the literal value of
// a variable declaration, as in "$primary: #fff;".
func InVariableDeclarationValue(node *scss.Node) bool {
	parent := node.Ancestor(1)
	return parent.Is(scss.KindLiteral) && parent.Parent.Is(scss.KindVariableDeclaration)
}

// IsLiteralString reports whether a string node was written with a leading
// quote in the source.
func IsLiteralString(node *scss.Node) bool {
	if node == nil {
		return false
	}
	if node.Raw != "" {
		return node.Raw[0] == '"' || node.Raw[0] == '\''
	}
	return node.Quoted
}
