// Package scss holds the syntax tree the lint rules operate on.
//
// Nodes carry a non-owning back-reference to their parent so rules can look
// at the surrounding construct. Trees are normally built by Parse, but tests
// and other front ends can assemble them with New and Append.
package scss

import "fmt"

// Kind identifies the syntactic construct a node represents.
type Kind int

// Node kinds.
const (
	KindStylesheet Kind = iota
	KindRuleSet
	KindAtRule
	KindDeclaration
	KindVariableDeclaration
	KindLiteral
	KindColorValue
	KindStringValue
	KindNumberValue
	KindVariableReference
	KindFunctionCall
	KindListExpression
	KindInterpolation
)

var kindNames = map[Kind]string{
	KindStylesheet:          "Stylesheet",
	KindRuleSet:             "RuleSet",
	KindAtRule:              "AtRule",
	KindDeclaration:         "Declaration",
	KindVariableDeclaration: "VariableDeclaration",
	KindLiteral:             "Literal",
	KindColorValue:          "ColorValue",
	KindStringValue:         "StringValue",
	KindNumberValue:         "NumberValue",
	KindVariableReference:   "VariableReference",
	KindFunctionCall:        "FunctionCall",
	KindListExpression:      "ListExpression",
	KindInterpolation:       "Interpolation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Position is a location in the source. Line and Column are 1-based,
// Column counts bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Range spans [Start, End) in the source.
type Range struct {
	Start Position
	End   Position
}

// Node is one element of the syntax tree.
type Node struct {
	Kind     Kind
	Range    Range
	Parent   *Node
	Children []*Node

	// Name is the variable name (without "$") for variable references and
	// declarations, the callee for function calls, the property for
	// declarations, the keyword (without "@") for at-rules and the selector
	// for rule sets.
	Name string

	// Value is the decoded payload of leaf values: string content without
	// quotes, the color or number as written.
	Value string

	// Raw is the exact source text of leaf nodes.
	Raw string

	// Quoted reports whether a StringValue was written with quotes.
	Quoted bool

	// Separator is "," or " " for list expressions.
	Separator string
}

// New returns a detached node of the given kind.
func New(kind Kind) *Node {
	return &Node{Kind: kind}
}

// Append attaches children to n and returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.Parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// Ancestor returns the n-th strict ancestor (1 = parent, 2 = grandparent)
// or nil when the chain is shorter than n.
func (n *Node) Ancestor(depth int) *Node {
	if n == nil || depth < 1 {
		return nil
	}
	cur := n
	for i := 0; i < depth; i++ {
		cur = cur.Parent
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Is reports whether n is non-nil and of the given kind.
func (n *Node) Is(kind Kind) bool {
	return n != nil && n.Kind == kind
}

// Root walks up to the top of the parent chain.
func (n *Node) Root() *Node {
	if n == nil {
		return nil
	}
	cur := n
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

func (n *Node) String() string {
	switch n.Kind {
	case KindVariableReference, KindVariableDeclaration:
		return fmt.Sprintf("%s($%s)", n.Kind, n.Name)
	case KindFunctionCall, KindDeclaration, KindAtRule, KindRuleSet:
		return fmt.Sprintf("%s(%s)", n.Kind, n.Name)
	case KindColorValue, KindStringValue, KindNumberValue:
		return fmt.Sprintf("%s(%s)", n.Kind, n.Raw)
	}
	return n.Kind.String()
}

// Convenience constructors for leaf values. Each returns the value wrapped
// in a Literal, the shape the parser produces.

// Color returns Literal(ColorValue) for a keyword or hex literal.
func Color(raw string) *Node {
	return literal(&Node{Kind: KindColorValue, Value: raw, Raw: raw})
}

// Ident returns Literal(StringValue) for unquoted text.
func Ident(text string) *Node {
	return literal(&Node{Kind: KindStringValue, Value: text, Raw: text})
}

// Quoted returns Literal(StringValue) for a double-quoted string.
func Quoted(text string) *Node {
	return literal(&Node{Kind: KindStringValue, Value: text, Raw: `"` + text + `"`, Quoted: true})
}

// Number returns Literal(NumberValue).
func Number(raw string) *Node {
	return literal(&Node{Kind: KindNumberValue, Value: raw, Raw: raw})
}

// Variable returns a VariableReference to $name.
func Variable(name string) *Node {
	return &Node{Kind: KindVariableReference, Name: name, Raw: "$" + name}
}

// Call returns a FunctionCall with the given arguments.
func Call(name string, args ...*Node) *Node {
	return (&Node{Kind: KindFunctionCall, Name: name}).Append(args...)
}

// VarDecl returns a VariableDeclaration of $name with the given value.
func VarDecl(name string, value *Node) *Node {
	return (&Node{Kind: KindVariableDeclaration, Name: name}).Append(value)
}

// Decl returns a property Declaration.
func Decl(property string, value *Node) *Node {
	return (&Node{Kind: KindDeclaration, Name: property}).Append(value)
}

// List returns a ListExpression joined by sep.
func List(sep string, items ...*Node) *Node {
	return (&Node{Kind: KindListExpression, Separator: sep}).Append(items...)
}

// Sheet returns a Stylesheet root holding the given statements.
func Sheet(items ...*Node) *Node {
	return (&Node{Kind: KindStylesheet}).Append(items...)
}

func literal(v *Node) *Node {
	return (&Node{Kind: KindLiteral, Raw: v.Raw}).Append(v)
}
