package lint

import (
	"fmt"

	"github.com/yacobolo/scsslint/internal/scss"
)

// Finding is one rule violation. Node is only used for its location.
type Finding struct {
	Rule    string
	Node    *scss.Node
	Message string
}

// Pos returns the start of the offending node.
func (f Finding) Pos() scss.Position {
	if f.Node == nil {
		return scss.Position{}
	}
	return f.Node.Range.Start
}

func (f Finding) String() string {
	pos := f.Pos()
	return fmt.Sprintf("%d:%d [%s] %s", pos.Line, pos.Column, f.Rule, f.Message)
}
