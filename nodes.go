package calc

import (
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// name is the source text of a number, constant, or function name.
	name string
	// num is the value of a nodeNum.
	num float64
	// ent is the registry entry resolved for a nodeConst or nodeCall.
	ent *Entry

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // literal num
	nodeConst // ent.Value
	nodeCall  // ent.F(left)

	nodeNeg  // -left
	nodeAdd  // left + right
	nodeSub  // left - right
	nodeMul  // left * right
	nodeDiv  // left / right
	nodeMod  // left % right
	nodePow  // left ^ right
	nodeFact // left!
)

// binsym maps binary node kinds to the operator they print as.
var binsym = [...]string{
	nodeAdd: " + ",
	nodeSub: " - ",
	nodeMul: " * ",
	nodeDiv: " / ",
	nodeMod: " % ",
	nodePow: " ^ ",
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes n fully parenthesized. The output parses back to the same tree.
func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum, nodeConst:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		n.left.fmt(b)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		n.left.fmt(b)
		b.WriteString(binsym[n.kind])
		n.right.fmt(b)
	case nodeFact:
		n.left.fmt(b)
		b.WriteByte('!')
	default:
		panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
