package ast

import (
	"fmt"
	"strings"

	"github.com/eap-lang/eap/pkg/token"
)

// IntegerLiteral is an integer literal value.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) Pos() token.Position  { return il.Token.Pos }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }

// RealLiteral is a floating-point literal value.
type RealLiteral struct {
	Token token.Token
	Value float64
}

func (rl *RealLiteral) expressionNode()     {}
func (rl *RealLiteral) Pos() token.Position { return rl.Token.Pos }
func (rl *RealLiteral) String() string      { return rl.Token.Literal }

// StringLiteral is a double-quoted string literal.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()     {}
func (sl *StringLiteral) Pos() token.Position { return sl.Token.Pos }
func (sl *StringLiteral) String() string      { return fmt.Sprintf("%q", sl.Value) }

// BooleanLiteral is ΑΛΗΘΗΣ/TRUE or ΨΕΥΔΗΣ/FALSE.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()     {}
func (bl *BooleanLiteral) Pos() token.Position { return bl.Token.Pos }
func (bl *BooleanLiteral) String() string      { return bl.Token.Literal }

// BinaryExpr is a binary operation (arithmetic, comparison, or logical).
type BinaryExpr struct {
	Token    token.Token // operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (be *BinaryExpr) expressionNode()     {}
func (be *BinaryExpr) Pos() token.Position { return be.Token.Pos }
func (be *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", be.Left.String(), be.Operator, be.Right.String())
}

// UnaryExpr is a unary operation: -x or NOT x.
type UnaryExpr struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (ue *UnaryExpr) expressionNode()     {}
func (ue *UnaryExpr) Pos() token.Position { return ue.Token.Pos }
func (ue *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", ue.Operator, ue.Right.String())
}

// GroupedExpr is a parenthesized expression, kept distinct from its inner
// expression only so String() can round-trip the parentheses.
type GroupedExpr struct {
	Token token.Token // '('
	Inner Expression
}

func (ge *GroupedExpr) expressionNode()     {}
func (ge *GroupedExpr) Pos() token.Position { return ge.Token.Pos }
func (ge *GroupedExpr) String() string      { return "(" + ge.Inner.String() + ")" }

// ArrayAccess indexes an array identifier with one expression per
// dimension: a[i, j, ...].
type ArrayAccess struct {
	Token   token.Token // '['
	Name    *Identifier
	Indices []Expression
}

func (aa *ArrayAccess) expressionNode()     {}
func (aa *ArrayAccess) Pos() token.Position { return aa.Token.Pos }
func (aa *ArrayAccess) String() string {
	parts := make([]string, len(aa.Indices))
	for i, idx := range aa.Indices {
		parts[i] = idx.String()
	}
	return fmt.Sprintf("%s[%s]", aa.Name.Value, strings.Join(parts, ", "))
}

// Call is a function/procedure invocation, used both as an expression
// (function call) and, via IsStatement, as a bare statement-position call.
type Call struct {
	Token       token.Token // '('
	Callee      *Identifier
	Arguments   []Expression
	IsStatement bool
}

func (c *Call) expressionNode()     {}
func (c *Call) statementNode()      {}
func (c *Call) Pos() token.Position { return c.Token.Pos }
func (c *Call) String() string {
	parts := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee.Value, strings.Join(parts, ", "))
}
