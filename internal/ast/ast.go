// Package ast defines the abstract syntax tree produced by internal/parser
// and walked by internal/interp.
package ast

import (
	"strings"

	"github.com/eap-lang/eap/pkg/token"
)

// Node is implemented by every AST node.
type Node interface {
	Pos() token.Position
	String() string
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Program is the root node: a name, declaration blocks, and a body.
type Program struct {
	Token      token.Token // the ALGORITHM token
	Name       string
	Constants  []*ConstantDecl
	Variables  []*VariableDecl
	Functions  []*FunctionDecl
	Procedures []*ProcedureDecl
	Body       []Statement
}

func (p *Program) Pos() token.Position { return p.Token.Pos }
func (p *Program) String() string {
	var b strings.Builder
	b.WriteString("ALGORITHM ")
	b.WriteString(p.Name)
	b.WriteString("\n")
	for _, s := range p.Body {
		b.WriteString(s.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Identifier is a variable, constant, or subroutine name reference.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()  {}
func (i *Identifier) Pos() token.Position { return i.Token.Pos }
func (i *Identifier) String() string   { return i.Value }
