package ast

import (
	"fmt"
	"strings"

	"github.com/eap-lang/eap/pkg/token"
)

// TypeExpr is either a ScalarType or an ArrayType.
type TypeExpr interface {
	Node
	typeNode()
}

// ScalarType names one of EAP's scalar types: ΑΚΕΡΑΙΟΣ/INTEGER,
// ΠΡΑΓΜΑΤΙΚΟΣ/REAL, ΛΟΓΙΚΗ/BOOLEAN, ΧΑΡΑΚΤΗΡΑΣ/CHAR, ΣΥΜΒΟΛΟΣΕΙΡΑ/STRING.
type ScalarType struct {
	Token token.Token
	Name  string // canonical English name: INTEGER, REAL, BOOLEAN, CHAR, STRING
}

func (st *ScalarType) typeNode()          {}
func (st *ScalarType) Pos() token.Position { return st.Token.Pos }
func (st *ScalarType) String() string     { return st.Name }

// ArrayDimension is one [lower..upper] bound pair. Bounds are expressions,
// resolved once at declaration time (§3).
type ArrayDimension struct {
	Lower Expression
	Upper Expression
}

// ArrayType is ARRAY [d1, d2, ...] OF <scalar>. Array-of-array is rejected
// at parse time (§4.2), so Base is always a ScalarType.
type ArrayType struct {
	Token      token.Token // ARRAY token
	Base       *ScalarType
	Dimensions []ArrayDimension
}

func (at *ArrayType) typeNode()          {}
func (at *ArrayType) Pos() token.Position { return at.Token.Pos }
func (at *ArrayType) String() string {
	parts := make([]string, len(at.Dimensions))
	for i, d := range at.Dimensions {
		parts[i] = fmt.Sprintf("%s..%s", d.Lower.String(), d.Upper.String())
	}
	return fmt.Sprintf("ARRAY [%s] OF %s", strings.Join(parts, ", "), at.Base.String())
}

// ConstantDecl is "name = expression;" inside a CONSTANTS block.
type ConstantDecl struct {
	Token token.Token // the name token
	Name  string
	Value Expression
}

func (cd *ConstantDecl) statementNode()     {}
func (cd *ConstantDecl) Pos() token.Position { return cd.Token.Pos }
func (cd *ConstantDecl) String() string {
	return fmt.Sprintf("%s = %s;", cd.Name, cd.Value.String())
}

// VariableDecl declares one or more comma-separated names sharing a type.
type VariableDecl struct {
	Token token.Token // the first name token
	Names []string
	Type  TypeExpr
}

func (vd *VariableDecl) statementNode()     {}
func (vd *VariableDecl) Pos() token.Position { return vd.Token.Pos }
func (vd *VariableDecl) String() string {
	return fmt.Sprintf("%s : %s;", strings.Join(vd.Names, ", "), vd.Type.String())
}

// Parameter is one formal parameter of a subroutine. ByRef parameters
// correspond to names that appeared in the OUTPUT section of the
// subroutine's INTERFACE block (or both INPUT and OUTPUT).
type Parameter struct {
	Token token.Token
	Name  string
	Type  TypeExpr
	ByRef bool
}

func (p *Parameter) Pos() token.Position { return p.Token.Pos }
func (p *Parameter) String() string {
	if p.ByRef {
		return fmt.Sprintf("VAR %s: %s", p.Name, p.Type.String())
	}
	return fmt.Sprintf("%s: %s", p.Name, p.Type.String())
}

// FunctionDecl declares a function: name, return type, formal interface,
// local declarations, and a body. The return value is produced by
// assignment to a local variable bearing the function's own name (spec
// §4.4) — that binding is not listed as a Parameter even if the source
// text's INTERFACE block named it as OUTPUT (§4.2 drops it there).
type FunctionDecl struct {
	Token      token.Token
	Name       string
	ReturnType TypeExpr
	Parameters []*Parameter
	Constants  []*ConstantDecl
	Locals     []*VariableDecl
	Body       []Statement
}

func (fd *FunctionDecl) statementNode()     {}
func (fd *FunctionDecl) Pos() token.Position { return fd.Token.Pos }
func (fd *FunctionDecl) String() string {
	return fmt.Sprintf("FUNCTION %s(...): %s", fd.Name, fd.ReturnType.String())
}

// ProcedureDecl declares a procedure: name, formal interface, local
// declarations, and a body. Procedures return no value.
type ProcedureDecl struct {
	Token      token.Token
	Name       string
	Parameters []*Parameter
	Constants  []*ConstantDecl
	Locals     []*VariableDecl
	Body       []Statement
}

func (pd *ProcedureDecl) statementNode()     {}
func (pd *ProcedureDecl) Pos() token.Position { return pd.Token.Pos }
func (pd *ProcedureDecl) String() string {
	return fmt.Sprintf("PROCEDURE %s(...)", pd.Name)
}
