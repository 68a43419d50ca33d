package ast

import (
	"fmt"
	"strings"

	"github.com/eap-lang/eap/pkg/token"
)

// Assignment assigns Value to Target, which must evaluate (at execution
// time) to either an *Identifier or an *ArrayAccess.
type Assignment struct {
	Token  token.Token // ':='
	Target Expression
	Value  Expression
}

func (a *Assignment) statementNode()     {}
func (a *Assignment) Pos() token.Position { return a.Token.Pos }
func (a *Assignment) String() string {
	return fmt.Sprintf("%s := %s;", a.Target.String(), a.Value.String())
}

// Print is ΤΥΠΩΣΕ(expr, ...). Each expression is printed space-separated;
// the EOLN sentinel (an ordinary identifier bound in the global
// environment) forces a newline wherever it appears in the list.
type Print struct {
	Token       token.Token
	Expressions []Expression
}

func (p *Print) statementNode()     {}
func (p *Print) Pos() token.Position { return p.Token.Pos }
func (p *Print) String() string {
	parts := make([]string, len(p.Expressions))
	for i, e := range p.Expressions {
		parts[i] = e.String()
	}
	return fmt.Sprintf("PRINT(%s);", strings.Join(parts, ", "))
}

// Read is ΔΙΑΒΑΣΕ(lvalue, ...). Each target must be an *Identifier or
// *ArrayAccess.
type Read struct {
	Token   token.Token
	Targets []Expression
}

func (r *Read) statementNode()     {}
func (r *Read) Pos() token.Position { return r.Token.Pos }
func (r *Read) String() string {
	parts := make([]string, len(r.Targets))
	for i, t := range r.Targets {
		parts[i] = t.String()
	}
	return fmt.Sprintf("READ(%s);", strings.Join(parts, ", "))
}

// If is ΕΑΝ cond ΤΟΤΕ ... [ΑΛΛΙΩΣ ...] ΕΑΝ-ΤΕΛΟΣ.
type If struct {
	Token     token.Token
	Condition Expression
	Then      []Statement
	Else      []Statement // nil if no ΑΛΛΙΩΣ clause
}

func (i *If) statementNode()     {}
func (i *If) Pos() token.Position { return i.Token.Pos }
func (i *If) String() string {
	return fmt.Sprintf("IF %s THEN ... END_IF", i.Condition.String())
}

// For is ΓΙΑ var := start ΕΩΣ end [ΜΕ ΒΗΜΑ step] ΕΠΑΝΑΛΑΒΕ ... ΓΙΑ-ΤΕΛΟΣ.
// Start, End and Step are each evaluated once before the loop runs (spec
// §4.3). Step defaults to the integer literal 1 when the source omits it.
type For struct {
	Token    token.Token
	Variable string
	Start    Expression
	End      Expression
	Step     Expression
	Body     []Statement
}

func (f *For) statementNode()     {}
func (f *For) Pos() token.Position { return f.Token.Pos }
func (f *For) String() string {
	return fmt.Sprintf("FOR %s := %s TO %s STEP %s ... END_FOR",
		f.Variable, f.Start.String(), f.End.String(), f.Step.String())
}

// While is ΕΝΟΣΩ cond ΕΠΑΝΑΛΑΒΕ ... ΕΝΟΣΩ-ΤΕΛΟΣ: condition tested before
// every iteration, including the first.
type While struct {
	Token     token.Token
	Condition Expression
	Body      []Statement
}

func (w *While) statementNode()     {}
func (w *While) Pos() token.Position { return w.Token.Pos }
func (w *While) String() string {
	return fmt.Sprintf("WHILE %s ... END_WHILE", w.Condition.String())
}

// Repeat is ΕΠΑΝΑΛΑΒΕ ... ΜΕΧΡΙ cond: the body executes once
// unconditionally, then Condition is tested and the body repeats while it
// is false (textbook semantics, per §9's Open Question decision —
// this is a dedicated node rather than a desugaring into While, so the
// body is never duplicated in the AST).
type Repeat struct {
	Token     token.Token
	Body      []Statement
	Condition Expression
}

func (r *Repeat) statementNode()     {}
func (r *Repeat) Pos() token.Position { return r.Token.Pos }
func (r *Repeat) String() string {
	return fmt.Sprintf("REPEAT ... UNTIL %s", r.Condition.String())
}
