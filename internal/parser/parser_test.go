package parser

import (
	"testing"

	"github.com/eap-lang/eap/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p, err := New(src)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	program, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	return program
}

func TestParseProgram_MinimalShape(t *testing.T) {
	program := mustParse(t, `
ΑΛΓΟΡΙΘΜΟΣ Hello;
ΑΡΧΗ
  ΤΥΠΩΣΕ("hi");
ΤΕΛΟΣ
`)
	if program.Name != "Hello" {
		t.Fatalf("expected program name Hello, got %s", program.Name)
	}
	if len(program.Body) != 1 {
		t.Fatalf("expected one statement in body, got %d", len(program.Body))
	}
	if _, ok := program.Body[0].(*ast.Print); !ok {
		t.Fatalf("expected *ast.Print, got %T", program.Body[0])
	}
}

func TestParseProgram_ConstantsAndDataBlocks(t *testing.T) {
	program := mustParse(t, `
ALGORITHM Test;
CONSTANTS
  PI = 3.14;
DATA
  a, b: INTEGER;
  m: ARRAY[1..3, 1..3] OF REAL;
BEGIN
END
`)
	if len(program.Constants) != 1 || program.Constants[0].Name != "PI" {
		t.Fatalf("expected one constant PI, got %v", program.Constants)
	}
	if len(program.Variables) != 2 {
		t.Fatalf("expected two variable decl groups, got %d", len(program.Variables))
	}
	arrType, ok := program.Variables[1].Type.(*ast.ArrayType)
	if !ok {
		t.Fatalf("expected m's type to be *ast.ArrayType, got %T", program.Variables[1].Type)
	}
	if len(arrType.Dimensions) != 2 {
		t.Fatalf("expected 2 array dimensions, got %d", len(arrType.Dimensions))
	}
}

// TestParseProgram_InterfaceInputOutputMerge exercises the INTERFACE block
// rules: a name appearing in both INPUT and OUTPUT becomes a single
// by-reference parameter, and an OUTPUT parameter matching the function's
// own name (the return variable) is dropped.
func TestParseProgram_InterfaceInputOutputMerge(t *testing.T) {
	program := mustParse(t, `
ALGORITHM Test;
FUNCTION combine(a, b): INTEGER;
INTERFACE
ΕΙΣΟΔΟΣ
  a, shared: INTEGER;
ΕΞΟΔΟΣ
  shared: INTEGER;
  combine: INTEGER;
BEGIN
  combine := a + shared;
END_FUNCTION
BEGIN
END
`)
	if len(program.Functions) != 1 {
		t.Fatalf("expected one function, got %d", len(program.Functions))
	}
	fn := program.Functions[0]

	byName := make(map[string]*ast.Parameter)
	for _, p := range fn.Parameters {
		byName[p.Name] = p
	}

	if _, ok := byName["combine"]; ok {
		t.Fatal("OUTPUT parameter matching the function's own name should be dropped")
	}
	if p, ok := byName["a"]; !ok || p.ByRef {
		t.Fatalf("expected 'a' to be a by-value parameter, got %+v", p)
	}
	if p, ok := byName["shared"]; !ok || !p.ByRef {
		t.Fatalf("expected 'shared' to be merged into one by-reference parameter, got %+v", p)
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("expected exactly 2 parameters after merge/drop, got %d: %+v", len(fn.Parameters), fn.Parameters)
	}
}

func TestParseProgram_ForWithDefaultAndExplicitStep(t *testing.T) {
	program := mustParse(t, `
ALGORITHM Test;
DATA
  i: INTEGER;
BEGIN
  FOR i := 1 TO 10 REPEAT
  END_FOR
  FOR i := 10 TO 1 WITH STEP -1 REPEAT
  END_FOR
END
`)
	if len(program.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Body))
	}
	first := program.Body[0].(*ast.For)
	lit, ok := first.Step.(*ast.IntegerLiteral)
	if !ok || lit.Value != 1 {
		t.Fatalf("expected default step of integer literal 1, got %#v", first.Step)
	}
	second := program.Body[1].(*ast.For)
	lit2, ok := second.Step.(*ast.UnaryExpr)
	if !ok || lit2.Operator != "-" {
		t.Fatalf("expected explicit step -1 to parse as a unary minus, got %#v", second.Step)
	}
}

func TestParseProgram_RepeatUntilIsDedicatedNode(t *testing.T) {
	program := mustParse(t, `
ALGORITHM Test;
DATA
  i: INTEGER;
BEGIN
  REPEAT
    i := i + 1;
  UNTIL i > 10
END
`)
	if len(program.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Body))
	}
	if _, ok := program.Body[0].(*ast.Repeat); !ok {
		t.Fatalf("expected *ast.Repeat, got %T", program.Body[0])
	}
}

func TestParseProgram_MissingEndIsSyntaxError(t *testing.T) {
	p, err := New(`ALGORITHM Test; BEGIN`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := p.ParseProgram(); err == nil {
		t.Fatal("expected a syntax error for unterminated program body")
	}
}
