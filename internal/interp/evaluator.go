package interp

import (
	"fmt"
	"io"

	"github.com/eap-lang/eap/internal/ast"
	"github.com/eap-lang/eap/internal/errors"
	"github.com/eap-lang/eap/pkg/ident"
	"github.com/eap-lang/eap/pkg/token"
)

// Interpreter is the tree-walking evaluator: it owns the global
// environment, the subroutine declaration tables, and the program's I/O.
// It walks a much smaller statement/expression set than a general-purpose
// scripting language and is driven by explicit Go error returns instead of
// a sentinel ErrorValue (§7: errors abort execution immediately; there is
// no in-language try/catch to thread an error value through).
type Interpreter struct {
	global     *Environment
	functions  *ident.Map[*ast.FunctionDecl]
	procedures *ident.Map[*ast.ProcedureDecl]

	out    io.Writer
	prompt io.Writer
	in     LineReader

	stack errors.StackTrace
}

// New creates an Interpreter that writes PRINT output to out, READ prompts
// to prompt, and reads input lines from in.
func New(out, prompt io.Writer, in LineReader) *Interpreter {
	return &Interpreter{out: out, prompt: prompt, in: in}
}

// Run executes program to completion: declares constants and subroutines
// (first pass, so forward references among subroutines resolve), then
// variables (second pass, since array bounds may reference constants),
// then the main body (§4.4).
func (it *Interpreter) Run(program *ast.Program) error {
	it.global = NewEnvironment()
	it.global.Define("EOLN", Eoln)

	it.functions = ident.NewMap[*ast.FunctionDecl]()
	for _, fn := range program.Functions {
		it.functions.Set(fn.Name, fn)
	}
	it.procedures = ident.NewMap[*ast.ProcedureDecl]()
	for _, proc := range program.Procedures {
		it.procedures.Set(proc.Name, proc)
	}

	for _, c := range program.Constants {
		val, err := it.evalExpr(c.Value, it.global)
		if err != nil {
			return err
		}
		it.global.Define(c.Name, val)
	}

	for _, v := range program.Variables {
		if err := it.declareVariable(v, it.global); err != nil {
			return err
		}
	}

	return it.execStatements(program.Body, it.global)
}

// declareVariable binds each name in decl to a freshly initialized
// scalar-zero value or array.
func (it *Interpreter) declareVariable(decl *ast.VariableDecl, env *Environment) error {
	switch typ := decl.Type.(type) {
	case *ast.ScalarType:
		for _, name := range decl.Names {
			env.Define(name, scalarZeroValue(typ.Name))
		}
	case *ast.ArrayType:
		dims := make([]Dimension, len(typ.Dimensions))
		for i, d := range typ.Dimensions {
			lower, err := it.evalIntExpr(d.Lower, env, "array bound")
			if err != nil {
				return err
			}
			upper, err := it.evalIntExpr(d.Upper, env, "array bound")
			if err != nil {
				return err
			}
			dims[i] = Dimension{Lower: lower, Upper: upper}
		}
		for _, name := range decl.Names {
			env.Define(name, NewArray(dims, typ.Base.Name))
		}
	default:
		return it.runtimeErrorf(decl.Pos(), "unknown type for %v", decl.Names)
	}
	return nil
}

func scalarZeroValue(name string) Value {
	switch name {
	case "INTEGER":
		return IntegerValue(0)
	case "REAL":
		return RealValue(0)
	case "BOOLEAN":
		return BooleanValue(false)
	case "CHAR":
		return CharValue(0)
	case "STRING":
		return StringValue("")
	default:
		return IntegerValue(0)
	}
}

// evalIntExpr evaluates expr and requires an IntegerValue result,
// returning a runtime error tagged with what (e.g. "array bound") on
// type mismatch.
func (it *Interpreter) evalIntExpr(expr ast.Expression, env *Environment, what string) (int64, error) {
	val, err := it.evalExpr(expr, env)
	if err != nil {
		return 0, err
	}
	iv, ok := val.(IntegerValue)
	if !ok {
		return 0, it.runtimeErrorf(expr.Pos(), "%s must be an integer, got %s", what, val.Type())
	}
	return int64(iv), nil
}

func (it *Interpreter) runtimeErrorf(pos token.Position, format string, args ...interface{}) error {
	return &errors.RuntimeError{Message: fmt.Sprintf(format, args...), Pos: pos, Stack: it.stack}
}

// execStatements runs stmts in sequence, stopping at the first error.
func (it *Interpreter) execStatements(stmts []ast.Statement, env *Environment) error {
	for _, stmt := range stmts {
		if err := it.exec(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) exec(stmt ast.Statement, env *Environment) error {
	switch st := stmt.(type) {
	case *ast.Assignment:
		return it.execAssignment(st, env)
	case *ast.Print:
		return it.execPrint(st, env)
	case *ast.Read:
		return it.execRead(st, env)
	case *ast.If:
		return it.execIf(st, env)
	case *ast.For:
		return it.execFor(st, env)
	case *ast.While:
		return it.execWhile(st, env)
	case *ast.Repeat:
		return it.execRepeat(st, env)
	case *ast.Call:
		_, err := it.callSubroutine(st, env)
		return err
	default:
		return it.runtimeErrorf(stmt.Pos(), "unsupported statement %T", stmt)
	}
}

func (it *Interpreter) execAssignment(st *ast.Assignment, env *Environment) error {
	value, err := it.evalExpr(st.Value, env)
	if err != nil {
		return err
	}

	switch target := st.Target.(type) {
	case *ast.Identifier:
		env.Assign(target.Value, value)
		return nil
	case *ast.ArrayAccess:
		arr, indices, err := it.resolveArrayAccess(target, env)
		if err != nil {
			return err
		}
		if err := arr.Set(indices, value); err != nil {
			return it.runtimeErrorf(target.Pos(), "%s", err.Error())
		}
		return nil
	default:
		return it.runtimeErrorf(st.Pos(), "invalid assignment target %T", st.Target)
	}
}

func (it *Interpreter) execIf(st *ast.If, env *Environment) error {
	cond, err := it.evalExpr(st.Condition, env)
	if err != nil {
		return err
	}
	if IsTruthy(cond) {
		return it.execStatements(st.Then, env)
	}
	return it.execStatements(st.Else, env)
}

// execFor implements §4.3: start/end/step evaluated once; ascending
// while step > 0 and var <= end, descending while step < 0 and var >=
// end; step of 0 is a runtime error. The loop variable lives in the
// surrounding scope (no fresh binding is created per iteration).
func (it *Interpreter) execFor(st *ast.For, env *Environment) error {
	start, err := it.evalIntExpr(st.Start, env, "FOR start")
	if err != nil {
		return err
	}
	end, err := it.evalIntExpr(st.End, env, "FOR end")
	if err != nil {
		return err
	}
	step, err := it.evalIntExpr(st.Step, env, "FOR step")
	if err != nil {
		return err
	}
	if step == 0 {
		return it.runtimeErrorf(st.Pos(), "FOR loop step must not be zero")
	}

	for v := start; (step > 0 && v <= end) || (step < 0 && v >= end); v += step {
		env.Assign(st.Variable, IntegerValue(v))
		if err := it.execStatements(st.Body, env); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execWhile(st *ast.While, env *Environment) error {
	for {
		cond, err := it.evalExpr(st.Condition, env)
		if err != nil {
			return err
		}
		if !IsTruthy(cond) {
			return nil
		}
		if err := it.execStatements(st.Body, env); err != nil {
			return err
		}
	}
}

// execRepeat runs the body once unconditionally, then tests Condition and
// repeats while it is false (§4.3, §9's Open Question decision).
func (it *Interpreter) execRepeat(st *ast.Repeat, env *Environment) error {
	for {
		if err := it.execStatements(st.Body, env); err != nil {
			return err
		}
		cond, err := it.evalExpr(st.Condition, env)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return nil
		}
	}
}

// resolveArrayAccess looks up the named array (must already be bound —
// arrays are declared, never implicitly created by assignment) and
// evaluates each index to an integer.
func (it *Interpreter) resolveArrayAccess(access *ast.ArrayAccess, env *Environment) (*ArrayValue, []int64, error) {
	cell, ok := env.Get(access.Name.Value)
	if !ok {
		return nil, nil, it.runtimeErrorf(access.Pos(), "undefined identifier %s", access.Name.Value)
	}
	arr, ok := cell.Get().(*ArrayValue)
	if !ok {
		return nil, nil, it.runtimeErrorf(access.Pos(), "%s is not an array", access.Name.Value)
	}

	indices := make([]int64, len(access.Indices))
	for i, idxExpr := range access.Indices {
		idx, err := it.evalIntExpr(idxExpr, env, "array index")
		if err != nil {
			return nil, nil, err
		}
		indices[i] = idx
	}
	return arr, indices, nil
}
