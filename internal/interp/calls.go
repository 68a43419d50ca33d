package interp

import (
	"github.com/eap-lang/eap/internal/ast"
	"github.com/eap-lang/eap/internal/errors"
)

// callSubroutine dispatches call to the matching function or procedure
// declaration. Procedure calls return a nil Value.
func (it *Interpreter) callSubroutine(call *ast.Call, env *Environment) (Value, error) {
	name := call.Callee.Value
	if fn, ok := it.functions.Get(name); ok {
		return it.callFunction(fn, call, env)
	}
	if proc, ok := it.procedures.Get(name); ok {
		return nil, it.callProcedure(proc, call, env)
	}
	return nil, it.runtimeErrorf(call.Pos(), "undefined function or procedure %s", name)
}

// bindParameters checks arity and binds each parameter into local: by
// value, a fresh Cell holding the evaluated argument; by reference, an
// alias to the caller's own Cell (§4.4's call protocol).
func (it *Interpreter) bindParameters(params []*ast.Parameter, call *ast.Call, callerEnv, local *Environment) error {
	if len(params) != len(call.Arguments) {
		return it.runtimeErrorf(call.Pos(), "%s expects %d argument(s), got %d",
			call.Callee.Value, len(params), len(call.Arguments))
	}
	for i, param := range params {
		argExpr := call.Arguments[i]
		if param.ByRef {
			cell, err := it.resolveReferenceCell(argExpr, callerEnv)
			if err != nil {
				return err
			}
			local.BindCell(param.Name, cell)
			continue
		}
		val, err := it.evalExpr(argExpr, callerEnv)
		if err != nil {
			return err
		}
		local.Define(param.Name, val)
	}
	return nil
}

// declareLocals binds a subroutine's own CONSTANTS and DATA blocks into
// its fresh local environment.
func (it *Interpreter) declareLocals(constants []*ast.ConstantDecl, locals []*ast.VariableDecl, env *Environment) error {
	for _, c := range constants {
		val, err := it.evalExpr(c.Value, env)
		if err != nil {
			return err
		}
		env.Define(c.Name, val)
	}
	for _, v := range locals {
		if err := it.declareVariable(v, env); err != nil {
			return err
		}
	}
	return nil
}

// callFunction implements the call protocol for functions (§4.4): a
// fresh local environment parented to the *global* environment (not the
// caller's), parameter binding, the function's own locals, its body, and
// finally retrieval of the return value from the local binding matching
// the function's own name — return-by-name, the same mechanism that makes
// a bare assignment to the function's name inside its body "just work" via
// Environment.Assign's create-if-absent fallback.
func (it *Interpreter) callFunction(fn *ast.FunctionDecl, call *ast.Call, callerEnv *Environment) (Value, error) {
	local := NewChildEnvironment(it.global)
	if err := it.bindParameters(fn.Parameters, call, callerEnv, local); err != nil {
		return nil, err
	}
	if err := it.declareLocals(fn.Constants, fn.Locals, local); err != nil {
		return nil, err
	}

	it.stack = append(it.stack, errors.NewStackFrame(fn.Name, "", &call.Token.Pos))
	defer func() { it.stack = it.stack[:len(it.stack)-1] }()

	if err := it.execStatements(fn.Body, local); err != nil {
		return nil, err
	}

	cell, ok := local.store.Get(fn.Name)
	if !ok {
		return nil, it.runtimeErrorf(call.Pos(), "function %s did not assign a return value", fn.Name)
	}
	return cell.Get(), nil
}

// callProcedure implements the call protocol for procedures: identical to
// callFunction minus the return-value retrieval.
func (it *Interpreter) callProcedure(proc *ast.ProcedureDecl, call *ast.Call, callerEnv *Environment) error {
	local := NewChildEnvironment(it.global)
	if err := it.bindParameters(proc.Parameters, call, callerEnv, local); err != nil {
		return err
	}
	if err := it.declareLocals(proc.Constants, proc.Locals, local); err != nil {
		return err
	}

	it.stack = append(it.stack, errors.NewStackFrame(proc.Name, "", &call.Token.Pos))
	defer func() { it.stack = it.stack[:len(it.stack)-1] }()

	return it.execStatements(proc.Body, local)
}

// resolveReferenceCell resolves a by-reference call argument to the exact
// Cell it names in env: an identifier's own Cell, or a fresh Cell aliasing
// one element of an array. Any other expression shape is a runtime error
// (§7: "reference-parameter argument that is not a variable or array
// access").
func (it *Interpreter) resolveReferenceCell(argExpr ast.Expression, env *Environment) (Cell, error) {
	switch e := argExpr.(type) {
	case *ast.Identifier:
		cell, ok := env.Get(e.Value)
		if !ok {
			return nil, it.runtimeErrorf(e.Pos(), "undefined identifier %s", e.Value)
		}
		return cell, nil
	case *ast.ArrayAccess:
		arr, indices, err := it.resolveArrayAccess(e, env)
		if err != nil {
			return nil, err
		}
		cell, err := NewElementCell(arr, indices)
		if err != nil {
			return nil, it.runtimeErrorf(e.Pos(), "%s", err.Error())
		}
		return cell, nil
	default:
		return nil, it.runtimeErrorf(argExpr.Pos(), "reference parameter argument must be a variable or array element")
	}
}
