package interp

import "github.com/eap-lang/eap/internal/ast"

// evalExpr evaluates expr in env, dispatching on its concrete AST type.
func (it *Interpreter) evalExpr(expr ast.Expression, env *Environment) (Value, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return IntegerValue(e.Value), nil
	case *ast.RealLiteral:
		return RealValue(e.Value), nil
	case *ast.StringLiteral:
		return StringValue(e.Value), nil
	case *ast.BooleanLiteral:
		return BooleanValue(e.Value), nil
	case *ast.Identifier:
		cell, ok := env.Get(e.Value)
		if !ok {
			return nil, it.runtimeErrorf(e.Pos(), "undefined identifier %s", e.Value)
		}
		return cell.Get(), nil
	case *ast.GroupedExpr:
		return it.evalExpr(e.Inner, env)
	case *ast.UnaryExpr:
		return it.evalUnary(e, env)
	case *ast.BinaryExpr:
		return it.evalBinary(e, env)
	case *ast.ArrayAccess:
		arr, indices, err := it.resolveArrayAccess(e, env)
		if err != nil {
			return nil, err
		}
		val, err := arr.Get(indices)
		if err != nil {
			return nil, it.runtimeErrorf(e.Pos(), "%s", err.Error())
		}
		return val, nil
	case *ast.Call:
		val, err := it.callSubroutine(e, env)
		if err != nil {
			return nil, err
		}
		if val == nil {
			return nil, it.runtimeErrorf(e.Pos(), "procedure %s used where an expression is required", e.Callee.Value)
		}
		return val, nil
	default:
		return nil, it.runtimeErrorf(expr.Pos(), "unsupported expression %T", expr)
	}
}

func (it *Interpreter) evalUnary(e *ast.UnaryExpr, env *Environment) (Value, error) {
	right, err := it.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}
	switch e.Operator {
	case "NOT":
		return BooleanValue(!IsTruthy(right)), nil
	case "-":
		switch v := right.(type) {
		case IntegerValue:
			return -v, nil
		case RealValue:
			return -v, nil
		default:
			return nil, it.runtimeErrorf(e.Pos(), "unary - not defined for %s", right.Type())
		}
	default:
		return nil, it.runtimeErrorf(e.Pos(), "unsupported unary operator %s", e.Operator)
	}
}

func (it *Interpreter) evalBinary(e *ast.BinaryExpr, env *Environment) (Value, error) {
	left, err := it.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Operator {
	case "AND":
		return BooleanValue(IsTruthy(left) && IsTruthy(right)), nil
	case "OR":
		return BooleanValue(IsTruthy(left) || IsTruthy(right)), nil
	case "=", "<>":
		eq, err := it.valuesEqual(left, right, e)
		if err != nil {
			return nil, err
		}
		if e.Operator == "<>" {
			eq = !eq
		}
		return BooleanValue(eq), nil
	case "<", ">", "<=", ">=":
		return it.evalOrdering(e, left, right)
	case "+", "-", "*", "/", "DIV", "MOD", "%":
		return it.evalArithmetic(e, left, right)
	default:
		return nil, it.runtimeErrorf(e.Pos(), "unsupported operator %s", e.Operator)
	}
}

func (it *Interpreter) valuesEqual(left, right Value, e *ast.BinaryExpr) (bool, error) {
	ln, lok := left.(NumericValue)
	rn, rok := right.(NumericValue)
	if lok && rok {
		return ln.AsFloat() == rn.AsFloat(), nil
	}
	if ls, ok := left.(StringValue); ok {
		if rs, ok := right.(StringValue); ok {
			return ls == rs, nil
		}
	}
	if lb, ok := left.(BooleanValue); ok {
		if rb, ok := right.(BooleanValue); ok {
			return lb == rb, nil
		}
	}
	if lc, ok := left.(CharValue); ok {
		if rc, ok := right.(CharValue); ok {
			return lc == rc, nil
		}
	}
	return false, it.runtimeErrorf(e.Pos(), "%s", typeMismatch(e.Operator, left, right))
}

func (it *Interpreter) evalOrdering(e *ast.BinaryExpr, left, right Value) (Value, error) {
	ln, lok := left.(NumericValue)
	rn, rok := right.(NumericValue)
	if !lok || !rok {
		return nil, it.runtimeErrorf(e.Pos(), "%s", typeMismatch(e.Operator, left, right))
	}
	lf, rf := ln.AsFloat(), rn.AsFloat()
	switch e.Operator {
	case "<":
		return BooleanValue(lf < rf), nil
	case ">":
		return BooleanValue(lf > rf), nil
	case "<=":
		return BooleanValue(lf <= rf), nil
	case ">=":
		return BooleanValue(lf >= rf), nil
	default:
		return nil, it.runtimeErrorf(e.Pos(), "unsupported comparison %s", e.Operator)
	}
}

// evalArithmetic implements §4.4: +, -, * operate pointwise and
// promote to real if either operand is real; / always yields real and
// signals division by zero; DIV truncates toward zero and requires
// integer operands; MOD and % share behavior and signal modulo by zero.
func (it *Interpreter) evalArithmetic(e *ast.BinaryExpr, left, right Value) (Value, error) {
	if e.Operator == "DIV" || e.Operator == "MOD" || e.Operator == "%" {
		li, lok := left.(IntegerValue)
		ri, rok := right.(IntegerValue)
		if !lok || !rok {
			return nil, it.runtimeErrorf(e.Pos(), "%s requires integer operands, got %s and %s",
				e.Operator, left.Type(), right.Type())
		}
		if ri == 0 {
			verb := "division"
			if e.Operator != "DIV" {
				verb = "modulo"
			}
			return nil, it.runtimeErrorf(e.Pos(), "%s by zero", verb)
		}
		if e.Operator == "DIV" {
			return li / ri, nil
		}
		return li % ri, nil
	}

	ln, lok := left.(NumericValue)
	rn, rok := right.(NumericValue)
	if !lok || !rok {
		return nil, it.runtimeErrorf(e.Pos(), "%s", typeMismatch(e.Operator, left, right))
	}

	if e.Operator == "/" {
		rf := rn.AsFloat()
		if rf == 0 {
			return nil, it.runtimeErrorf(e.Pos(), "division by zero")
		}
		return RealValue(ln.AsFloat() / rf), nil
	}

	li, lIsInt := left.(IntegerValue)
	ri, rIsInt := right.(IntegerValue)
	if lIsInt && rIsInt {
		switch e.Operator {
		case "+":
			return li + ri, nil
		case "-":
			return li - ri, nil
		case "*":
			return li * ri, nil
		}
	}

	lf, rf := ln.AsFloat(), rn.AsFloat()
	switch e.Operator {
	case "+":
		return RealValue(lf + rf), nil
	case "-":
		return RealValue(lf - rf), nil
	case "*":
		return RealValue(lf * rf), nil
	default:
		return nil, it.runtimeErrorf(e.Pos(), "unsupported operator %s", e.Operator)
	}
}
