package interp

import (
	"io"

	"github.com/eap-lang/eap/internal/ast"
)

// execPrint implements §4.4's PRINT semantics: the built-in EOLN
// sentinel emits a newline in place of a value; adjacent non-EOLN values
// are separated by a single space; PRINT never appends a trailing
// newline of its own.
func (it *Interpreter) execPrint(st *ast.Print, env *Environment) error {
	needSpace := false
	for _, expr := range st.Expressions {
		val, err := it.evalExpr(expr, env)
		if err != nil {
			return err
		}
		if IsEoln(val) {
			io.WriteString(it.out, "\n")
			needSpace = false
			continue
		}
		if needSpace {
			io.WriteString(it.out, " ")
		}
		io.WriteString(it.out, val.String())
		needSpace = true
	}
	return nil
}
