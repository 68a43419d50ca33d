// Package errors defines EAP's two diagnostic kinds (syntax and runtime)
// and the single-line / source-context formatting used to report them.
//
// Source-context and caret-indicator formatting built on pkg/token.Position,
// producing EAP's "Syntax Error: ..." / "Runtime Error: ..." single-line
// default (§7), with FormatWithContext reserved for --debug output.
package errors

import (
	"fmt"
	"strings"

	"github.com/eap-lang/eap/pkg/token"
)

// SyntaxError is produced by the tokenizer (unexpected character) or the
// parser (unexpected token, missing keyword). Always carries a line.
type SyntaxError struct {
	Message string
	Pos     token.Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax Error: %s at %s", e.Message, e.Pos)
}

// RuntimeError is produced by the evaluator: division/modulo by zero,
// out-of-bounds array access, arity mismatches, undefined identifiers, and
// the other cases enumerated in §7. Stack holds the subroutine calls
// active when the error was raised; only FormatWithContext (the --debug
// output) prints it.
type RuntimeError struct {
	Message string
	Pos     token.Position
	Stack   StackTrace
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Runtime Error: %s at %s", e.Message, e.Pos)
}

// FormatWithContext renders the error with its source line and a caret at
// the error column, and, for a RuntimeError, a full call-stack dump. This
// is the --debug presentation; the default is just err.Error().
func FormatWithContext(err error, source string) string {
	var sb strings.Builder

	switch e := err.(type) {
	case *SyntaxError:
		sb.WriteString(e.Error())
		sb.WriteString("\n")
		writeSourceContext(&sb, source, e.Pos)
	case *RuntimeError:
		sb.WriteString(e.Error())
		sb.WriteString("\n")
		writeSourceContext(&sb, source, e.Pos)
		if len(e.Stack) > 0 {
			sb.WriteString("\nCall stack:\n")
			sb.WriteString(e.Stack.String())
			sb.WriteString("\n")
		}
	default:
		sb.WriteString(err.Error())
	}

	return sb.String()
}

func writeSourceContext(sb *strings.Builder, source string, pos token.Position) {
	if pos.Line < 1 {
		return
	}
	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return
	}
	line := lines[pos.Line-1]

	lineNumStr := fmt.Sprintf("%4d | ", pos.Line)
	sb.WriteString(lineNumStr)
	sb.WriteString(line)
	sb.WriteString("\n")

	col := pos.Column
	if col < 1 {
		col = 1
	}
	sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
	sb.WriteString("^\n")
}
