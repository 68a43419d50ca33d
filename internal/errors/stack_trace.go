package errors

import (
	"fmt"
	"strings"

	"github.com/eap-lang/eap/pkg/token"
)

// StackFrame is one active subroutine call: its name, source file, and
// the call-site position.
type StackFrame struct {
	Position     *token.Position
	FunctionName string
	FileName     string
}

// String renders "FunctionName [line: N, column: M]", or just the name if
// no position is known.
func (sf StackFrame) String() string {
	if sf.Position == nil {
		return sf.FunctionName
	}
	return fmt.Sprintf("%s [line: %d, column: %d]",
		sf.FunctionName, sf.Position.Line, sf.Position.Column)
}

// StackTrace is a call stack, oldest (bottom) frame first.
type StackTrace []StackFrame

// String renders one frame per line, most recent call first.
func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(st) - 1; i >= 0; i-- {
		sb.WriteString(st[i].String())
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Reverse returns a copy of st with frames in reverse order.
func (st StackTrace) Reverse() StackTrace {
	reversed := make(StackTrace, len(st))
	for i, frame := range st {
		reversed[len(st)-1-i] = frame
	}
	return reversed
}

// Top returns the most recent frame, or nil if empty.
func (st StackTrace) Top() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[len(st)-1]
}

// Bottom returns the oldest frame, or nil if empty.
func (st StackTrace) Bottom() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[0]
}

// Depth returns the number of frames.
func (st StackTrace) Depth() int {
	return len(st)
}

// NewStackFrame creates a StackFrame.
func NewStackFrame(functionName, fileName string, position *token.Position) StackFrame {
	return StackFrame{FunctionName: functionName, FileName: fileName, Position: position}
}

// NewStackTrace creates an empty StackTrace.
func NewStackTrace() StackTrace {
	return make(StackTrace, 0)
}
