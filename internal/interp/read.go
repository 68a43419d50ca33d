package interp

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/eap-lang/eap/internal/ast"
)

// LineReader supplies one line of input at a time for READ statements.
// ok is false at end of input.
type LineReader interface {
	ReadLine() (line string, ok bool)
}

// ScannerLineReader adapts a bufio.Scanner (typically wrapping os.Stdin)
// to LineReader.
type ScannerLineReader struct {
	scanner *bufio.Scanner
}

// NewScannerLineReader wraps r's lines for READ statements.
func NewScannerLineReader(r *bufio.Scanner) *ScannerLineReader {
	return &ScannerLineReader{scanner: r}
}

func (s *ScannerLineReader) ReadLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

// execRead implements §4.5: each target is prompted for in turn and
// assigned the parsed value.
func (it *Interpreter) execRead(st *ast.Read, env *Environment) error {
	for _, target := range st.Targets {
		if err := it.readOne(target, env); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) readOne(target ast.Expression, env *Environment) error {
	switch t := target.(type) {
	case *ast.Identifier:
		fmt.Fprintf(it.prompt, "Enter value for %s: ", t.Value)
		env.Assign(t.Value, it.readValue())
		return nil
	case *ast.ArrayAccess:
		arr, indices, err := it.resolveArrayAccess(t, env)
		if err != nil {
			return err
		}
		fmt.Fprintf(it.prompt, "Enter value for %s%s: ", t.Name.Value, indexSuffix(indices))
		if err := arr.Set(indices, it.readValue()); err != nil {
			return it.runtimeErrorf(t.Pos(), "%s", err.Error())
		}
		return nil
	default:
		return it.runtimeErrorf(target.Pos(), "invalid READ target %T", target)
	}
}

func indexSuffix(indices []int64) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.FormatInt(idx, 10)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// readValue implements §4.5's input-parsing rules: an empty line or
// end of input yields -1; a value containing '.' that parses as a real
// number yields a real; otherwise a value that parses as an integer
// yields an integer; anything else is kept as a raw string.
func (it *Interpreter) readValue() Value {
	line, ok := it.in.ReadLine()
	if !ok || line == "" {
		return IntegerValue(-1)
	}
	if strings.Contains(line, ".") {
		if f, err := strconv.ParseFloat(line, 64); err == nil {
			return RealValue(f)
		}
	}
	if n, err := strconv.ParseInt(line, 10, 64); err == nil {
		return IntegerValue(n)
	}
	return StringValue(line)
}
