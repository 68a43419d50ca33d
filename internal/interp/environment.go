package interp

import "github.com/eap-lang/eap/pkg/ident"

// Cell is a mutable variable binding. A plain by-value parameter or local
// gets its own *varCell; a by-reference parameter is bound to the *same*
// Cell as the corresponding variable (or array element) in the caller's
// frame (see BindCell), which is how writes to it are observed by the
// caller regardless of call depth.
//
// This resolves the reference-parameter ambiguity noted in §9: binding
// to explicit cells in the caller's frame keeps updates visible
// regardless of nesting depth. Cell is an interface rather than a bare
// struct field so that a reference parameter can alias a single array
// element (via elementCell) just as readily as a whole variable (via
// varCell).
type Cell interface {
	Get() Value
	Set(Value)
}

// varCell backs an ordinary scalar or whole-array variable.
type varCell struct {
	value Value
}

func (c *varCell) Get() Value  { return c.value }
func (c *varCell) Set(v Value) { c.value = v }

// elementCell backs a reference to a single element of an array,
// reading and writing through to the array's own storage.
type elementCell struct {
	array   *ArrayValue
	indices []int64
}

func (c *elementCell) Get() Value {
	v, _ := c.array.Get(c.indices) // indices validated when the cell was created
	return v
}

func (c *elementCell) Set(v Value) {
	_ = c.array.Set(c.indices, v)
}

// NewElementCell creates a Cell bound to one element of arr. Returns an
// error if indices are out of bounds.
func NewElementCell(arr *ArrayValue, indices []int64) (Cell, error) {
	if _, err := arr.offset(indices); err != nil {
		return nil, err
	}
	idxCopy := make([]int64, len(indices))
	copy(idxCopy, indices)
	return &elementCell{array: arr, indices: idxCopy}, nil
}

// Environment is one activation's variable scope: a case- and
// accent-insensitive name-to-Cell map (§3), plus a pointer to the
// parent environment. Entries are Cell-valued rather than Value-valued
// so that reference parameters can alias a caller's storage directly.
type Environment struct {
	store *ident.Map[Cell]
	outer *Environment
}

// NewEnvironment creates a root environment with no parent — used once
// per execution for the global scope.
func NewEnvironment() *Environment {
	return &Environment{store: ident.NewMap[Cell]()}
}

// NewChildEnvironment creates an environment enclosed by outer. Per spec
// §3's lifecycle rule, every subroutine call's local environment is
// parented to the *global* environment, not the caller — so in practice
// this is called once per call with outer set to the global environment.
func NewChildEnvironment(outer *Environment) *Environment {
	return &Environment{store: ident.NewMap[Cell](), outer: outer}
}

// Get resolves name by walking from this environment outward, returning
// its Cell.
func (e *Environment) Get(name string) (Cell, bool) {
	if cell, ok := e.store.Get(name); ok {
		return cell, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Define creates a fresh binding for name in this frame, always a new
// Cell even if name was already bound here (used for declarations and
// by-value parameter binding).
func (e *Environment) Define(name string, val Value) Cell {
	cell := &varCell{value: val}
	e.store.Set(name, cell)
	return cell
}

// BindCell aliases name in this frame directly to an existing Cell —
// used for by-reference parameters, so writes through name mutate the
// same storage the caller's variable (or array element) occupies.
func (e *Environment) BindCell(name string, cell Cell) {
	e.store.Set(name, cell)
}

// Assign implements §4.4's assignment rule: walk the environment
// chain to find an existing binding and update it in place; if none
// exists anywhere in the chain, create one in the current (innermost)
// frame. This fallback is what makes function return-by-name work: the
// first assignment to the function's own name, inside its local frame,
// has no existing binding to find and so creates one locally.
func (e *Environment) Assign(name string, val Value) {
	if cell, ok := e.Get(name); ok {
		cell.Set(val)
		return
	}
	e.Define(name, val)
}
