package interp

import "fmt"

// Dimension is one resolved (lower, upper) bound pair. Bounds are
// resolved once at declaration time (§3) from constant-or-constant-
// expression bounds in the AST.
type Dimension struct {
	Lower int64
	Upper int64
}

// Len is the number of valid indices in this dimension.
func (d Dimension) Len() int64 {
	if d.Upper < d.Lower {
		return 0
	}
	return d.Upper - d.Lower + 1
}

// ArrayValue is a dense, bounds-checked, multi-dimensional array (§9:
// "dense multi-dimensional arrays with computed linear offsets are
// preferable to sparse hash storage for correctness of the 'unwritten
// cell defaults to zero' rule"). Every cell starts at IntegerValue(0),
// per §3, regardless of the array's declared element type.
type ArrayValue struct {
	Dimensions []Dimension
	Base       string
	data       []Value
	strides    []int64
}

// NewArray allocates an array with the given dimensions, all cells
// defaulted to IntegerValue(0).
func NewArray(dims []Dimension, base string) *ArrayValue {
	size := int64(1)
	strides := make([]int64, len(dims))
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = size
		size *= dims[i].Len()
	}

	data := make([]Value, size)
	for i := range data {
		data[i] = IntegerValue(0)
	}

	return &ArrayValue{Dimensions: dims, Base: base, data: data, strides: strides}
}

func (a *ArrayValue) Type() string { return "ARRAY" }
func (a *ArrayValue) String() string {
	return fmt.Sprintf("ARRAY(%d dimensions of %s)", len(a.Dimensions), a.Base)
}

// offset validates indices against a.Dimensions and returns the linear
// offset into a.data, or a descriptive error naming the failing dimension
// (spec scenario 6: "Expect runtime error mentioning dimension 1 and
// range [1..3]").
func (a *ArrayValue) offset(indices []int64) (int64, error) {
	if len(indices) != len(a.Dimensions) {
		return 0, fmt.Errorf("array access expects %d index(es), got %d", len(a.Dimensions), len(indices))
	}
	var off int64
	for i, idx := range indices {
		dim := a.Dimensions[i]
		if idx < dim.Lower || idx > dim.Upper {
			return 0, fmt.Errorf("index out of bounds in dimension %d: %d not in range [%d..%d]",
				i+1, idx, dim.Lower, dim.Upper)
		}
		off += (idx - dim.Lower) * a.strides[i]
	}
	return off, nil
}

// Get reads the element at indices, bounds-checked.
func (a *ArrayValue) Get(indices []int64) (Value, error) {
	off, err := a.offset(indices)
	if err != nil {
		return nil, err
	}
	return a.data[off], nil
}

// Set writes the element at indices, bounds-checked.
func (a *ArrayValue) Set(indices []int64, val Value) error {
	off, err := a.offset(indices)
	if err != nil {
		return err
	}
	a.data[off] = val
	return nil
}
