// Package ident implements EAP's case- and accent-insensitive identifier
// comparison: NFD decomposition, stripping of combining marks (Unicode
// category Mn), then upper-casing.
package ident

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes an identifier or keyword candidate for
// comparison: it NFD-decomposes the string (splitting each precomposed
// Greek letter-plus-accent into base letter + combining mark), drops every
// rune in Unicode category Mn (the combining marks), and upper-cases the
// result. The original lexeme is never mutated — callers keep it for
// diagnostics and only compare normalized forms.
func Normalize(s string) string {
	decomposed := norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	return strings.ToUpper(b.String())
}

// Equal reports whether a and b are the same identifier once case and
// Greek-accent differences are folded away.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Map is a string-keyed map whose keys are compared under Normalize, while
// preserving the original spelling each key was first inserted with (used
// for error messages that should echo the source's own casing/accents).
type Map[V any] struct {
	values    map[string]V
	original  map[string]string
	insertion []string // preserves insertion order for deterministic iteration
}

// NewMap creates an empty identifier-keyed map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{
		values:   make(map[string]V),
		original: make(map[string]string),
	}
}

// Get looks up name, folding case and accents.
func (m *Map[V]) Get(name string) (V, bool) {
	v, ok := m.values[Normalize(name)]
	return v, ok
}

// Has reports whether name is present, folding case and accents.
func (m *Map[V]) Has(name string) bool {
	_, ok := m.values[Normalize(name)]
	return ok
}

// Set stores value under name, folding case and accents for the key while
// preserving the first-seen spelling for diagnostics.
func (m *Map[V]) Set(name string, value V) {
	key := Normalize(name)
	if _, exists := m.original[key]; !exists {
		m.original[key] = name
		m.insertion = append(m.insertion, key)
	}
	m.values[key] = value
}

// Delete removes name from the map, folding case and accents.
func (m *Map[V]) Delete(name string) {
	key := Normalize(name)
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	delete(m.original, key)
	for i, k := range m.insertion {
		if k == key {
			m.insertion = append(m.insertion[:i], m.insertion[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.values)
}

// Range iterates entries in insertion order, stopping early if f returns
// false. The name passed to f is the original (first-seen) spelling.
func (m *Map[V]) Range(f func(name string, value V) bool) {
	for _, key := range m.insertion {
		if !f(m.original[key], m.values[key]) {
			return
		}
	}
}

// OriginalName returns the first-seen spelling for name, or "" if absent.
func (m *Map[V]) OriginalName(name string) string {
	return m.original[Normalize(name)]
}
