/*
Package sparse implements a simple type for sparse integer matrices.
It backs all parser tables (LL(1) table, GOTO table and ACTION table).
Every entry in the table is either a single int32 or a pair (int32,int32);
a pair signals that a second, different value has been written to the
position, i.e. a table conflict.

This implementation uses the COO algorithm (a.k.a. triplet-encoding),
with triplets kept in row-major order.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"strings"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     M.Add(2, 3, 123)               // add a second value
//     cnt := M.ValueCount()          // still returns 1 (one position set)
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Values cannot be deleted, but may be overwritten.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

type triplet struct {
	row, col int
	value    intPair
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of positions set in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the primary value at position (i,j), or NullValue
func (m *IntMatrix) Value(i, j int) int32 {
	a, _ := m.Values(i, j)
	return a
}

// Values returns the pair of values at position (i,j), or (NullValue, NullValue)
func (m *IntMatrix) Values(i, j int) (int32, int32) {
	if k, found := m.find(i, j); found {
		return m.values[k].value.a, m.values[k].value.b
	}
	return m.nullval, m.nullval
}

// Set a value in the matrix at position (i,j), replacing whatever has been
// stored there.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	return m.setOrAdd(i, j, value, false)
}

// Add a value in the matrix at position (i,j). If the position already holds a
// value, value is stored as the second value of the position. A full pair
// gets its second value overwritten.
func (m *IntMatrix) Add(i, j int, value int32) *IntMatrix {
	return m.setOrAdd(i, j, value, true)
}

func (m *IntMatrix) setOrAdd(i, j int, value int32, doAdd bool) *IntMatrix {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse: index (%d,%d) out of range %dx%d", i, j, m.rowcnt, m.colcnt))
	}
	at, found := m.find(i, j)
	if found {
		if doAdd {
			m.values[at].value = m.values[at].value.add(value, m.nullval)
		} else {
			m.values[at].value = intPair{value, m.nullval}
		}
		return m
	}
	tnew := triplet{row: i, col: j, value: intPair{value, m.nullval}}
	m.values = append(m.values, tnew)    // make room
	copy(m.values[at+1:], m.values[at:]) // shift remainder one index to the right
	m.values[at] = tnew
	return m
}

// find returns the index of the triplet for (i,j), or the index where it would
// have to be inserted.
func (m *IntMatrix) find(i, j int) (int, bool) {
	lo, hi := 0, len(m.values)
	for lo < hi {
		mid := (lo + hi) / 2
		if m.values[mid].storedLeftOf(i, j) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(m.values) && m.values[lo].storedAt(i, j)
}

// Entry is a non-empty position of a matrix, as returned by Entries.
type Entry struct {
	Row, Col int
	Value    int32
	Second   int32
}

// Entries returns all non-empty positions in row-major order.
func (m *IntMatrix) Entries() []Entry {
	entries := make([]Entry, len(m.values))
	for k, t := range m.values {
		entries[k] = Entry{Row: t.row, Col: t.col, Value: t.value.a, Second: t.value.b}
	}
	return entries
}

func (m *IntMatrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "IntMatrix %dx%d {", m.rowcnt, m.colcnt)
	for _, t := range m.values {
		fmt.Fprintf(&b, " (%d,%d)=%s", t.row, t.col, t.value)
	}
	b.WriteString(" }")
	return b.String()
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return t.row == i && t.col == j
}

// we will store 2 int32 in one position
type intPair struct {
	a int32
	b int32
}

func (pr intPair) add(n int32, nullval int32) intPair {
	if pr.a == nullval {
		pr.a = n
	} else {
		pr.b = n
	}
	return pr
}

func (pr intPair) String() string {
	return fmt.Sprintf("[%d,%d]", pr.a, pr.b)
}
