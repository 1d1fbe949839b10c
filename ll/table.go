package ll

import (
	"fmt"

	"github.com/npillmayer/llslr"
	"github.com/npillmayer/llslr/grammar"
	"github.com/npillmayer/llslr/lr/sparse"
)

// CellKind tells the state of an LL(1) table cell.
type CellKind int8

// Cells are empty, hold exactly one rule, or have been written more than once.
const (
	Empty CellKind = iota
	Occupied
	Conflict
)

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	case Conflict:
		return "conflict"
	}
	return fmt.Sprintf("CellKind(%d)", int(k))
}

// Cell is a cell of an LL(1) table. Rule is set for occupied cells.
// For conflicts, Rules holds the first and the latest rule written to the cell.
type Cell struct {
	Kind  CellKind
	Rule  *grammar.Rule
	Rules [2]*grammar.Rule
}

// Table is an LL(1) parse table, backed by a sparse matrix of rule serials.
// A cell holding a pair of values is a conflict.
type Table struct {
	g         *grammar.Grammar
	matrix    *sparse.IntMatrix
	rows      []llslr.Symbol
	cols      []llslr.Symbol
	rowOf     map[llslr.Symbol]int
	colOf     map[llslr.Symbol]int
	conflicts int
}

func newTable(g *grammar.Grammar) *Table {
	t := &Table{
		g:     g,
		rows:  g.NonTerminals(),
		cols:  g.Terminals(),
		rowOf: make(map[llslr.Symbol]int),
		colOf: make(map[llslr.Symbol]int),
	}
	if !g.IsTerminal(llslr.EndMarker) {
		t.cols = append(t.cols, llslr.EndMarker)
	}
	for i, A := range t.rows {
		t.rowOf[A] = i
	}
	for j, a := range t.cols {
		t.colOf[a] = j
	}
	t.matrix = sparse.NewIntMatrix(len(t.rows), len(t.cols), sparse.DefaultNullValue)
	return t
}

// write enters rule r into cell (A, a). Any write to a cell which is not empty
// turns the cell into a conflict, even if the same rule is written twice.
func (t *Table) write(A, a llslr.Symbol, r *grammar.Rule) {
	i, j := t.rowOf[A], t.colOf[a]
	v1, v2 := t.matrix.Values(i, j)
	switch {
	case v1 == t.matrix.NullValue():
		t.matrix.Set(i, j, int32(r.Serial))
	case v2 == t.matrix.NullValue():
		t.conflicts++
		fallthrough
	default:
		tracer().Debugf("conflict at (%v,%v): %v", A, a, r)
		t.matrix.Add(i, j, int32(r.Serial))
	}
}

// Grammar returns the grammar of the table.
func (t *Table) Grammar() *grammar.Grammar {
	return t.g
}

// IsLL1 is true if no cell of the table holds a conflict.
func (t *Table) IsLL1() bool {
	return t.conflicts == 0
}

// NonTerminals returns the row symbols of the table.
func (t *Table) NonTerminals() []llslr.Symbol {
	return append([]llslr.Symbol(nil), t.rows...)
}

// Terminals returns the column symbols of the table, including '$'.
func (t *Table) Terminals() []llslr.Symbol {
	return append([]llslr.Symbol(nil), t.cols...)
}

// Cell returns the cell for non-terminal A and lookahead a. Symbols unknown
// to the table yield an empty cell.
func (t *Table) Cell(A, a llslr.Symbol) Cell {
	i, ok1 := t.rowOf[A]
	j, ok2 := t.colOf[a]
	if !ok1 || !ok2 {
		return Cell{Kind: Empty}
	}
	v1, v2 := t.matrix.Values(i, j)
	switch {
	case v1 == t.matrix.NullValue():
		return Cell{Kind: Empty}
	case v2 == t.matrix.NullValue():
		return Cell{Kind: Occupied, Rule: t.g.Rule(int(v1))}
	}
	return Cell{Kind: Conflict, Rules: [2]*grammar.Rule{t.g.Rule(int(v1)), t.g.Rule(int(v2))}}
}

// CellConflict is a conflicting cell of an LL(1) table.
type CellConflict struct {
	NonTerminal llslr.Symbol
	Lookahead   llslr.Symbol
	Rules       [2]*grammar.Rule // first and latest rule written
}

func (c CellConflict) String() string {
	return fmt.Sprintf("(%v,%v): %v / %v", c.NonTerminal, c.Lookahead, c.Rules[0], c.Rules[1])
}

// Conflicts returns all conflicting cells, ordered by row and column.
func (t *Table) Conflicts() []CellConflict {
	var conflicts []CellConflict
	for _, e := range t.matrix.Entries() {
		if e.Second != t.matrix.NullValue() {
			conflicts = append(conflicts, CellConflict{
				NonTerminal: t.rows[e.Row],
				Lookahead:   t.cols[e.Col],
				Rules:       [2]*grammar.Rule{t.g.Rule(int(e.Value)), t.g.Rule(int(e.Second))},
			})
		}
	}
	return conflicts
}

// CellString renders a cell for table output: the rule body for occupied
// cells, all rule bodies separated by a slash for conflicts, "" if empty.
func (t *Table) CellString(A, a llslr.Symbol) string {
	c := t.Cell(A, a)
	switch c.Kind {
	case Occupied:
		return c.Rule.String()
	case Conflict:
		return c.Rules[0].String() + " / " + c.Rules[1].String()
	}
	return ""
}

// Entries returns the non-empty cells of the table as (row, column, rule
// serial) triplets of the underlying matrix, in row-major order.
func (t *Table) Entries() []sparse.Entry {
	return t.matrix.Entries()
}

// --- Table Generation ------------------------------------------------------

// TableGenerator creates an LL(1) table for an analysed grammar.
type TableGenerator struct {
	ga    *grammar.GrammarAnalysis
	table *Table
}

// NewTableGenerator creates a table generator for a grammar analysis.
func NewTableGenerator(ga *grammar.GrammarAnalysis) *TableGenerator {
	return &TableGenerator{ga: ga}
}

// CreateTable builds the LL(1) table. For every rule A → α, the rule is
// entered into (A, a) for every terminal a in FIRST(α); if α can derive
// epsilon, it is entered into (A, b) for every b in FOLLOW(A).
func (gen *TableGenerator) CreateTable() *Table {
	g := gen.ga.Grammar()
	t := newTable(g)
	for _, r := range g.Rules() {
		nullable := false
		for _, a := range gen.ga.FirstOfRule(r) {
			if a.IsEpsilon() {
				nullable = true
				continue
			}
			t.write(r.LHS, a, r)
		}
		if nullable {
			for _, b := range gen.ga.Follow(r.LHS) {
				t.write(r.LHS, b, r)
			}
		}
	}
	tracer().Infof("LL(1) table for %q: %d cells, %d conflicts", g.Name, t.matrix.ValueCount(), t.conflicts)
	gen.table = t
	return t
}

// Table returns the table created by CreateTable, or nil.
func (gen *TableGenerator) Table() *Table {
	return gen.table
}
