package lr

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/npillmayer/llslr"
	"github.com/npillmayer/llslr/grammar"
	"github.com/npillmayer/llslr/lr/sparse"
)

// Actions for parser action tables. Reduce actions are encoded as the serial
// number of the grammar rule to reduce, i.e. as values ≥ 0.
const (
	ShiftAction    = -1
	AcceptAction   = -2
	ConflictAction = -3 // returned for table cells holding more than one action
)

// TableGenerator is a generator object to construct LR parser tables.
// Clients usually create a Grammar G, then a GrammarAnalysis-object for G,
// and then a table generator. TableGenerator.CreateTables() constructs
// the CFSM and parser tables for an SLR(1) parser recognizing grammar G.
type TableGenerator struct {
	g            *grammar.Grammar // augmented grammar
	ga           *grammar.GrammarAnalysis
	dfa          *CFSM
	gototable    *Table
	actiontable  *Table
	HasConflicts bool
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
// If the grammar has not been augmented, the generator augments and analyses
// it on its own.
func NewTableGenerator(ga *grammar.GrammarAnalysis) *TableGenerator {
	g := ga.Grammar()
	if g.StartRule() == nil {
		g = g.Augment()
		ga = grammar.Analysis(g)
	}
	return &TableGenerator{g: g, ga: ga}
}

// Grammar returns the augmented grammar the tables are generated for.
func (lrgen *TableGenerator) Grammar() *grammar.Grammar {
	return lrgen.g
}

// CFSM returns the characteristic finite state machine (CFSM) for a grammar.
// Usually clients call lrgen.CreateTables() beforehand, but it is possible
// to call lrgen.CFSM() directly. The CFSM will be created, if it has not
// been constructed previously.
func (lrgen *TableGenerator) CFSM() *CFSM {
	if lrgen.dfa == nil {
		lrgen.dfa = buildCFSM(lrgen.g)
	}
	return lrgen.dfa
}

// GotoTable returns the GOTO table for LR-parsing a grammar. The tables have to be
// built by calling CreateTables() previously.
func (lrgen *TableGenerator) GotoTable() *Table {
	if lrgen.gototable == nil {
		tracer().Errorf("tables not yet initialized")
	}
	return lrgen.gototable
}

// ActionTable returns the ACTION table for LR-parsing a grammar. The tables have to be
// built by calling CreateTables() previously.
func (lrgen *TableGenerator) ActionTable() *Table {
	if lrgen.actiontable == nil {
		tracer().Errorf("tables not yet initialized")
	}
	return lrgen.actiontable
}

// CreateTables creates the necessary data structures for an SLR parser.
func (lrgen *TableGenerator) CreateTables() {
	lrgen.CFSM()
	lrgen.gototable = lrgen.BuildGotoTable()
	lrgen.actiontable, lrgen.HasConflicts = lrgen.BuildSLR1ActionTable()
	tracer().Infof("SLR(1) tables for %q created, conflicts = %v", lrgen.g.Name, lrgen.HasConflicts)
}

// IsSLR1 is true if the ACTION table is free of conflicts.
// Clients have to call CreateTables() first.
func (lrgen *TableGenerator) IsSLR1() bool {
	return lrgen.actiontable != nil && !lrgen.HasConflicts
}

// Action returns ACTION[state, a]: ShiftAction, AcceptAction, a rule serial to
// reduce, ConflictAction, or the table's null value for error entries.
func (lrgen *TableGenerator) Action(state int, a llslr.Symbol) int32 {
	return lrgen.actiontable.Action(state, a)
}

// Goto returns the state reached from state over symbol X, if any.
// For non-terminals this is the GOTO table proper; for terminals it is the
// target of a shift.
func (lrgen *TableGenerator) Goto(state int, X llslr.Symbol) (int, bool) {
	v := lrgen.gototable.Value(state, X)
	if v == lrgen.gototable.NullValue() {
		return 0, false
	}
	return int(v), true
}

// columns returns the column symbols of the parser tables: non-terminals,
// terminals and the end marker.
func (lrgen *TableGenerator) columns() []llslr.Symbol {
	cols := append(lrgen.g.NonTerminals(), lrgen.g.Terminals()...)
	if !lrgen.g.IsTerminal(llslr.EndMarker) {
		cols = append(cols, llslr.EndMarker)
	}
	return cols
}

// BuildGotoTable builds the GOTO table. This is normally not called directly, but rather
// via CreateTables(). Every edge of the CFSM is entered into the table.
func (lrgen *TableGenerator) BuildGotoTable() *Table {
	dfa := lrgen.CFSM()
	gototable := newTable(dfa.Size(), lrgen.columns())
	tracer().Infof("GOTO table of size %d x %d", dfa.Size(), len(gototable.columns))
	for _, state := range dfa.States() {
		for _, e := range dfa.allEdges(state) {
			gototable.set(state.ID, e.label, int32(e.to.ID))
		}
	}
	return gototable
}

// BuildSLR1ActionTable constructs the SLR(1) Action table. This method is normally not called
// by clients, but rather via CreateTables(). It builds an action table including
// lookahead (using the FOLLOW-set created by the grammar analyzer).
//
// For building an ACTION table we iterate over all the states of the CFSM.
// An inner loop iterates over all the items within a CFSM-state.
// If an item has a terminal immediately after the dot, we produce a shift
// entry. If an item's dot is behind the complete RHS of a rule, we produce a
// reduce-entry for the rule for each terminal from FOLLOW(LHS), or an accept
// entry for the end marker if the rule is the start rule.
//
// A cell which already holds a different action becomes a conflict. The second
// action is kept for diagnostics.
func (lrgen *TableGenerator) BuildSLR1ActionTable() (*Table, bool) {
	dfa := lrgen.CFSM()
	actions := newTable(dfa.Size(), lrgen.columns())
	tracer().Infof("ACTION table of size %d x %d", dfa.Size(), len(actions.columns))
	start := lrgen.g.StartRule()
	hasConflicts := false
	enter := func(state int, a llslr.Symbol, action int32) {
		if !actions.write(state, a, action) {
			tracer().Debugf("    conflict in state %d on %v: %s", state, a, actions.cell(state, a))
			hasConflicts = true
		}
	}
	for _, state := range dfa.States() {
		tracer().Debugf("--- state %d --------------------------------", state.ID)
		for _, i := range state.Items() {
			if a := i.PeekSymbol(); a != 0 {
				if !a.IsNonTerminal() {
					enter(state.ID, a, ShiftAction)
				}
				continue
			}
			if i.rule == start {
				enter(state.ID, llslr.EndMarker, AcceptAction)
				continue
			}
			lookaheads := lrgen.ga.Follow(i.rule.LHS)
			tracer().Debugf("    reduce %v on %v", i.rule, lookaheads)
			for _, la := range lookaheads {
				enter(state.ID, la, int32(i.rule.Serial))
			}
		}
	}
	return actions, hasConflicts
}

// Conflict describes an ACTION table cell with more than one action.
type Conflict struct {
	State   int
	Symbol  llslr.Symbol
	Actions [2]int32
}

func (c Conflict) String() string {
	return fmt.Sprintf("state %d on %v: %s/%s", c.State, c.Symbol,
		ActionString(c.Actions[0]), ActionString(c.Actions[1]))
}

// Conflicts returns all conflicting ACTION table cells, ordered by state and
// column. Clients have to call CreateTables() first.
func (lrgen *TableGenerator) Conflicts() []Conflict {
	if lrgen.actiontable == nil {
		return nil
	}
	var conflicts []Conflict
	for _, e := range lrgen.actiontable.Entries() {
		if e.Second != lrgen.actiontable.NullValue() {
			conflicts = append(conflicts, Conflict{
				State:   e.State,
				Symbol:  e.Symbol,
				Actions: [2]int32{e.Value, e.Second},
			})
		}
	}
	return conflicts
}

// ActionString is a short helper to stringify an action table value.
func ActionString(v int32) string {
	switch {
	case v == sparse.DefaultNullValue:
		return "<none>"
	case v == AcceptAction:
		return "accept"
	case v == ShiftAction:
		return "shift"
	case v == ConflictAction:
		return "conflict"
	case v >= 0:
		return fmt.Sprintf("reduce %d", v)
	}
	return fmt.Sprintf("<%d>", v)
}

// ActionCell renders ACTION[state, a] in textbook notation: "s4" for a shift
// to state 4, "r2" for reducing rule 2, "acc" for accept, and both actions
// separated by a slash for conflicts. Empty cells yield "".
func (lrgen *TableGenerator) ActionCell(state int, a llslr.Symbol) string {
	a1, a2 := lrgen.actiontable.Values(state, a)
	null := lrgen.actiontable.NullValue()
	if a1 == null {
		return ""
	}
	cell := lrgen.actionCell(state, a, a1)
	if a2 != null {
		cell += "/" + lrgen.actionCell(state, a, a2)
	}
	return cell
}

func (lrgen *TableGenerator) actionCell(state int, a llslr.Symbol, v int32) string {
	switch {
	case v == ShiftAction:
		if target, ok := lrgen.Goto(state, a); ok {
			return fmt.Sprintf("s%d", target)
		}
		return "s"
	case v == AcceptAction:
		return "acc"
	case v >= 0:
		return fmt.Sprintf("r%d", v)
	}
	return "?"
}

// GotoCell renders GOTO[state, A] for non-terminal A, or "".
func (lrgen *TableGenerator) GotoCell(state int, A llslr.Symbol) string {
	if target, ok := lrgen.Goto(state, A); ok && A.IsNonTerminal() {
		return fmt.Sprintf("%d", target)
	}
	return ""
}

// === Tables ================================================================

// Table is a parser table with rows for CFSM states and columns for grammar
// symbols. It is backed by a sparse matrix.
type Table struct {
	matrix  *sparse.IntMatrix
	columns []llslr.Symbol
	colOf   map[llslr.Symbol]int
}

func newTable(rows int, columns []llslr.Symbol) *Table {
	t := &Table{
		matrix:  sparse.NewIntMatrix(rows, len(columns), sparse.DefaultNullValue),
		columns: columns,
		colOf:   make(map[llslr.Symbol]int, len(columns)),
	}
	for j, sym := range columns {
		t.colOf[sym] = j
	}
	return t
}

// Columns returns the column symbols of the table.
func (t *Table) Columns() []llslr.Symbol {
	return append([]llslr.Symbol(nil), t.columns...)
}

// NullValue returns the value of empty cells.
func (t *Table) NullValue() int32 {
	return t.matrix.NullValue()
}

// ValueCount returns the number of non-empty cells.
func (t *Table) ValueCount() int {
	return t.matrix.ValueCount()
}

func (t *Table) index(state int, sym llslr.Symbol) (int, bool) {
	j, ok := t.colOf[sym]
	return j, ok && state >= 0 && state < t.matrix.M()
}

// Value returns the (primary) value of a cell. Symbols without a column and
// unknown states yield the null value.
func (t *Table) Value(state int, sym llslr.Symbol) int32 {
	a, _ := t.Values(state, sym)
	return a
}

// Values returns both values of a cell.
func (t *Table) Values(state int, sym llslr.Symbol) (int32, int32) {
	j, ok := t.index(state, sym)
	if !ok {
		return t.NullValue(), t.NullValue()
	}
	return t.matrix.Values(state, j)
}

// Action returns the value of a cell, or ConflictAction if it holds more than
// one value.
func (t *Table) Action(state int, sym llslr.Symbol) int32 {
	a1, a2 := t.Values(state, sym)
	if a2 != t.NullValue() {
		return ConflictAction
	}
	return a1
}

func (t *Table) set(state int, sym llslr.Symbol, v int32) {
	j, ok := t.index(state, sym)
	if !ok {
		panic(fmt.Sprintf("lr.Table.set() for unknown cell (%d,%v)", state, sym))
	}
	t.matrix.Set(state, j, v)
}

// write enters an action into a cell. It returns false if the cell has already
// been holding a different action.
func (t *Table) write(state int, sym llslr.Symbol, v int32) bool {
	a1, a2 := t.Values(state, sym)
	if a1 == t.NullValue() {
		t.set(state, sym, v)
		return true
	}
	if a1 == v || a2 == v {
		return true
	}
	j, _ := t.index(state, sym)
	t.matrix.Add(state, j, v)
	return false
}

func (t *Table) cell(state int, sym llslr.Symbol) string {
	a1, a2 := t.Values(state, sym)
	if a2 == t.NullValue() {
		return ActionString(a1)
	}
	return ActionString(a1) + "/" + ActionString(a2)
}

// TableEntry is a non-empty cell of a table.
type TableEntry struct {
	State  int
	Symbol llslr.Symbol
	Value  int32
	Second int32
}

// Entries returns all non-empty cells, ordered by state and column.
func (t *Table) Entries() []TableEntry {
	me := t.matrix.Entries()
	entries := make([]TableEntry, len(me))
	for k, e := range me {
		entries[k] = TableEntry{
			State:  e.Row,
			Symbol: t.columns[e.Col],
			Value:  e.Value,
			Second: e.Second,
		}
	}
	return entries
}

// === Export ================================================================

// GotoTableAsHTML exports a GOTO-table in HTML-format.
func GotoTableAsHTML(lrgen *TableGenerator, w io.Writer) error {
	if lrgen.gototable == nil {
		return fmt.Errorf("GOTO table not yet created, cannot export to HTML")
	}
	var cols []llslr.Symbol
	for _, A := range lrgen.gototable.columns {
		if A.IsNonTerminal() {
			cols = append(cols, A)
		}
	}
	return parserTableAsHTML(lrgen, "GOTO", lrgen.gototable, cols, lrgen.GotoCell, w)
}

// ActionTableAsHTML exports the SLR(1) ACTION-table in HTML-format.
func ActionTableAsHTML(lrgen *TableGenerator, w io.Writer) error {
	if lrgen.actiontable == nil {
		return fmt.Errorf("ACTION table not yet created, cannot export to HTML")
	}
	var cols []llslr.Symbol
	for _, a := range lrgen.actiontable.columns {
		if !a.IsNonTerminal() {
			cols = append(cols, a)
		}
	}
	return parserTableAsHTML(lrgen, "ACTION", lrgen.actiontable, cols, lrgen.ActionCell, w)
}

func parserTableAsHTML(lrgen *TableGenerator, tname string, table *Table, cols []llslr.Symbol,
	cell func(int, llslr.Symbol) string, w io.Writer) error {
	//
	var b strings.Builder
	b.WriteString("<html><body>\n")
	fmt.Fprintf(&b, "%s table of size = %d<p>", tname, table.ValueCount())
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, A := range cols {
		fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(A.String()))
	}
	b.WriteString("</tr>\n")
	for _, state := range lrgen.dfa.States() {
		fmt.Fprintf(&b, "<tr><td>state %d</td>\n", state.ID)
		for _, A := range cols {
			td := cell(state.ID, A)
			if td == "" {
				td = "&nbsp;"
			}
			fmt.Fprintf(&b, "<td>%s</td>\n", td)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}
