package lr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/llslr"
	"github.com/npillmayer/llslr/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

var exprGrammar = []string{
	"3",
	"S -> S+T T",
	"T -> T*F F",
	"F -> (S) i",
}

func makeTableGenerator(t *testing.T, lines ...string) *TableGenerator {
	g, err := grammar.ReadLines("G", lines)
	if err != nil {
		t.Fatal(err)
	}
	lrgen := NewTableGenerator(grammar.Analysis(g))
	lrgen.CreateTables()
	return lrgen
}

func TestClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.lr")
	defer teardown()
	//
	g, _ := grammar.ReadLines("Expr", exprGrammar)
	g = g.Augment()
	C := closure(g, newItemSet().Add(StartItem(g.StartRule())))
	if C.Size() != 7 {
		t.Errorf("expected closure of start item to contain 7 items, has %d", C.Size())
	}
	for _, i := range Items(C) {
		if i.Dot() != 0 {
			t.Errorf("expected all items of S0 to have the dot at 0, have %v", i)
		}
	}
	G := gotoSetClosure(g, C, 'S')
	assert.Equal(t, "{ S → S•+T, Ŝ → S• }", itemSetString(G))
}

func TestItem(t *testing.T) {
	g, _ := grammar.ReadLines("Expr", exprGrammar)
	i := StartItem(g.Rule(0))
	assert.Equal(t, llslr.Symbol('S'), i.PeekSymbol())
	assert.Equal(t, "S → •S+T", i.String())
	i = i.Advance().Advance().Advance()
	assert.True(t, i.IsComplete())
	assert.Equal(t, llslr.Symbol(0), i.PeekSymbol())
	assert.Equal(t, i, i.Advance())
	assert.Equal(t, "S+T", llslr.SymbolString(i.Prefix()))
}

func TestExpressionCFSM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.lr")
	defer teardown()
	//
	lrgen := makeTableGenerator(t, exprGrammar...)
	cfsm := lrgen.CFSM()
	if cfsm.Size() != 12 {
		t.Errorf("expected CFSM with 12 states, has %d", cfsm.Size())
	}
	if cfsm.S0.ID != 0 || len(cfsm.S0.Items()) != 7 {
		t.Errorf("unexpected start state %v", cfsm.S0)
	}
	// non-terminals are visited first, in ascending order: F, S, T
	for X, expected := range map[llslr.Symbol]int{'F': 1, 'S': 2, 'T': 3, '(': 4, 'i': 5} {
		if to, ok := cfsm.Transition(0, X); !ok || to != expected {
			t.Errorf("expected transition 0 --%v--> %d, have %d", X, expected, to)
		}
	}
	if _, ok := cfsm.Transition(0, '+'); ok {
		t.Errorf("expected no transition from state 0 over '+'")
	}
	accepting := 0
	for _, s := range cfsm.States() {
		if s.Accept {
			accepting++
			assert.Equal(t, 2, s.ID)
		}
	}
	assert.Equal(t, 1, accepting)
}

func TestExpressionTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.lr")
	defer teardown()
	//
	lrgen := makeTableGenerator(t, exprGrammar...)
	if !lrgen.IsSLR1() {
		t.Fatalf("expected expression grammar to be SLR(1), conflicts: %v", lrgen.Conflicts())
	}
	assert.Equal(t, int32(AcceptAction), lrgen.Action(2, '$'))
	assert.Equal(t, int32(ShiftAction), lrgen.Action(2, '+'))
	assert.Equal(t, int32(3), lrgen.Action(1, '+'), "reduce T → F")
	assert.Equal(t, int32(5), lrgen.Action(5, ')'), "reduce F → i")
	assert.Equal(t, lrgen.ActionTable().NullValue(), lrgen.Action(0, '+'))
	assert.Equal(t, lrgen.ActionTable().NullValue(), lrgen.Action(0, '#'), "unknown symbol")
	if to, ok := lrgen.Goto(0, 'T'); !ok || to != 3 {
		t.Errorf("expected GOTO(0,T) = 3, have %d", to)
	}
	assert.Equal(t, "s5", lrgen.ActionCell(0, 'i'))
	assert.Equal(t, "acc", lrgen.ActionCell(2, '$'))
	assert.Equal(t, "r3", lrgen.ActionCell(1, '*'))
	assert.Equal(t, "3", lrgen.GotoCell(0, 'T'))
	assert.Empty(t, lrgen.GotoCell(0, 'i'))
}

func TestDeterministicTables(t *testing.T) {
	lrgen1 := makeTableGenerator(t, exprGrammar...)
	lrgen2 := makeTableGenerator(t, exprGrammar...)
	if diff := cmp.Diff(lrgen1.ActionTable().Entries(), lrgen2.ActionTable().Entries()); diff != "" {
		t.Errorf("ACTION tables differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(lrgen1.GotoTable().Entries(), lrgen2.GotoTable().Entries()); diff != "" {
		t.Errorf("GOTO tables differ (-first +second):\n%s", diff)
	}
}

func TestConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.lr")
	defer teardown()
	//
	testCases := []struct {
		name  string
		lines []string
		slr1  bool
	}{
		{"expressions", exprGrammar, true},
		{"epsilon productions", []string{"3", "S -> AB", "A -> aA d", "B -> bBc e"}, true},
		{"nested", []string{"1", "S -> aSb e"}, true},
		{"reduce/reduce", []string{"2", "S -> A", "A -> A b"}, false},
		{"shift/reduce", []string{"3", "S -> L=R R", "L -> *R i", "R -> L"}, false},
		{"duplicate alternative", []string{"1", "S -> a a"}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lrgen := makeTableGenerator(t, tc.lines...)
			assert.Equal(t, tc.slr1, lrgen.IsSLR1())
			assert.Equal(t, tc.slr1, len(lrgen.Conflicts()) == 0)
		})
	}
}

func TestConflictCell(t *testing.T) {
	lrgen := makeTableGenerator(t, "2", "S -> A", "A -> A b")
	conflicts := lrgen.Conflicts()
	if assert.Len(t, conflicts, 1) {
		c := conflicts[0]
		assert.Equal(t, llslr.EndMarker, c.Symbol)
		assert.Equal(t, int32(ConflictAction), lrgen.Action(c.State, c.Symbol))
		assert.Equal(t, [2]int32{0, 1}, c.Actions)
		assert.Equal(t, "r0/r1", lrgen.ActionCell(c.State, c.Symbol))
	}
}

func TestExports(t *testing.T) {
	lrgen := makeTableGenerator(t, exprGrammar...)
	var dot bytes.Buffer
	if err := lrgen.CFSM().CFSM2GraphViz(&dot); err != nil {
		t.Fatal(err)
	}
	assert.True(t, strings.HasPrefix(dot.String(), "digraph {"))
	assert.Contains(t, dot.String(), "s000 -> s002 [label=\"S\"]")
	var html bytes.Buffer
	if err := ActionTableAsHTML(lrgen, &html); err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, html.String(), "<td>acc</td>")
	html.Reset()
	if err := GotoTableAsHTML(lrgen, &html); err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, html.String(), "GOTO table")
	empty := NewTableGenerator(lrgen.ga)
	assert.Error(t, ActionTableAsHTML(empty, &html))
}
