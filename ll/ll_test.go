package ll

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/llslr"
	"github.com/npillmayer/llslr/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

var abGrammar = []string{
	"3",
	"S -> AB",
	"A -> aA d",
	"B -> bBc e",
}

var exprGrammar = []string{
	"3",
	"S -> S+T T",
	"T -> T*F F",
	"F -> (S) i",
}

func makeParser(t *testing.T, lines ...string) *Parser {
	g, err := grammar.ReadLines("G", lines)
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewParser(g)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.ll")
	defer teardown()
	//
	p := makeParser(t, abGrammar...)
	table := p.Table()
	if !table.IsLL1() {
		t.Fatalf("expected grammar to be LL(1), conflicts: %v", table.Conflicts())
	}
	assert.Equal(t, "ABS", llslr.SymbolString(table.NonTerminals()))
	assert.Equal(t, "abcd$", llslr.SymbolString(table.Terminals()))
	testCases := []struct {
		A, a llslr.Symbol
		rule string
	}{
		{'S', 'a', "S → AB"},
		{'S', 'd', "S → AB"},
		{'A', 'a', "A → aA"},
		{'A', 'd', "A → d"},
		{'B', 'b', "B → bBc"},
		{'B', 'c', "B → e"},
		{'B', '$', "B → e"},
	}
	for _, tc := range testCases {
		cell := table.Cell(tc.A, tc.a)
		if assert.Equal(t, Occupied, cell.Kind, "cell (%v,%v)", tc.A, tc.a) {
			assert.Equal(t, tc.rule, cell.Rule.String())
		}
	}
	assert.Equal(t, Empty, table.Cell('S', '$').Kind)
	assert.Equal(t, Empty, table.Cell('S', 'x').Kind)
	assert.Equal(t, "", table.CellString('A', 'b'))
}

func TestConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.ll")
	defer teardown()
	//
	testCases := []struct {
		name  string
		lines []string
		ll1   bool
	}{
		{"epsilon productions", abGrammar, true},
		{"nested", []string{"1", "S -> aSb e"}, true},
		{"left recursion", exprGrammar, false},
		{"left recursive alternative", []string{"2", "S -> A", "A -> A b"}, false},
		{"shared prefix", []string{"3", "S -> L=R R", "L -> *R i", "R -> L"}, false},
		{"duplicate alternative", []string{"1", "S -> a a"}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := makeParser(t, tc.lines...)
			assert.Equal(t, tc.ll1, p.IsLL1())
			assert.Equal(t, tc.ll1, len(p.Table().Conflicts()) == 0)
		})
	}
}

func TestDuplicateAlternativeConflict(t *testing.T) {
	p := makeParser(t, "1", "S -> a a")
	cell := p.Table().Cell('S', 'a')
	assert.Equal(t, Conflict, cell.Kind)
	assert.Equal(t, cell.Rules[0].Body(), cell.Rules[1].Body())
	conflicts := p.Table().Conflicts()
	if assert.Len(t, conflicts, 1) {
		assert.Equal(t, llslr.Symbol('S'), conflicts[0].NonTerminal)
		assert.Equal(t, llslr.Symbol('a'), conflicts[0].Lookahead)
	}
	assert.False(t, p.Parse("a"), "must not parse with conflicts")
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.ll")
	defer teardown()
	//
	testCases := []struct {
		lines  []string
		accept []string
		reject []string
	}{
		{
			lines:  abGrammar,
			accept: []string{"d", "ad", "dbc", "adbbcc", "aad$", "dbc$"},
			reject: []string{"db", "a", "$", "", "dcb", "adbbc", "dx", "d$d"},
		},
		{
			lines:  []string{"1", "S -> aSb e"},
			accept: []string{"", "$", "ab", "aabb", "aaabbb$"},
			reject: []string{"aab", "abb", "ba", "a b"},
		},
		{
			lines:  []string{"1", "S -> a"},
			accept: []string{"a", "a$", "a$$"},
			reject: []string{"a$$$", "aa", "a$a"},
		},
		{
			lines:  exprGrammar,
			reject: []string{"i+i*i", "i"},
		},
	}
	for _, tc := range testCases {
		p := makeParser(t, tc.lines...)
		for _, q := range tc.accept {
			assert.True(t, p.Parse(q), "expected %q to be accepted", q)
		}
		for _, q := range tc.reject {
			assert.False(t, p.Parse(q), "expected %q to be rejected", q)
		}
	}
}

func TestDerive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.ll")
	defer teardown()
	//
	p := makeParser(t, abGrammar...)
	rules, ok := p.Derive("adbbcc")
	if !ok {
		t.Fatalf("expected adbbcc to be accepted")
	}
	var derivation []string
	for _, r := range rules {
		derivation = append(derivation, r.String())
	}
	expected := []string{"S → AB", "A → aA", "A → d", "B → bBc", "B → bBc", "B → e"}
	if diff := cmp.Diff(expected, derivation); diff != "" {
		t.Errorf("derivation mismatch (-want +got):\n%s", diff)
	}
}

func TestDeterministicTable(t *testing.T) {
	p1 := makeParser(t, exprGrammar...)
	p2 := makeParser(t, exprGrammar...)
	if diff := cmp.Diff(p1.Table().Entries(), p2.Table().Entries()); diff != "" {
		t.Errorf("tables differ (-first +second):\n%s", diff)
	}
}

func TestConcurrentQueries(t *testing.T) {
	p := makeParser(t, abGrammar...)
	var wg sync.WaitGroup
	results := make([]bool, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results[i] = p.Parse("adbbcc")
			} else {
				results[i] = !p.Parse("adbbc")
			}
		}(i)
	}
	wg.Wait()
	for i, ok := range results {
		assert.True(t, ok, "query #%d", i)
	}
}
