package grammar

import (
	"testing"

	"github.com/npillmayer/llslr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestFirstOfTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.grammar")
	defer teardown()
	//
	g, _ := ReadLines("Expr", exprGrammar)
	ga := Analysis(g)
	for _, a := range g.Terminals() {
		first := ga.First(a)
		if len(first) != 1 || first[0] != a {
			t.Errorf("expected FIRST(%v) = {%v}, is %v", a, a, first)
		}
	}
	if first := ga.First(llslr.Epsilon); len(first) != 1 || first[0] != llslr.Epsilon {
		t.Errorf("expected FIRST(e) = {e}, is %v", first)
	}
	if first := ga.First('x'); len(first) != 1 || first[0] != 'x' {
		t.Errorf("expected unknown symbol to be treated as terminal, FIRST(x) = %v", first)
	}
}

func TestFirstFollow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.grammar")
	defer teardown()
	//
	testCases := []struct {
		name   string
		lines  []string
		first  map[llslr.Symbol]string
		follow map[llslr.Symbol]string
	}{
		{
			name:   "left recursive expressions",
			lines:  exprGrammar,
			first:  map[llslr.Symbol]string{'S': "(i", 'T': "(i", 'F': "(i"},
			follow: map[llslr.Symbol]string{'S': "$)+", 'T': "$)*+", 'F': "$)*+"},
		},
		{
			name:   "epsilon productions",
			lines:  abGrammar,
			first:  map[llslr.Symbol]string{'S': "ad", 'A': "ad", 'B': "be"},
			follow: map[llslr.Symbol]string{'S': "$", 'A': "$b", 'B': "$c"},
		},
		{
			name:   "nullable start symbol",
			lines:  []string{"1", "S -> aSb e"},
			first:  map[llslr.Symbol]string{'S': "ae"},
			follow: map[llslr.Symbol]string{'S': "$b"},
		},
		{
			name:   "nullable chain",
			lines:  []string{"3", "S -> ABc", "A -> a e", "B -> b e"},
			first:  map[llslr.Symbol]string{'S': "abc", 'A': "ae", 'B': "be"},
			follow: map[llslr.Symbol]string{'S': "$", 'A': "bc", 'B': "c"},
		},
		{
			name:   "undefined non-terminal",
			lines:  []string{"1", "S -> aX b"},
			first:  map[llslr.Symbol]string{'S': "ab", 'X': ""},
			follow: map[llslr.Symbol]string{'S': "$", 'X': "$"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := ReadLines("G", tc.lines)
			if !assert.NoError(t, err) {
				return
			}
			ga := Analysis(g)
			for A, expected := range tc.first {
				assert.Equal(t, expected, llslr.SymbolString(ga.First(A)), "FIRST(%v)", A)
			}
			for A, expected := range tc.follow {
				assert.Equal(t, expected, llslr.SymbolString(ga.Follow(A)), "FOLLOW(%v)", A)
			}
			assert.True(t, ga.FollowSets().Has(g.Start(), llslr.EndMarker))
		})
	}
}

func TestFirstOfSequence(t *testing.T) {
	g, _ := ReadLines("AB", abGrammar)
	ga := Analysis(g)
	assert.Equal(t, "bc", llslr.SymbolString(ga.FirstOfRule(&Rule{LHS: 'X', rhs: syms("Bc")})))
	assert.Equal(t, "be", llslr.SymbolString(ga.FirstOfRule(&Rule{LHS: 'X', rhs: syms("B")})))
	assert.Equal(t, "e", llslr.SymbolString(ga.FirstOfRule(&Rule{LHS: 'X'})))
	assert.True(t, ga.DerivesEpsilon('B'))
	assert.False(t, ga.DerivesEpsilon('S'))
}

func TestAugmentedFollow(t *testing.T) {
	g, _ := ReadLines("Expr", exprGrammar)
	ga := Analysis(g.Augment())
	assert.Equal(t, "$", llslr.SymbolString(ga.Follow('Ŝ')))
	assert.Equal(t, "$)+", llslr.SymbolString(ga.Follow('S')))
}
