package slr

import (
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

func TestParseExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.lr")
	defer teardown()
	//
	p := makeParser(t, exprGrammar...)
	if !p.IsSLR1() {
		t.Fatalf("expected expression grammar to be SLR(1)")
	}
	for _, q := range []string{"i", "i+i*i", "(i+i)*i", "((i))", "i*i*i+i$"} {
		assert.True(t, p.Parse(q), "expected %q to be accepted", q)
	}
	for _, q := range []string{"", "$", "i+", "(i", "i)", "ii", "i+*i", "i-i"} {
		assert.False(t, p.Parse(q), "expected %q to be rejected", q)
	}
}

func TestReductions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.lr")
	defer teardown()
	//
	p := makeParser(t, exprGrammar...)
	reductions, ok := p.Reductions("i+i*i")
	if !ok {
		t.Fatalf("expected i+i*i to be accepted")
	}
	type step struct {
		Rule string
		Span llslr.Span
	}
	var steps []step
	for _, r := range reductions {
		steps = append(steps, step{r.Rule.String(), r.Span})
	}
	expected := []step{
		{"F → i", llslr.Span{0, 1}},
		{"T → F", llslr.Span{0, 1}},
		{"S → T", llslr.Span{0, 1}},
		{"F → i", llslr.Span{2, 3}},
		{"T → F", llslr.Span{2, 3}},
		{"F → i", llslr.Span{4, 5}},
		{"T → T*F", llslr.Span{2, 5}},
		{"S → S+T", llslr.Span{0, 5}},
	}
	if diff := cmp.Diff(expected, steps); diff != "" {
		t.Errorf("reductions mismatch (-want +got):\n%s", diff)
	}
}

func TestEpsilonReductions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.lr")
	defer teardown()
	//
	p := makeParser(t, "1", "S -> aSb e")
	reductions, ok := p.Reductions("ab")
	if assert.True(t, ok) && assert.Len(t, reductions, 2) {
		assert.True(t, reductions[0].Rule.IsEpsilon())
		assert.Equal(t, llslr.Span{1, 1}, reductions[0].Span)
		assert.Equal(t, llslr.Span{0, 2}, reductions[1].Span)
	}
	for _, q := range []string{"", "$", "aabb"} {
		assert.True(t, p.Parse(q), "expected %q to be accepted", q)
	}
	for _, q := range []string{"aab", "abb", "ba"} {
		assert.False(t, p.Parse(q), "expected %q to be rejected", q)
	}
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.lr")
	defer teardown()
	//
	testCases := []struct {
		name   string
		lines  []string
		accept []string
		reject []string
	}{
		{
			name:   "epsilon productions",
			lines:  []string{"3", "S -> AB", "A -> aA d", "B -> bBc e"},
			accept: []string{"d", "ad", "dbc", "adbbcc", "aad$"},
			reject: []string{"db", "a", "$", "dcb", "adbbc", "dx"},
		},
		{
			name:   "trailing end markers",
			lines:  []string{"1", "S -> a"},
			accept: []string{"a", "a$", "a$$", "a$a"},
			reject: []string{"aa", "$a"},
		},
		{
			name:   "duplicate alternative",
			lines:  []string{"1", "S -> a a"},
			accept: []string{"a"},
			reject: []string{"aa"},
		},
		{
			name:   "not SLR(1)",
			lines:  []string{"3", "S -> L=R R", "L -> *R i", "R -> L"},
			reject: []string{"i", "i=i", "*i=i"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := makeParser(t, tc.lines...)
			for _, q := range tc.accept {
				assert.True(t, p.Parse(q), "expected %q to be accepted", q)
			}
			for _, q := range tc.reject {
				assert.False(t, p.Parse(q), "expected %q to be rejected", q)
			}
		})
	}
}

func TestParserUsesAugmentedGrammar(t *testing.T) {
	p := makeParser(t, exprGrammar...)
	assert.Equal(t, llslr.Symbol('Ŝ'), p.G.Start())
	assert.Equal(t, 12, p.TableGenerator().CFSM().Size())
}
