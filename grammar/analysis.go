package grammar

import (
	"golang.org/x/tools/container/intsets"

	"github.com/npillmayer/llslr"
)

// Symbol sets are sparse int sets over rune values. They only ever grow during
// analysis, which is what makes the fixpoint iterations below terminate.

func newSet(syms ...llslr.Symbol) *intsets.Sparse {
	s := &intsets.Sparse{}
	for _, sym := range syms {
		s.Insert(int(sym))
	}
	return s
}

func withoutEpsilon(s *intsets.Sparse) *intsets.Sparse {
	if !s.Has(int(llslr.Epsilon)) {
		return s
	}
	c := &intsets.Sparse{}
	c.Copy(s)
	c.Remove(int(llslr.Epsilon))
	return c
}

func symbolsOf(s *intsets.Sparse) []llslr.Symbol {
	if s == nil {
		return nil
	}
	ints := s.AppendTo(nil)
	syms := make([]llslr.Symbol, len(ints))
	for i, x := range ints {
		syms[i] = llslr.Symbol(x)
	}
	return syms
}

// === FIRST =================================================================

// FirstSets maps grammar symbols to their FIRST sets, i.e. the terminals (and
// possibly epsilon) a derivation from the symbol may start with.
type FirstSets struct {
	sets map[llslr.Symbol]*intsets.Sparse
}

// ComputeFirst computes FIRST for every symbol of g. FIRST(a) = {a} for
// terminals, FIRST(e) = {e}; non-terminals start empty and grow in repeated
// passes over all rules until a pass brings no change.
func ComputeFirst(g *Grammar) *FirstSets {
	first := &FirstSets{sets: make(map[llslr.Symbol]*intsets.Sparse)}
	for a := range g.terminals {
		first.sets[a] = newSet(a)
	}
	first.sets[llslr.Epsilon] = newSet(llslr.Epsilon)
	for A := range g.nonterminals {
		first.sets[A] = newSet()
	}
	passes := 0
	for changed := true; changed; passes++ {
		changed = false
		for _, r := range g.rules {
			if first.sets[r.LHS].UnionWith(first.OfSequence(r.rhs)) {
				changed = true
			}
		}
	}
	tracer().Debugf("FIRST sets stable after %d passes", passes)
	return first
}

// lookup returns the FIRST set of sym. Symbols unknown to the grammar are
// treated as terminals.
func (first *FirstSets) lookup(sym llslr.Symbol) *intsets.Sparse {
	if s, ok := first.sets[sym]; ok {
		return s
	}
	return newSet(sym)
}

// OfSequence computes FIRST of a string of symbols Y1…Yk, walking from left to
// right until a symbol which cannot derive epsilon. Epsilon is included if every
// symbol can derive it, in particular for the empty sequence.
// The result is owned by the caller.
func (first *FirstSets) OfSequence(seq []llslr.Symbol) *intsets.Sparse {
	result := newSet()
	for _, Y := range seq {
		fy := first.lookup(Y)
		result.UnionWith(withoutEpsilon(fy))
		if !fy.Has(int(llslr.Epsilon)) {
			return result
		}
	}
	result.Insert(int(llslr.Epsilon))
	return result
}

// Of returns FIRST(sym) in ascending order.
func (first *FirstSets) Of(sym llslr.Symbol) []llslr.Symbol {
	return symbolsOf(first.lookup(sym))
}

// Has is true if t ∈ FIRST(sym).
func (first *FirstSets) Has(sym llslr.Symbol, t llslr.Symbol) bool {
	return first.lookup(sym).Has(int(t))
}

// === FOLLOW ================================================================

// FollowSets maps non-terminals to their FOLLOW sets, i.e. the terminals (and
// possibly the end marker) which may immediately follow the non-terminal in a
// sentential form.
type FollowSets struct {
	sets map[llslr.Symbol]*intsets.Sparse
}

// ComputeFollow computes FOLLOW for every non-terminal of g, given FIRST.
// FOLLOW(start) contains '$'. For every rule A → αXβ with X a non-terminal,
// FIRST(β)\{e} is added to FOLLOW(X), and FOLLOW(A) as well if β is empty or
// can derive epsilon. Passes repeat until nothing changes.
func ComputeFollow(g *Grammar, first *FirstSets) *FollowSets {
	follow := &FollowSets{sets: make(map[llslr.Symbol]*intsets.Sparse)}
	for A := range g.nonterminals {
		follow.sets[A] = newSet()
	}
	if g.start != 0 {
		follow.sets[g.start].Insert(int(llslr.EndMarker))
	}
	passes := 0
	for changed := true; changed; passes++ {
		changed = false
		for _, r := range g.rules {
			for i, X := range r.rhs {
				if !X.IsNonTerminal() {
					continue
				}
				fb := first.OfSequence(r.rhs[i+1:])
				if follow.sets[X].UnionWith(withoutEpsilon(fb)) {
					changed = true
				}
				if fb.Has(int(llslr.Epsilon)) && follow.sets[X].UnionWith(follow.sets[r.LHS]) {
					changed = true
				}
			}
		}
	}
	tracer().Debugf("FOLLOW sets stable after %d passes", passes)
	return follow
}

// Of returns FOLLOW(A) in ascending order.
func (follow *FollowSets) Of(A llslr.Symbol) []llslr.Symbol {
	return symbolsOf(follow.sets[A])
}

// Has is true if t ∈ FOLLOW(A).
func (follow *FollowSets) Has(A llslr.Symbol, t llslr.Symbol) bool {
	s, ok := follow.sets[A]
	return ok && s.Has(int(t))
}

// === Analysis ==============================================================

// GrammarAnalysis holds FIRST and FOLLOW sets of a grammar. Create one with
// Analysis(g).
type GrammarAnalysis struct {
	g      *Grammar
	first  *FirstSets
	follow *FollowSets
}

// Analysis computes FIRST and FOLLOW for grammar g.
func Analysis(g *Grammar) *GrammarAnalysis {
	ga := &GrammarAnalysis{g: g}
	ga.first = ComputeFirst(g)
	ga.follow = ComputeFollow(g, ga.first)
	for _, A := range g.NonTerminals() {
		tracer().Debugf("FIRST(%s) = %v, FOLLOW(%s) = %v", A, ga.First(A), A, ga.Follow(A))
	}
	return ga
}

// Grammar returns the analysed grammar.
func (ga *GrammarAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(sym) in ascending order.
func (ga *GrammarAnalysis) First(sym llslr.Symbol) []llslr.Symbol {
	return ga.first.Of(sym)
}

// Follow returns FOLLOW(A) in ascending order.
func (ga *GrammarAnalysis) Follow(A llslr.Symbol) []llslr.Symbol {
	return ga.follow.Of(A)
}

// FirstSets returns the FIRST sets of the grammar.
func (ga *GrammarAnalysis) FirstSets() *FirstSets {
	return ga.first
}

// FollowSets returns the FOLLOW sets of the grammar.
func (ga *GrammarAnalysis) FollowSets() *FollowSets {
	return ga.follow
}

// FirstOfRule returns FIRST of the right hand side of r in ascending order.
// It contains epsilon if the RHS can derive the empty string.
func (ga *GrammarAnalysis) FirstOfRule(r *Rule) []llslr.Symbol {
	return symbolsOf(ga.first.OfSequence(r.rhs))
}

// DerivesEpsilon is true if sym can derive the empty string.
func (ga *GrammarAnalysis) DerivesEpsilon(sym llslr.Symbol) bool {
	return ga.first.Has(sym, llslr.Epsilon)
}
