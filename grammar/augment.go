package grammar

import (
	"unicode"

	"github.com/npillmayer/llslr"
)

// primedStart is the preferred name for the start symbol of an augmented grammar.
const primedStart llslr.Symbol = 'Ŝ'

// Augment returns a new grammar consisting of all rules of g plus a rule
// S' → S, where S is the start symbol of g and S' is a fresh non-terminal.
// S' is the start symbol of the augmented grammar. g itself is not modified.
func (g *Grammar) Augment() *Grammar {
	aug := NewGrammar(g.Name + "'")
	for _, r := range g.rules {
		aug.addRule(r.LHS, r.rhs)
	}
	for A := range g.nonterminals {
		aug.nonterminals[A] = struct{}{} // keep non-terminals without rules
	}
	S := g.freshNonTerminal()
	var rhs []llslr.Symbol
	if g.start != 0 {
		rhs = []llslr.Symbol{g.start}
	}
	aug.startRule = aug.addRule(S, rhs)
	aug.start = S
	tracer().Debugf("augmented grammar %s with %v", aug.Name, aug.startRule)
	return aug
}

// freshNonTerminal finds an upper-case symbol not yet in use by g.
func (g *Grammar) freshNonTerminal() llslr.Symbol {
	if g.isFresh(primedStart) {
		return primedStart
	}
	for r := 'Z'; r >= 'A'; r-- {
		if g.isFresh(llslr.Symbol(r)) {
			return llslr.Symbol(r)
		}
	}
	for r := rune(0xC0); r <= unicode.MaxRune; r++ {
		if unicode.IsUpper(r) && g.isFresh(llslr.Symbol(r)) {
			return llslr.Symbol(r)
		}
	}
	panic("grammar has exhausted all upper-case symbols")
}

func (g *Grammar) isFresh(A llslr.Symbol) bool {
	_, used := g.nonterminals[A]
	return !used
}
