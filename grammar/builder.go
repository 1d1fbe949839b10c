package grammar

import (
	"fmt"

	"github.com/npillmayer/llslr"
)

// GrammarBuilder is a helper for constructing grammars rule by rule.
//
//    b := NewGrammarBuilder("G")
//    b.LHS('S').N('A').T('a').End()   // S  ->  A a
//    b.LHS('A').Epsilon()             // A  ->
//    g, err := b.Grammar()
//
type GrammarBuilder struct {
	g   *Grammar
	err error // first error encountered
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{g: NewGrammar(gname)}
}

// RuleBuilder collects the symbols of a single rule.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs llslr.Symbol
	rhs []llslr.Symbol
}

// LHS starts a new rule for non-terminal A.
func (gb *GrammarBuilder) LHS(A llslr.Symbol) *RuleBuilder {
	if !A.IsNonTerminal() {
		gb.fail(fmt.Errorf("%w: %q", ErrNotANonTerminal, A))
	}
	return &RuleBuilder{gb: gb, lhs: A}
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(A llslr.Symbol) *RuleBuilder {
	if !A.IsNonTerminal() {
		rb.gb.fail(fmt.Errorf("symbol %q is not a non-terminal", A))
	}
	rb.rhs = append(rb.rhs, A)
	return rb
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(a llslr.Symbol) *RuleBuilder {
	if !a.IsTerminal() {
		rb.gb.fail(fmt.Errorf("symbol %q is not a terminal", a))
	}
	rb.rhs = append(rb.rhs, a)
	return rb
}

// End closes the rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	if rb.gb.err != nil {
		return nil
	}
	return rb.gb.g.addRule(rb.lhs, rb.rhs)
}

// Epsilon closes the rule as an epsilon production. Symbols collected so far
// are discarded.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rhs = nil
	return rb.End()
}

// Grammar returns the grammar built so far, or the first error encountered
// while adding rules.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	return gb.g, nil
}

func (gb *GrammarBuilder) fail(err error) {
	if gb.err == nil {
		tracer().Errorf("grammar builder: %v", err)
		gb.err = err
	}
}
