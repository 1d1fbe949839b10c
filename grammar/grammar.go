package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/llslr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrNotANonTerminal is returned when a rule is requested for a left hand side
// which does not classify as a non-terminal.
var ErrNotANonTerminal = errors.New("left hand side is not a non-terminal")

// --- Rules -----------------------------------------------------------------

// Rule is a grammar production. An epsilon production has an empty RHS.
type Rule struct {
	Serial int          // position of the rule within its grammar
	LHS    llslr.Symbol // a non-terminal
	rhs    []llslr.Symbol
}

// RHS returns the right hand side of a rule. For an epsilon production the
// result is empty.
func (r *Rule) RHS() []llslr.Symbol {
	return r.rhs
}

// Len returns the number of symbols on the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEpsilon is true for the empty production A → e.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

// Equals compares two rules by content, ignoring serial numbers.
func (r *Rule) Equals(other *Rule) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.LHS == other.LHS && slices.Equal(r.rhs, other.rhs)
}

// Body returns the right hand side in grammar notation, i.e. "e" for an
// epsilon production.
func (r *Rule) Body() string {
	if r.IsEpsilon() {
		return llslr.Epsilon.String()
	}
	return llslr.SymbolString(r.rhs)
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s → %s", r.LHS, r.Body())
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a context-free grammar over single-character symbols.
// Every symbol appearing in a rule is either a terminal, a non-terminal, or
// the epsilon sentinel.
//
// Grammars are filled once, either by a reader, a builder or by AddProductions,
// and are not modified after having been handed to an analysis.
type Grammar struct {
	Name         string
	rules        []*Rule
	byLHS        map[llslr.Symbol][]*Rule
	terminals    map[llslr.Symbol]struct{}
	nonterminals map[llslr.Symbol]struct{}
	start        llslr.Symbol
	startRule    *Rule // set for augmented grammars only
}

// NewGrammar creates an empty grammar.
func NewGrammar(name string) *Grammar {
	return &Grammar{
		Name:         name,
		byLHS:        make(map[llslr.Symbol][]*Rule),
		terminals:    make(map[llslr.Symbol]struct{}),
		nonterminals: make(map[llslr.Symbol]struct{}),
	}
}

// AddProductions adds alternatives for non-terminal lhs. Each alternative is a
// contiguous run of single-character symbols; "e" denotes the empty production.
// The first non-terminal ever added becomes the start symbol.
func (g *Grammar) AddProductions(lhs llslr.Symbol, alternatives ...string) error {
	if !lhs.IsNonTerminal() {
		return fmt.Errorf("%w: %q", ErrNotANonTerminal, lhs)
	}
	g.declare(lhs)
	for _, alt := range alternatives {
		g.addRule(lhs, llslr.Symbols(alt))
	}
	return nil
}

func (g *Grammar) declare(lhs llslr.Symbol) {
	if _, ok := g.byLHS[lhs]; !ok {
		g.byLHS[lhs] = []*Rule{}
	}
	g.nonterminals[lhs] = struct{}{}
	if g.start == 0 {
		g.start = lhs
	}
}

// addRule appends a rule and classifies its symbols. Epsilon symbols within a
// longer alternative stand for the empty string and are dropped.
func (g *Grammar) addRule(lhs llslr.Symbol, syms []llslr.Symbol) *Rule {
	g.declare(lhs)
	rhs := make([]llslr.Symbol, 0, len(syms))
	for _, sym := range syms {
		switch sym.Class() {
		case llslr.NonTerminalClass:
			g.nonterminals[sym] = struct{}{}
		case llslr.TerminalClass:
			g.terminals[sym] = struct{}{}
		case llslr.EpsilonClass:
			continue
		}
		rhs = append(rhs, sym)
	}
	r := &Rule{Serial: len(g.rules), LHS: lhs, rhs: rhs}
	g.rules = append(g.rules, r)
	g.byLHS[lhs] = append(g.byLHS[lhs], r)
	tracer().Debugf("rule %3d: %v", r.Serial, r)
	return r
}

// Start returns the start symbol.
func (g *Grammar) Start() llslr.Symbol {
	return g.start
}

// StartRule returns the rule S' → S of an augmented grammar, or nil if g has
// not been produced by Augment.
func (g *Grammar) StartRule() *Rule {
	return g.startRule
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule number i, or nil.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Rules returns all rules in insertion order.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// FindNonTermRules returns the alternatives of non-terminal A in insertion order.
// If distinct is set, alternatives duplicating an earlier one are skipped.
func (g *Grammar) FindNonTermRules(A llslr.Symbol, distinct bool) []*Rule {
	rules := g.byLHS[A]
	if !distinct {
		return append([]*Rule(nil), rules...)
	}
	r := make([]*Rule, 0, len(rules))
	for _, rule := range rules {
		if g.Canonical(rule) == rule {
			r = append(r, rule)
		}
	}
	return r
}

// Canonical returns the first rule of g which equals r by content. Rules with
// identical LHS and RHS are thus mapped to a single representative.
func (g *Grammar) Canonical(r *Rule) *Rule {
	for _, rule := range g.byLHS[r.LHS] {
		if rule.Equals(r) {
			return rule
		}
	}
	return r
}

// IsTerminal is true if sym is a terminal of g.
func (g *Grammar) IsTerminal(sym llslr.Symbol) bool {
	_, ok := g.terminals[sym]
	return ok
}

// IsNonTerminal is true if sym is a non-terminal of g.
func (g *Grammar) IsNonTerminal(sym llslr.Symbol) bool {
	_, ok := g.nonterminals[sym]
	return ok
}

// Terminals returns the terminals of g in ascending order.
func (g *Grammar) Terminals() []llslr.Symbol {
	return sorted(g.terminals)
}

// NonTerminals returns the non-terminals of g in ascending order.
func (g *Grammar) NonTerminals() []llslr.Symbol {
	return sorted(g.nonterminals)
}

// EachNonTerminal iterates over all non-terminals, in ascending order.
func (g *Grammar) EachNonTerminal(mapper func(A llslr.Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.NonTerminals() {
		r = append(r, mapper(A))
	}
	return r
}

// EachSymbol iterates over all grammar symbols, non-terminals first, then
// terminals, each group in ascending order.
func (g *Grammar) EachSymbol(mapper func(A llslr.Symbol) interface{}) []interface{} {
	r := g.EachNonTerminal(mapper)
	for _, a := range g.Terminals() {
		r = append(r, mapper(a))
	}
	return r
}

// Dump traces the rules of g at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// String lists the grammar one non-terminal per line, with alternatives
// separated by '|', in order of definition.
func (g *Grammar) String() string {
	var b strings.Builder
	seen := make(map[llslr.Symbol]bool)
	for _, r := range g.rules {
		if seen[r.LHS] {
			continue
		}
		seen[r.LHS] = true
		alts := make([]string, 0, len(g.byLHS[r.LHS]))
		for _, alt := range g.byLHS[r.LHS] {
			alts = append(alts, alt.Body())
		}
		fmt.Fprintf(&b, "%s -> %s\n", r.LHS, strings.Join(alts, " | "))
	}
	return b.String()
}

func sorted(set map[llslr.Symbol]struct{}) []llslr.Symbol {
	syms := maps.Keys(set)
	slices.Sort(syms)
	return syms
}
