/*
Package slr provides an SLR(1)-parser. It uses the tools of package lr to
prepare the necessary parse tables. The SLR parser utilizes these tables to
create a right derivation for a given input, provided through a scanner
interface.

This parser is intended for small grammars, e.g. for study purposes or
small domain-specific languages over single-character symbols.

The main focus for this implementation is adaptability and on-the-fly usage.
Clients are able to construct the parse tables from a grammar and use the
parser directly, without a code-generation or compile step. If you want, you
can create a grammar from user input and use a parser for it in a couple of
lines of code.

Package slr can only handle SLR(1) grammars. For grammars with conflicts in
the ACTION table, Parse always returns false.

Usage

    g, err := grammar.ReadLines("Expr", []string{"3", "S -> S+T T", "T -> T*F F", "F -> (S) i"})
    ...
    p, err := slr.NewParser(g)
    if p.IsSLR1() {
        accepted := p.Parse("i+i*i")
    }

Parsers do not hold state for a parse in flight, so a single parser may serve
concurrent callers.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slr

import (
	"fmt"
	"strings"

	"github.com/npillmayer/llslr"
	"github.com/npillmayer/llslr/grammar"
	"github.com/npillmayer/llslr/lr"
	"github.com/npillmayer/llslr/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llslr.lr'.
func tracer() tracing.Trace {
	return tracing.Select("llslr.lr")
}

// Parser is an SLR(1)-parser type. Create and initialize one with slr.NewParser(...)
type Parser struct {
	G     *grammar.Grammar // augmented grammar
	lrgen *lr.TableGenerator
	lexer *scanner.LMAdapter
}

// We store pairs of state-IDs and symbols on the parse stack.
type stackitem struct {
	stateID int          // ID of a CFSM state
	sym     llslr.Symbol // grammar symbol (terminal or non-terminal) leading to the state
	span    llslr.Span   // input span over which this symbol reaches
}

// Reduction is a reduce step of the parser: the rule reduced and the span of
// input covered by its left hand side.
type Reduction struct {
	Rule *grammar.Rule
	Span llslr.Span
}

func (r Reduction) String() string {
	return fmt.Sprintf("%v %v", r.Rule, r.Span)
}

// NewParser creates an SLR(1) parser for grammar g. The grammar is augmented
// and analysed, then the CFSM and the parse tables are constructed. An error
// is returned only if the query scanner cannot be created; a grammar which is
// not SLR(1) still results in a parser, see IsSLR1.
func NewParser(g *grammar.Grammar) (*Parser, error) {
	lexer, err := scanner.NewLMAdapter(g.Terminals())
	if err != nil {
		return nil, err
	}
	lrgen := lr.NewTableGenerator(grammar.Analysis(g.Augment()))
	lrgen.CreateTables()
	return &Parser{
		G:     lrgen.Grammar(),
		lrgen: lrgen,
		lexer: lexer,
	}, nil
}

// TableGenerator returns the table generator holding the CFSM and the
// parse tables.
func (p *Parser) TableGenerator() *lr.TableGenerator {
	return p.lrgen
}

// IsSLR1 is true if the ACTION table is free of conflicts.
func (p *Parser) IsSLR1() bool {
	return p.lrgen.IsSLR1()
}

// Parse returns true if query is a sentence of the grammar. The end marker
// '$' is appended to the query if absent.
func (p *Parser) Parse(query string) bool {
	_, accepted := p.Reductions(query)
	return accepted
}

// Reductions parses query and returns the reduce steps performed. For an
// accepted query, this is a rightmost derivation in reverse.
//
// The parser returns as soon as the ACTION table says accept, ignoring any
// input following the accepting '$'.
func (p *Parser) Reductions(query string) ([]Reduction, bool) {
	if !p.IsSLR1() {
		tracer().Debugf("grammar %q is not SLR(1), rejecting %q", p.G.Name, query)
		return nil, false
	}
	if !strings.HasSuffix(query, llslr.EndMarker.String()) {
		query += llslr.EndMarker.String()
	}
	scan, err := p.lexer.Scanner(query)
	if err != nil {
		tracer().Errorf("cannot scan %q: %v", query, err)
		return nil, false
	}
	scan.SetErrorHandler(func(e error) {
		tracer().Debugf("query %q: %v", query, e)
	})
	return p.parse(scan)
}

func (p *Parser) parse(scan scanner.Tokenizer) ([]Reduction, bool) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	var reductions []Reduction
	stack := make([]stackitem, 1, 64)
	stack[0] = stackitem{stateID: p.lrgen.CFSM().S0.ID} // push S0
	token := scan.NextToken()
	for {
		a := token.Symbol()
		state := stack[len(stack)-1] // TOS
		action := p.lrgen.Action(state.stateID, a)
		tracer().Debugf("action(%d,%v) = %s", state.stateID, a, lr.ActionString(action))
		switch {
		case action == lr.AcceptAction:
			return reductions, true
		case action == lr.ShiftAction:
			nextstate, ok := p.lrgen.Goto(state.stateID, a)
			if !ok {
				return reductions, false
			}
			stack = append(stack, stackitem{nextstate, a, token.Span()})
			token = scan.NextToken()
		case action >= 0: // reduce action
			rule := p.G.Rule(int(action))
			var handlespan llslr.Span
			stack, handlespan = reduce(stack, rule)
			if handlespan.IsNull() { // epsilon was just before lookahead
				pos := token.Span().From()
				handlespan = llslr.Span{pos, pos}
			}
			tos := stack[len(stack)-1]
			nextstate, ok := p.lrgen.Goto(tos.stateID, rule.LHS)
			if !ok {
				tracer().Debugf("no GOTO(%d,%v)", tos.stateID, rule.LHS)
				return reductions, false
			}
			tracer().Debugf("reduce %v, next state = %d", rule, nextstate)
			reductions = append(reductions, Reduction{Rule: rule, Span: handlespan})
			stack = append(stack, stackitem{nextstate, rule.LHS, handlespan})
		default: // no action found
			tracer().Debugf("syntax error at %v %v", token, token.Span())
			return reductions, false
		}
	}
}

// reduce performs a reduce action for a rule
//
//    LHS --> X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn are represented on the stack as states
//
//    [TOS]  Sn(Xn, span_n) ... S1(X1, span1)  ...
//
// and are popped. Returns the stack and the span covered by X1 ... Xn.
func reduce(stack []stackitem, rule *grammar.Rule) ([]stackitem, llslr.Span) {
	var handlespan llslr.Span
	handle := rule.RHS()
	for i := len(handle) - 1; i >= 0; i-- {
		tos := stack[len(stack)-1]
		if tos.sym != handle[i] {
			tracer().Errorf("expected %v on top of stack, got %v", handle[i], tos.sym)
		}
		handlespan = handlespan.Extend(tos.span)
		stack = stack[:len(stack)-1] // pop TOS
	}
	return stack, handlespan
}
