package ll

import (
	"strings"

	"github.com/npillmayer/llslr"
	"github.com/npillmayer/llslr/grammar"
	"github.com/npillmayer/llslr/scanner"
)

// Parser is an LL(1) parser. Create one with NewParser.
type Parser struct {
	g     *grammar.Grammar
	ga    *grammar.GrammarAnalysis
	table *Table
	lexer *scanner.LMAdapter
}

// NewParser analyses grammar g and creates its LL(1) table. The returned
// parser may be used for any number of queries. An error is returned only if
// the query scanner cannot be created; a grammar which is not LL(1) still
// results in a parser, see IsLL1.
func NewParser(g *grammar.Grammar) (*Parser, error) {
	ga := grammar.Analysis(g)
	lexer, err := scanner.NewLMAdapter(g.Terminals())
	if err != nil {
		return nil, err
	}
	return &Parser{
		g:     g,
		ga:    ga,
		table: NewTableGenerator(ga).CreateTable(),
		lexer: lexer,
	}, nil
}

// Grammar returns the parser's grammar.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.g
}

// Analysis returns FIRST and FOLLOW sets of the parser's grammar.
func (p *Parser) Analysis() *grammar.GrammarAnalysis {
	return p.ga
}

// Table returns the parser's LL(1) table.
func (p *Parser) Table() *Table {
	return p.table
}

// IsLL1 is true if the parse table is free of conflicts.
func (p *Parser) IsLL1() bool {
	return p.table.IsLL1()
}

// Parse returns true if query is a sentence of the grammar. The end marker
// '$' is appended to the query if absent.
func (p *Parser) Parse(query string) bool {
	_, accepted := p.Derive(query)
	return accepted
}

// Derive parses query and returns the rules applied, i.e. the leftmost
// derivation of the query if it has been accepted.
//
// The parser keeps an explicit stack of symbols, starting with [$ S]. The top
// symbol is popped and, if a terminal, matched against the current input
// symbol; a non-terminal is replaced by the right hand side of the rule found
// in its table row for the current input symbol. The query is accepted when
// the stack is empty and the input has been consumed up to the final '$' or
// the position just before it.
func (p *Parser) Derive(query string) ([]*grammar.Rule, bool) {
	if !p.IsLL1() {
		tracer().Debugf("grammar %q is not LL(1), rejecting %q", p.g.Name, query)
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
	var derivation []*grammar.Rule
	stack := []llslr.Symbol{llslr.EndMarker, p.g.Start()}
	token := scan.NextToken()
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		a := token.Symbol()
		switch {
		case top.IsEpsilon():
			continue
		case !top.IsNonTerminal():
			if top != a {
				tracer().Debugf("expected %v, have %v at %d", top, a, token.Span().From())
				return derivation, false
			}
			token = scan.NextToken()
		default:
			cell := p.table.Cell(top, a)
			if cell.Kind != Occupied {
				tracer().Debugf("no rule for (%v,%v)", top, a)
				return derivation, false
			}
			derivation = append(derivation, cell.Rule)
			rhs := cell.Rule.RHS()
			for i := len(rhs) - 1; i >= 0; i-- {
				stack = append(stack, rhs[i])
			}
		}
	}
	cursor := int(token.Span().From())
	if cursor < len(query)-1 {
		tracer().Debugf("stack empty with input left at %d", cursor)
		return derivation, false
	}
	return derivation, true
}
