/*
Package scanner defines an interface for scanners to be used with the parsers
of packages ll and lr/slr, and provides a scanner for query strings over the
single-character alphabet of a grammar.

The scanner is an adapter for lexmachine: a DFA is compiled once from the
terminals of a grammar plus the end marker '$', and then used for every query.
Characters outside of the alphabet are reported to the scanner's error handler
and passed on as tokens of their own. A parser will not find a table entry for
them and reject the input at this position.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/llslr"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llslr.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("llslr.scanner")
}

// EOF is the symbol of the token signalling the end of input.
const EOF = llslr.Symbol(-1)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() llslr.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Infof("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used for the lexmachine
// scanner.
type DefaultToken struct {
	sym    llslr.Symbol
	lexeme string
	span   llslr.Span
}

var _ llslr.Token = DefaultToken{}

// MakeDefaultToken creates a token.
func MakeDefaultToken(sym llslr.Symbol, lexeme string, span llslr.Span) DefaultToken {
	return DefaultToken{
		sym:    sym,
		lexeme: lexeme,
		span:   span,
	}
}

// Symbol returns the grammar symbol of the token, or EOF.
func (t DefaultToken) Symbol() llslr.Symbol {
	return t.sym
}

// Lexeme returns the input text of the token.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span returns the byte positions of the token within the input.
func (t DefaultToken) Span() llslr.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.sym == EOF {
		return "<EOF>"
	}
	return t.sym.String()
}
