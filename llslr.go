package llslr

import (
	"fmt"
	"unicode"
)

// --- Grammar symbols -------------------------------------------------------

// Symbol is a grammar symbol. Symbols are single characters; whether a symbol is a
// terminal or a non-terminal follows from the character itself (see Class).
type Symbol rune

// Special symbols.
const (
	Epsilon   Symbol = 'e' // the empty string
	EndMarker Symbol = '$' // end of input
)

// SymbolClass is a category type for grammar symbols.
type SymbolClass int8

// Symbol classes. Every symbol belongs to exactly one of them.
const (
	TerminalClass SymbolClass = iota
	NonTerminalClass
	EpsilonClass
)

func (c SymbolClass) String() string {
	switch c {
	case NonTerminalClass:
		return "non-terminal"
	case EpsilonClass:
		return "epsilon"
	}
	return "terminal"
}

// Class classifies a symbol: upper-case letters are non-terminals, 'e' is
// epsilon, anything else is a terminal.
func (s Symbol) Class() SymbolClass {
	if unicode.IsUpper(rune(s)) {
		return NonTerminalClass
	} else if s == Epsilon {
		return EpsilonClass
	}
	return TerminalClass
}

// IsNonTerminal is true for upper-case symbols.
func (s Symbol) IsNonTerminal() bool {
	return s.Class() == NonTerminalClass
}

// IsTerminal is true for symbols which are neither non-terminals nor epsilon.
func (s Symbol) IsTerminal() bool {
	return s.Class() == TerminalClass
}

// IsEpsilon is true for the epsilon sentinel.
func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}

func (s Symbol) String() string {
	return string(rune(s))
}

// Symbols converts a string of single-character symbols into a symbol slice.
func Symbols(s string) []Symbol {
	syms := make([]Symbol, 0, len(s))
	for _, r := range s {
		syms = append(syms, Symbol(r))
	}
	return syms
}

// SymbolString is the inverse of Symbols.
func SymbolString(syms []Symbol) string {
	r := make([]rune, len(syms))
	for i, s := range syms {
		r[i] = rune(s)
	}
	return string(r)
}

// --- A general purpose interface for tokens --------------------------------

// Tokens represent input symbols. They are produced by a scanner and
// reflect terminals in a query string.
//
// An example would be a token for the terminal 'i' at the third position of
// the query "i+i*i":
//
//    Symbol  = 'i'         // the grammar symbol this token stands for
//    Lexeme  = "i"         // lexeme how it appeared in the input stream
//    Span    = 2…3         // occured from byte position 2 in the input stream
//
type Token interface {
	Symbol() Symbol
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, a parser may track which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other. A null span
// is neutral.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	} else if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
