package scanner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/llslr"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer    *lexmachine.Lexer
	alphabet []llslr.Symbol
}

// NewLMAdapter creates a new lexmachine adapter. It receives the alphabet of
// a grammar, i.e. its terminals, and adds the end marker '$'. Every symbol is
// a literal of its own.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(terminals []llslr.Symbol) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	seen := make(map[llslr.Symbol]bool, len(terminals)+1)
	syms := append(append([]llslr.Symbol(nil), terminals...), llslr.EndMarker)
	for _, a := range syms {
		if seen[a] || a.IsEpsilon() || a.IsNonTerminal() {
			continue
		}
		seen[a] = true
		adapter.alphabet = append(adapter.alphabet, a)
		adapter.Lexer.Add([]byte(literal(a)), MakeToken(a))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// literal escapes a symbol for use as a lexmachine pattern. Letters, digits and
// non-ASCII symbols match themselves; ASCII punctuation is escaped with a
// backslash.
func literal(a llslr.Symbol) string {
	r := rune(a)
	if r >= utf8.RuneSelf || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
		return string(r)
	}
	return "\\" + string(r)
}

// Alphabet returns the symbols the scanner recognizes.
func (lm *LMAdapter) Alphabet() []llslr.Symbol {
	return append([]llslr.Symbol(nil), lm.alphabet...)
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	text := []byte(input)
	s, err := lm.Lexer.Scanner(text)
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, input: text, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	input   []byte
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface. After the end of input has been
// reached, every call returns an EOF token.
func (lms *LMScanner) NextToken() llslr.Token {
	if lms.scanner == nil {
		return lms.eof()
	}
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			return lms.foreign(ui.StartTC)
		}
		return lms.foreign(lms.scanner.TC)
	}
	if eof {
		return lms.eof()
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %q @%d", token.Lexeme, token.TC)
	from := uint64(token.TC)
	return MakeDefaultToken(
		llslr.Symbol(token.Type),
		string(token.Lexeme),
		llslr.Span{from, from + uint64(len(token.Lexeme))},
	)
}

func (lms *LMScanner) eof() DefaultToken {
	end := uint64(len(lms.input))
	return MakeDefaultToken(EOF, "", llslr.Span{end, end})
}

// foreign creates a token for a character which is not part of the scanner's
// alphabet and moves the scanner behind it.
func (lms *LMScanner) foreign(at int) llslr.Token {
	if at < 0 || at >= len(lms.input) {
		return lms.eof()
	}
	r, size := utf8.DecodeRune(lms.input[at:])
	lms.scanner.TC = at + size
	return MakeDefaultToken(
		llslr.Symbol(r),
		string(lms.input[at:at+size]),
		llslr.Span{uint64(at), uint64(at + size)},
	)
}

// ---------------------------------------------------------------------------

// MakeToken is a pre-defined action which wraps a scanned match into a token
// for symbol a.
func MakeToken(a llslr.Symbol) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(a), string(m.Bytes), m), nil
	}
}

// Tokens scans a complete input and returns its tokens, excluding EOF.
// This is mainly useful for debugging and testing.
func Tokens(t Tokenizer) []llslr.Token {
	var tokens []llslr.Token
	for tok := t.NextToken(); tok.Symbol() != EOF; tok = t.NextToken() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// TokensString formats tokens for tracing.
func TokensString(tokens []llslr.Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s%s", tok.Lexeme(), tok.Span())
	}
	return b.String()
}
