package grammar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/llslr"
)

// Separator between a non-terminal and its alternatives in grammar notation.
const Separator = "->"

// Structural errors of the textual grammar notation. Readers wrap them with
// line information; test with errors.Is.
var (
	ErrLineCount     = errors.New("first line must hold the number of grammar lines")
	ErrTruncated     = errors.New("grammar ends before the announced number of lines")
	ErrMalformedLine = errors.New("malformed grammar line")
)

// Read reads a grammar in textual notation from r. Lines after the announced
// grammar lines are not consumed beyond the scanner's buffering; use ReadLines
// if the caller needs to keep reading from the same source.
func Read(name string, r io.Reader) (*Grammar, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ReadLines(name, lines)
}

// ReadLines reads a grammar from a line slice. Line 0 holds the count n, lines
// 1…n each hold one grammar line of the form
//
//    A -> alt1 alt2 ...
//
// Any structural error is fatal; no partial grammar is returned.
func ReadLines(name string, lines []string) (*Grammar, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("line 1: %w", ErrLineCount)
	}
	n, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || n < 1 {
		return nil, fmt.Errorf("line 1: %q: %w", lines[0], ErrLineCount)
	}
	if len(lines) < n+1 {
		return nil, fmt.Errorf("expected %d grammar lines, got %d: %w", n, len(lines)-1, ErrTruncated)
	}
	g := NewGrammar(name)
	for i := 1; i <= n; i++ {
		lhs, alts, err := ParseLine(lines[i])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if err = g.AddProductions(lhs, alts...); err != nil {
			return nil, fmt.Errorf("line %d: %v: %w", i+1, err, ErrMalformedLine)
		}
	}
	g.Dump()
	return g, nil
}

// ParseLine splits a single grammar line into its non-terminal and its
// alternatives.
func ParseLine(line string) (llslr.Symbol, []string, error) {
	head, body, found := strings.Cut(line, Separator)
	if !found {
		return 0, nil, fmt.Errorf("%q: missing %q: %w", line, Separator, ErrMalformedLine)
	}
	head = strings.TrimSpace(head)
	if utf8.RuneCountInString(head) != 1 {
		return 0, nil, fmt.Errorf("%q: left hand side must be a single symbol: %w", line, ErrMalformedLine)
	}
	lhs, _ := utf8.DecodeRuneInString(head)
	if !llslr.Symbol(lhs).IsNonTerminal() {
		return 0, nil, fmt.Errorf("%q: %q is not a non-terminal: %w", line, lhs, ErrMalformedLine)
	}
	return llslr.Symbol(lhs), strings.Fields(body), nil
}
