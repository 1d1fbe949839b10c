package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/llslr/grammar"
	"github.com/npillmayer/llslr/ll"
	"github.com/npillmayer/llslr/lr/slr"
)

// lineReader is implemented by readline.Instance as well as by lineScanner.
type lineReader interface {
	Readline() (string, error)
}

// lineScanner reads lines from files and pipes.
type lineScanner struct {
	scanner *bufio.Scanner
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{scanner: bufio.NewScanner(r)}
}

func (ls *lineScanner) Readline() (string, error) {
	if ls.scanner.Scan() {
		return ls.scanner.Text(), nil
	}
	if err := ls.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// recognizer is a parser answering queries with yes or no.
type recognizer interface {
	Parse(query string) bool
}

// session is the dialogue with a user: read a grammar, report its class, then
// answer queries.
type session struct {
	in  lineReader
	out io.Writer
}

const (
	msgSelect  = "Select a parser (T: for LL(1), B: for SLR(1), Q: quit):"
	msgLL1     = "Grammar is LL(1)."
	msgSLR1    = "Grammar is SLR(1)."
	msgNeither = "Grammar is neither LL(1) nor SLR(1)."
)

// run executes a session until the user quits or input is exhausted.
// Errors are reported to the user and end the session.
func (s *session) run() {
	g, err := s.readGrammar()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	llp, err := ll.NewParser(g)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	slrp, err := slr.NewParser(g)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	isLL1, isSLR1 := llp.IsLL1(), slrp.IsSLR1()
	tracer().Infof("grammar %q: LL(1) = %v, SLR(1) = %v", g.Name, isLL1, isSLR1)
	switch {
	case isLL1 && isSLR1:
		for {
			fmt.Fprintln(s.out, msgSelect)
			choice, err := s.in.Readline()
			if err != nil {
				return
			}
			var p recognizer
			switch strings.TrimSpace(choice) {
			case "Q":
				return
			case "T":
				p = llp
			case "B":
				p = slrp
			default:
				continue
			}
			if !s.answer(p) {
				return
			}
		}
	case isLL1:
		fmt.Fprintln(s.out, msgLL1)
		s.answer(llp)
	case isSLR1:
		fmt.Fprintln(s.out, msgSLR1)
		s.answer(slrp)
	default:
		fmt.Fprintln(s.out, msgNeither)
	}
}

// readGrammar reads the rule count and as many rule lines as announced.
func (s *session) readGrammar() (*grammar.Grammar, error) {
	first, err := s.in.Readline()
	if err != nil && err != io.EOF {
		return nil, err
	}
	lines := []string{first}
	if n, err := strconv.Atoi(strings.TrimSpace(first)); err == nil {
		for i := 0; i < n; i++ {
			line, err := s.in.Readline()
			if err != nil {
				break // ReadLines will report the missing lines
			}
			lines = append(lines, line)
		}
	}
	return grammar.ReadLines("input", lines)
}

// answer prints "yes" or "no" for every query line until an empty line. It
// returns false if input has been exhausted.
func (s *session) answer(p recognizer) bool {
	for {
		line, err := s.in.Readline()
		if err != nil {
			return false
		}
		query := strings.TrimSpace(line)
		if query == "" {
			return true
		}
		if p.Parse(query) {
			fmt.Fprintln(s.out, "yes")
		} else {
			fmt.Fprintln(s.out, "no")
		}
	}
}
