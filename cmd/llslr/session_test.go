package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func runSession(input string) string {
	var out bytes.Buffer
	s := &session{
		in:  newLineScanner(strings.NewReader(input)),
		out: &out,
	}
	s.run()
	return out.String()
}

func TestSessions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.cli")
	defer teardown()
	//
	testCases := []struct {
		name   string
		input  []string
		output []string
	}{
		{
			name:   "SLR(1) only",
			input:  []string{"3", "S -> S+T T", "T -> T*F F", "F -> (S) i", "i+i", "(i)", "(i+i)*i)", ""},
			output: []string{msgSLR1, "yes", "yes", "no"},
		},
		{
			name: "both LL(1) and SLR(1)",
			input: []string{"3", "S -> AB", "A -> aA d", "B -> bBc e",
				"T", "d", "adbc", "a", "", "B", "d", "adbc", "a", "", "Q"},
			output: []string{msgSelect, "yes", "yes", "no", msgSelect, "yes", "yes", "no", msgSelect},
		},
		{
			name:   "unknown selection",
			input:  []string{"1", "S -> aSb e", "X", "T", "ab", "", "Q"},
			output: []string{msgSelect, msgSelect, "yes", msgSelect},
		},
		{
			name:   "neither",
			input:  []string{"2", "S -> A", "A -> A b", "b"},
			output: []string{msgNeither},
		},
		{
			name:   "end of input while answering queries",
			input:  []string{"3", "S -> S+T T", "T -> T*F F", "F -> (S) i", "i"},
			output: []string{msgSLR1, "yes"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := runSession(strings.Join(tc.input, "\n") + "\n")
			expected := strings.Join(tc.output, "\n") + "\n"
			assert.Equal(t, expected, out)
		})
	}
}

func TestSessionErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llslr.cli")
	defer teardown()
	//
	for _, input := range []string{"", "x\n", "2\nS -> a\n", "1\nS a\n"} {
		out := runSession(input)
		assert.True(t, strings.HasPrefix(out, "Error: "), "input %q yields %q", input, out)
	}
}
