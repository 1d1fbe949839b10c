/*
Package lr implements prerequisites for LR parsing: LR(0) items, the
characteristic finite state machine (CFSM) of a grammar, and SLR(1) parser
tables derived from it.

Parser Construction

Using grammar analysis as input, a bottom-up parser can be constructed.
First a characteristic finite state machine (CFSM) is built from the
augmented grammar. The CFSM will then be transformed into a GOTO table and
an ACTION table for an SLR(1) parser. The CFSM will not be thrown away,
but is made available to the client. This is intended
for debugging purposes, but may be useful for error recovery, too.
It can be exported to Graphviz's Dot-format.

Example:

    g, _ := grammar.ReadLines("Expr", []string{"3", "S -> S+T T", "T -> T*F F", "F -> (S) i"})
    ga := grammar.Analysis(g.Augment())
    lrgen := lr.NewTableGenerator(ga)   // ga is a GrammarAnalysis, see package grammar
    lrgen.CreateTables()                // construct LR parser tables
    if !lrgen.IsSLR1() {
        fmt.Println(lrgen.Conflicts())
    }

ACTION table entries are either ShiftAction, AcceptAction, or the serial
number of a rule to reduce. The target state of a shift is taken from the GOTO
table, which holds every edge of the CFSM, i.e. transitions over terminals as
well as over non-terminals.

Items are built over canonical rules (see grammar.Canonical), so duplicated
alternatives of a non-terminal result in a single item and do not lead to
reduce/reduce conflicts.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llslr.lr'.
func tracer() tracing.Trace {
	return tracing.Select("llslr.lr")
}
