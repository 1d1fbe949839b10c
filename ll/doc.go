/*
Package ll implements a predictive LL(1) parser.

A parse table is built from FIRST and FOLLOW sets of a grammar (see package
grammar). Every non-terminal has a row, every terminal (plus the end marker
'$') has a column. A cell holds the rule to expand the non-terminal with,
given the next input symbol. If more than one rule lands in a cell, the cell
becomes a conflict and the grammar is not LL(1).

Usage

    g, err := grammar.ReadLines("AB", []string{"3", "S -> AB", "A -> aA d", "B -> bBc e"})
    ...
    p, err := ll.NewParser(g)
    if p.IsLL1() {
        accepted := p.Parse("adbbcc")
    }

A parser never executes against a table with conflicts: for grammars which are
not LL(1), Parse always returns false.

Parsers do not hold state for a parse in flight, so a single parser may serve
concurrent callers.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llslr.ll'.
func tracer() tracing.Trace {
	return tracing.Select("llslr.ll")
}
