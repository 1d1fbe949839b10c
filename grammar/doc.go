/*
Package grammar implements the grammar model of llslr.

Building a Grammar

Grammars are usually read from their textual notation. The first line gives
the number n of grammar lines to follow, each of which lists the alternatives
of one non-terminal, separated by spaces:

    3
    S -> S+T T
    T -> T*F F
    F -> (S) i

Upper-case letters are non-terminals, 'e' stands for the empty string and every
other character is a terminal. The first non-terminal defined is the start symbol.

Alternatively, clients may add rules with a grammar builder object:

    b := grammar.NewGrammarBuilder("G")
    b.LHS('S').N('A').N('B').End()     // S  ->  A B
    b.LHS('A').T('a').N('A').End()     // A  ->  a A
    b.LHS('A').T('d').End()            // A  ->  d
    b.LHS('B').Epsilon()               // B  ->
    g, err := b.Grammar()

Static Grammar Analysis

After the grammar is complete, it has to be analysed. Analysis(g) computes FIRST
and FOLLOW sets by iterating to a fixpoint. Both parser flavours of this module
are constructed from an analysed grammar.

    ga := grammar.Analysis(g)
    fmt.Printf("FIRST(A) = %v", ga.First('A'))     // [a d]
    fmt.Printf("FOLLOW(A) = %v", ga.Follow('A'))   // [$ b]

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llslr.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("llslr.grammar")
}
