/*
Command llslr analyses grammars over single-character symbols and parses
query strings with an LL(1) or an SLR(1) parser.

Grammars are given in a line-oriented format: the first line holds the number
n of rules lines to follow, then n lines of the form

    A -> alt1 alt2 ...

Upper-case letters are non-terminals, 'e' is the empty string and every other
character is a terminal. The first non-terminal defined is the start symbol.

Sub-commands:

    llslr repl [--file F]            interactive dialogue: grammar, then queries
    llslr check <grammar>            grammar class, FIRST/FOLLOW, conflicts
    llslr parse <grammar> <query>…   answer yes/no for each query
    llslr tables <grammar>           print LL(1), ACTION and GOTO tables

The repl reads a grammar, tells whether it is LL(1), SLR(1), both, or neither,
and then answers "yes" or "no" for every query line until an empty line is
entered. If the grammar is both LL(1) and SLR(1), users select the parser with
T (LL(1)) or B (SLR(1)), or quit with Q.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llslr.cli'
func tracer() tracing.Trace {
	return tracing.Select("llslr.cli")
}
