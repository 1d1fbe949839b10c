/*
Package llslr is a toolbox for deterministic parsing of small context-free grammars.

It analyses a grammar and constructs two alternative parsers for it: a top-down
predictive LL(1) parser and a bottom-up shift-reduce SLR(1) parser. Either one may
then be run against query strings. Package structure is as follows:

■ grammar: Package grammar holds the grammar model, a reader for the textual
grammar notation, grammar augmentation and FIRST/FOLLOW analysis.

■ ll: Package ll implements LL(1) parse tables and a predictive stack machine.

■ lr: Package lr implements the LR(0) automaton (CFSM) and SLR(1) parse tables,
with sub-package slr providing the shift-reduce stack machine.

■ scanner: Package scanner turns query strings into streams of symbol tokens.

The base package contains data types which are used throughout all the other packages:
grammar symbols, tokens and input spans.

Grammar symbols are single characters. Classification is derived, not declared:
upper-case letters are non-terminals, the letter 'e' denotes the empty string
(epsilon), and every other character is a terminal. '$' marks the end of input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package llslr
