/*
Package iteratable implements iteratable container data structures.

Set is a special purpose set type, suitable mainly for implementing algorithms
around scanners, parsers, etc. These kinds of algorithms are often more straightforward
to describe as set constructions and operations. A typical example is the closure
of an LR(0) item set: iterate over the set while new items are added to it,
until no more items show up.

A Set keeps two views of its items: a canonical order, given by a comparator,
which is used for Values and for comparing sets; and the order of insertion,
which is used for iterating with IterateOnce/Next. Iteration will visit items
added during the iteration.

Unusually, most set operations are destructive!

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
