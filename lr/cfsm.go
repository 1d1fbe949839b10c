package lr

import (
	"fmt"
	"io"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/llslr"
	"github.com/npillmayer/llslr/grammar"
	"github.com/npillmayer/llslr/lr/iteratable"
)

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// closure computes the closure of an item set: for every item A → α•Bβ with
// B a non-terminal, add B → •γ for all alternatives of B, until no new items
// show up. S is not modified.
func closure(g *grammar.Grammar, S *iteratable.Set) *iteratable.Set {
	C := S.Copy()
	C.IterateOnce()
	for C.Next() {
		B := asItem(C.Item()).PeekSymbol()
		if !B.IsNonTerminal() {
			continue
		}
		for _, r := range g.FindNonTermRules(B, true) {
			C.Add(StartItem(r))
		}
	}
	return C
}

// gotoSet advances the dot over X for every item in I with X after the dot.
// The result is not closed.
func gotoSet(I *iteratable.Set, X llslr.Symbol) *iteratable.Set {
	gotoset := newItemSet()
	for _, x := range I.Values() {
		if i := asItem(x); i.PeekSymbol() == X {
			gotoset.Add(i.Advance())
		}
	}
	return gotoset
}

// gotoSetClosure computes goto(I, X) = closure of the advanced items.
func gotoSetClosure(g *grammar.Grammar, I *iteratable.Set, X llslr.Symbol) *iteratable.Set {
	gclosure := closure(g, gotoSet(I, X))
	tracer().Debugf("goto(%s) --%s--> %s", itemSetString(I), X, itemSetString(gclosure))
	return gclosure
}

// === CFSM Construction =====================================================

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID     int             // serial ID of this state, in order of discovery
	items  *iteratable.Set // configuration items within this state
	Accept bool            // does this state contain the completed start item?
}

// CFSM edge between 2 states, directed and labelled with a grammar symbol.
type cfsmEdge struct {
	from  *CFSMState
	to    *CFSMState
	label llslr.Symbol
}

// Items returns the items of s in canonical order.
func (s *CFSMState) Items() []Item {
	return Items(s.items)
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	for _, i := range s.Items() {
		tracer().Debugf("    %v", i)
	}
	tracer().Debugf("-------------------------")
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

func (s *CFSMState) containsCompletedStartRule(start *grammar.Rule) bool {
	for _, x := range s.items.Values() {
		if i := asItem(x); i.rule == start && i.IsComplete() {
			return true
		}
	}
	return false
}

// We need this for the set of states. It sorts states by serial ID.
func stateComparator(s1, s2 interface{}) int {
	c1 := s1.(*CFSMState)
	c2 := s2.(*CFSMState)
	return utils.IntComparator(c1.ID, c2.ID)
}

// CFSM is the characteristic finite state machine for an LR grammar, i.e. the
// LR(0) state diagram, also known as the canonical collection of LR(0) item
// sets. It will be constructed by a TableGenerator.
// Clients normally do not use it directly. Nevertheless, there are some methods
// defined on it, e.g, for debugging purposes, or even to
// compute your own tables from it.
type CFSM struct {
	g       *grammar.Grammar        // this CFSM is for (augmented) grammar g
	states  *treeset.Set            // all the states, ordered by ID
	edges   *arraylist.List         // all the edges between states
	index   map[string][]*CFSMState // states by hash of their item set
	S0      *CFSMState              // start state
	cfsmIds int                     // serial IDs for CFSM states
}

// create an empty (initial) CFSM automaton.
func emptyCFSM(g *grammar.Grammar) *CFSM {
	c := &CFSM{g: g}
	c.states = treeset.NewWith(stateComparator)
	c.edges = arraylist.New()
	c.index = make(map[string][]*CFSMState)
	return c
}

// hashKey computes a key from the canonical item list of a set. Sets with
// equal items have equal keys; hash collisions are resolved by comparing the
// sets.
func hashKey(iset *iteratable.Set) string {
	key, err := structhash.Hash(itemKeys(iset), 1)
	if err != nil { // cannot happen for plain structs of ints
		panic(fmt.Sprintf("cannot hash item set: %v", err))
	}
	return key
}

// addState adds a state for an item set, if no state with equal items exists.
// Returns the state and whether it is new.
func (c *CFSM) addState(iset *iteratable.Set) (*CFSMState, bool) {
	key := hashKey(iset)
	for _, s := range c.index[key] {
		if s.items.Equals(iset) {
			return s, false
		}
	}
	s := &CFSMState{ID: c.cfsmIds, items: iset}
	c.cfsmIds++
	c.states.Add(s)
	c.index[key] = append(c.index[key], s)
	return s, true
}

func (c *CFSM) addEdge(s0, s1 *CFSMState, sym llslr.Symbol) {
	c.edges.Add(&cfsmEdge{from: s0, to: s1, label: sym})
}

func (c *CFSM) allEdges(s *CFSMState) []*cfsmEdge {
	it := c.edges.Iterator()
	r := make([]*cfsmEdge, 0, 2)
	for it.Next() {
		e := it.Value().(*cfsmEdge)
		if e.from == s {
			r = append(r, e)
		}
	}
	return r
}

// Grammar returns the augmented grammar the CFSM has been built for.
func (c *CFSM) Grammar() *grammar.Grammar {
	return c.g
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return c.states.Size()
}

// States returns all states in order of their IDs.
func (c *CFSM) States() []*CFSMState {
	states := make([]*CFSMState, 0, c.states.Size())
	it := c.states.Iterator()
	for it.Next() {
		states = append(states, it.Value().(*CFSMState))
	}
	return states
}

// State returns the state with ID id, or nil.
func (c *CFSM) State(id int) *CFSMState {
	if id < 0 || id >= c.states.Size() {
		return nil
	}
	return c.states.Values()[id].(*CFSMState)
}

// Transition returns the ID of the state reached from state id over symbol X.
func (c *CFSM) Transition(id int, X llslr.Symbol) (int, bool) {
	it := c.edges.Iterator()
	for it.Next() {
		e := it.Value().(*cfsmEdge)
		if e.from.ID == id && e.label == X {
			return e.to.ID, true
		}
	}
	return 0, false
}

// buildCFSM constructs the characteristic finite state machine for an
// augmented grammar. States are processed in order of discovery; for every
// state, goto-sets are computed for all non-terminals, then all terminals,
// both in ascending order. State numbering is therefore deterministic.
func buildCFSM(g *grammar.Grammar) *CFSM {
	tracer().Debugf("=== build CFSM ==================================================")
	cfsm := emptyCFSM(g)
	start := g.StartRule()
	closure0 := closure(g, newItemSet().Add(StartItem(start)))
	cfsm.S0, _ = cfsm.addState(closure0)
	cfsm.S0.Accept = cfsm.S0.containsCompletedStartRule(start)
	cfsm.S0.Dump()
	symbols := append(g.NonTerminals(), g.Terminals()...)
	S := treeset.NewWith(stateComparator) // work list; smallest ID first
	S.Add(cfsm.S0)
	for S.Size() > 0 {
		s := S.Values()[0].(*CFSMState)
		S.Remove(s)
		for _, X := range symbols {
			gotoset := gotoSetClosure(g, s.items, X)
			if gotoset.Empty() {
				continue
			}
			snew, isNew := cfsm.addState(gotoset)
			if isNew {
				snew.Accept = snew.containsCompletedStartRule(start)
				S.Add(snew)
				snew.Dump()
			}
			cfsm.addEdge(s, snew, X)
		}
	}
	tracer().Infof("CFSM has %d states and %d edges", cfsm.states.Size(), cfsm.edges.Size())
	return cfsm
}

// CFSM2GraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) CFSM2GraphViz(w io.Writer) error {
	var b strings.Builder
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.States() {
		fmt.Fprintf(&b, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s.items))
	}
	it := c.edges.Iterator()
	for it.Next() {
		edge := it.Value().(*cfsmEdge)
		fmt.Fprintf(&b, "s%03d -> s%03d [label=\"%s\"]\n", edge.from.ID, edge.to.ID,
			dotEscape(edge.label.String()))
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(iset *iteratable.Set) string {
	var b strings.Builder
	for _, i := range Items(iset) {
		b.WriteString(dotEscape(i.String()))
		b.WriteString("\\l")
	}
	return b.String()
}

var dotEscaper = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

// dotEscape escapes characters with a special meaning within record labels.
func dotEscape(s string) string {
	return dotEscaper.Replace(s)
}

func itemSetString(S *iteratable.Set) string {
	var b strings.Builder
	b.WriteString("{")
	for k, item := range Items(S) {
		if k == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteString(" }")
	return b.String()
}
