package lr

import (
	"strings"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/llslr"
	"github.com/npillmayer/llslr/grammar"
	"github.com/npillmayer/llslr/lr/iteratable"
)

// Item is an LR(0) item, i.e. a grammar rule with a dot marking how much of
// the right hand side has already been recognized:
//
//     A → a•Bc
//
// Items are values; two items are equal if they refer to the same rule and
// have the dot at the same position.
type Item struct {
	rule *grammar.Rule
	dot  int
}

// StartItem returns the item with the dot in front of the RHS of r.
func StartItem(r *grammar.Rule) Item {
	return Item{rule: r}
}

// Rule returns the item's rule.
func (i Item) Rule() *grammar.Rule {
	return i.rule
}

// Dot returns the position of the dot within the RHS.
func (i Item) Dot() int {
	return i.dot
}

// PeekSymbol returns the symbol after the dot, or 0 for completed items.
func (i Item) PeekSymbol() llslr.Symbol {
	if i.rule == nil || i.dot >= i.rule.Len() {
		return 0
	}
	return i.rule.RHS()[i.dot]
}

// IsComplete is true if the dot is behind the RHS.
func (i Item) IsComplete() bool {
	return i.rule == nil || i.dot >= i.rule.Len()
}

// Advance moves the dot over the next symbol. Completed items are returned
// unchanged.
func (i Item) Advance() Item {
	if i.IsComplete() {
		return i
	}
	return Item{rule: i.rule, dot: i.dot + 1}
}

// Prefix returns the symbols in front of the dot.
func (i Item) Prefix() []llslr.Symbol {
	if i.rule == nil {
		return nil
	}
	return i.rule.RHS()[:i.dot]
}

func (i Item) String() string {
	if i.rule == nil {
		return "<no item>"
	}
	rhs := i.rule.RHS()
	var b strings.Builder
	b.WriteString(i.rule.LHS.String())
	b.WriteString(" → ")
	b.WriteString(llslr.SymbolString(rhs[:i.dot]))
	b.WriteString("•")
	b.WriteString(llslr.SymbolString(rhs[i.dot:]))
	return b.String()
}

// itemComparator orders items by rule serial, then by dot position. This is
// the canonical order of items within a state.
func itemComparator(x1, x2 interface{}) int {
	i1, i2 := asItem(x1), asItem(x2)
	if c := utils.IntComparator(i1.rule.Serial, i2.rule.Serial); c != 0 {
		return c
	}
	return utils.IntComparator(i1.dot, i2.dot)
}

func newItemSet() *iteratable.Set {
	return iteratable.NewSet(itemComparator)
}

func asItem(x interface{}) Item {
	return x.(Item)
}

// itemKey is the hashable form of an item, see package structhash.
type itemKey struct {
	Rule int
	Dot  int
}

func itemKeys(iset *iteratable.Set) []itemKey {
	values := iset.Values()
	keys := make([]itemKey, len(values))
	for k, x := range values {
		i := asItem(x)
		keys[k] = itemKey{Rule: i.rule.Serial, Dot: i.dot}
	}
	return keys
}

// Items returns the items of a set in canonical order.
func Items(iset *iteratable.Set) []Item {
	values := iset.Values()
	items := make([]Item, len(values))
	for k, x := range values {
		items[k] = asItem(x)
	}
	return items
}
