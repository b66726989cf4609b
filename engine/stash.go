package engine

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/dimex"
)

// node is a token in the stash, tagged with the pass which produced it.
// Seeds have generation 0.
type node struct {
	tok dimex.Token
	gen int
}

type stashKey struct {
	dim        dimex.Dimension
	start, end int
}

// stash is the working set of tokens of a parse. Tokens are indexed by
// their start position; tokens starting at the same position are kept in
// the order they have been added.
type stash struct {
	byStart *treemap.Map     // int → *arraylist.List of *node
	best    map[stashKey]int // best priority seen for (dim, range)
	size    int
}

func newStash() *stash {
	return &stash{
		byStart: treemap.NewWithIntComparator(),
		best:    make(map[stashKey]int),
	}
}

func (st *stash) clear() {
	st.byStart.Clear()
	st.best = make(map[stashKey]int)
	st.size = 0
}

// add merges a token into the stash. It is dropped if a token of the same
// dimension and range with equal or better priority is present. add reports
// whether the token has been added.
func (st *stash) add(tok dimex.Token, gen int) bool {
	k := stashKey{dim: tok.Dim, start: tok.Range.Start, end: tok.Range.End}
	if prio, ok := st.best[k]; ok && prio <= tok.Priority {
		return false
	}
	st.best[k] = tok.Priority
	var l *arraylist.List
	if v, found := st.byStart.Get(tok.Range.Start); found {
		l = v.(*arraylist.List)
	} else {
		l = arraylist.New()
		st.byStart.Put(tok.Range.Start, l)
	}
	l.Add(&node{tok: tok, gen: gen})
	st.size++
	return true
}

// startingAt iterates over the tokens starting at pos.
func (st *stash) startingAt(pos int, f func(n *node)) {
	v, found := st.byStart.Get(pos)
	if !found {
		return
	}
	v.(*arraylist.List).Each(func(_ int, x interface{}) {
		f(x.(*node))
	})
}

// each iterates over all tokens, ordered by start position.
func (st *stash) each(f func(n *node)) {
	it := st.byStart.Iterator()
	for it.Next() {
		it.Value().(*arraylist.List).Each(func(_ int, x interface{}) {
			f(x.(*node))
		})
	}
}

// tokens returns a copy of all tokens of dimension dim, or of all
// dimensions except RegexMatch if dim is AnyDimension.
func (st *stash) tokens(dim dimex.Dimension) []dimex.Token {
	toks := make([]dimex.Token, 0, st.size)
	st.each(func(n *node) {
		if dim == dimex.AnyDimension && n.tok.Dim != dimex.RegexMatch || n.tok.Dim == dim {
			toks = append(toks, n.tok)
		}
	})
	return toks
}
