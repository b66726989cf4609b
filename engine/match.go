package engine

import (
	"github.com/npillmayer/dimex"
	"github.com/npillmayer/dimex/scanner"
)

// activeRule is a rule together with the dimension of its rule set and its
// position in the list of active rules.
type activeRule struct {
	rule dimex.Rule
	dim  dimex.Dimension
	prio int
}

// binding is a token bound to a pattern item.
type binding struct {
	tok dimex.Token
	gen int
}

// parseState is the private state of a single parse. Instances are pooled.
type parseState struct {
	text   string
	bounds []bool // legal match boundaries, see scanner.Boundaries
	stash  *stash
	rules  []activeRule
	cands  []dimex.Token // candidates of the current pass
	pooled bool          // borrowed from globalStatePool
}

func newParseState() *parseState {
	return &parseState{stash: newStash()}
}

func (ps *parseState) init(text string, rules []activeRule) {
	ps.text = text
	ps.bounds = scanner.Boundaries(text)
	ps.rules = rules
}

func (ps *parseState) reset() {
	ps.text = ""
	ps.bounds = nil
	ps.rules = nil
	for i := range ps.cands {
		ps.cands[i] = dimex.Token{}
	}
	ps.cands = ps.cands[:0]
	ps.stash.clear()
}

// seed puts the seed tokens into the stash. Seeds not fitting the input are
// dropped.
func (ps *parseState) seed(seeds []dimex.Token) {
	for _, s := range seeds {
		if s.Range.Start < 0 || s.Range.End > len(ps.text) || s.Range.Len() <= 0 ||
			s.Value == nil || s.Dim == dimex.RegexMatch || !dimex.Registered(s.Dim) ||
			s.Value.Dimension() != s.Dim {
			CT().Debugf("dropping seed %v", s)
			continue
		}
		ps.stash.add(s, 0)
	}
}

// fixpoint runs passes until no new token is added.
func (ps *parseState) fixpoint(limit int) error {
	for pass := 1; ; pass++ {
		if pass > limit {
			err := &dimex.IterationLimitError{Limit: limit, Tokens: ps.stash.size}
			CT().Errorf("%s", err.Error())
			return err
		}
		ps.cands = ps.cands[:0]
		for _, ar := range ps.rules {
			ps.scan(ar, pass)
		}
		added := 0
		for _, c := range ps.cands {
			if ps.stash.add(c, pass) {
				added++
			}
		}
		CT().Debugf("pass %d: %d candidates, %d tokens added, stash size %d",
			pass, len(ps.cands), added, ps.stash.size)
		if added == 0 {
			return nil
		}
	}
}

// scan enumerates the bindings of a rule's pattern and collects candidate
// tokens from the rule's production.
func (ps *parseState) scan(ar activeRule, pass int) {
	items := ar.rule.Pattern
	if pass > 1 && !consumesTokens(items) {
		return // regex-only patterns cannot bind new tokens
	}
	bound := make([]binding, len(items))
	first := items[0]
	if first.Kind() == dimex.RegexItem {
		for pos := 0; pos < len(ps.text); pos++ {
			if tok, ok := ps.matchRegex(first, pos); ok {
				bound[0] = binding{tok: tok}
				ps.extend(ar, pass, bound, 1)
			}
		}
		return
	}
	ps.stash.each(func(n *node) {
		if first.Accepts(n.tok) {
			bound[0] = binding{tok: n.tok, gen: n.gen}
			ps.extend(ar, pass, bound, 1)
		}
	})
}

// extend binds pattern item number depth, following the token bound to
// the previous item after optional white space.
func (ps *parseState) extend(ar activeRule, pass int, bound []binding, depth int) {
	items := ar.rule.Pattern
	if depth == len(items) {
		ps.produce(ar, pass, bound)
		return
	}
	pos := scanner.SkipSpace(ps.text, bound[depth-1].tok.Range.End)
	it := items[depth]
	if it.Kind() == dimex.RegexItem {
		if tok, ok := ps.matchRegex(it, pos); ok {
			bound[depth] = binding{tok: tok}
			ps.extend(ar, pass, bound, depth+1)
		}
		return
	}
	ps.stash.startingAt(pos, func(n *node) {
		if it.Accepts(n.tok) {
			bound[depth] = binding{tok: n.tok, gen: n.gen}
			ps.extend(ar, pass, bound, depth+1)
		}
	})
}

// produce calls the rule's production for a complete binding. From the
// second pass on, a binding has to contain at least one token of the
// previous pass.
func (ps *parseState) produce(ar activeRule, pass int, bound []binding) {
	if pass > 1 {
		fresh := false
		for _, b := range bound {
			if b.gen == pass-1 {
				fresh = true
				break
			}
		}
		if !fresh {
			return
		}
	}
	toks := make([]dimex.Token, len(bound))
	for i, b := range bound {
		toks[i] = b.tok
	}
	rng := dimex.Range{Start: toks[0].Range.Start, End: toks[len(toks)-1].Range.End}
	v, ok := ar.rule.Produce(toks)
	if !ok || v == nil {
		CT().Debugf("rule %s rejected %s %q", ar.rule.Name, rng, ps.text[rng.Start:rng.End])
		return
	}
	if v.Dimension() != ar.dim {
		CT().Errorf("rule %s produced a %s value for dimension %s", ar.rule.Name, v.Dimension(), ar.dim)
		return
	}
	ps.cands = append(ps.cands, dimex.Token{
		Dim:      ar.dim,
		Range:    rng,
		Body:     ps.text[rng.Start:rng.End],
		Value:    v,
		Rule:     ar.rule.Name,
		Priority: ar.prio,
	})
}

// matchRegex matches a regex item at pos. Matches have to start and end on
// a chunk boundary.
func (ps *parseState) matchRegex(it dimex.Item, pos int) (dimex.Token, bool) {
	if pos >= len(ps.text) || !ps.bounds[pos] {
		return dimex.Token{}, false
	}
	end, groups, ok := it.MatchText(ps.text, pos)
	if !ok || !ps.bounds[end] {
		return dimex.Token{}, false
	}
	rng := dimex.Range{Start: pos, End: end}
	return dimex.Token{
		Dim:      dimex.RegexMatch,
		Range:    rng,
		Body:     ps.text[pos:end],
		Value:    dimex.RegexValue{Groups: groups},
		Priority: dimex.LowestPriority,
	}, true
}

func consumesTokens(items []dimex.Item) bool {
	for _, it := range items {
		if it.Kind() != dimex.RegexItem {
			return true
		}
	}
	return false
}
