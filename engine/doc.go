/*
Package engine finds typed values in text by applying rule tables until
nothing new can be derived.

Every parse keeps a working set of tokens, the stash, which starts out with
the seed tokens (if any) and grows in passes. A pass

  1. scans: for every active rule, it enumerates the ways the rule's pattern
     items can be bound to the input, either matching raw text (regex items)
     or tokens from the stash (dimension items),
  2. produces: the rule's production function is called for every binding
     and may reject it,
  3. merges: new tokens are added to the stash, unless a token for the same
     dimension and range is already present with equal or better priority.

Parsing stops as soon as a pass adds no token. From the second pass on,
only bindings which include at least one token of the previous pass are
considered, as productions are pure and older bindings have been tried
already. A ceiling on the number of passes guards against rule tables
which would grow the stash forever; exceeding it is reported as an error
matching dimex.ErrIterationLimit.

Finally, tokens of the requested dimension are ranked and overlapping
tokens are resolved: longer spans win over shorter ones, tokens of earlier
rules win over tokens of later rules, and remaining ties are broken by rule
name and value to keep results deterministic.

Regex items may only start and end at chunk boundaries (see package
scanner). Between two pattern items white space is skipped.

Engines are safe for concurrent use. Per-parse state is private to a
single call of Parse and is recycled through an object pool.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Please refer to the License file in the root directory for details.
*/
package engine

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
