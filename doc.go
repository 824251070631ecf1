/*
Package repair is a memory-bounded, in-place Re-Pair grammar compressor
for byte sequences and other small-alphabet symbol streams.

Re-Pair repeatedly replaces the most frequent bigram of a sequence with
a fresh non-terminal symbol, producing a straight-line grammar: an
ordered rule list X → αβ plus the reduced start sequence. This
implementation keeps all working state — the shrinking sequence, two
bounded frequency tables, and a transient neighbour buffer — inside a
single arena of textLength+M symbol cells, where M is a small
user-supplied slack. The arena suffix is reinterpreted as packed
(bigram, frequency) entry records; the partition point between the
sequence view and the entry view moves leftward as the sequence
contracts.

Frequencies are approximate by design: the tables hold at most the
top-L candidate bigrams per round, where L is derived from the slack,
and counts are refreshed by full re-estimation at every round boundary.
Within a round, counts only decay, so the ranking of surviving
candidates stays meaningful.

The compressor is a constructed-and-consumed value:

	c, err := repair.New(data, repair.WithSlack(4096))
	if err != nil { ... }
	g, err := c.Compress()
	if err != nil { ... }
	// g.Rules, g.Start; g.Expand() reproduces data

Compression is strictly single-threaded; the arena is owned exclusively
by the Compressor for its lifetime.

Further Reading

	N.J. Larsson, A. Moffat: Off-line dictionary-based compression (Proc. IEEE 88(11), 2000)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package repair

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'repair'
func tracer() tracing.Trace {
	return tracing.Select("repair")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
