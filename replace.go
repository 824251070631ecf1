package repair

import "sort"

// turn performs one substitution: every occurrence of the most frequent
// bigram is replaced by a fresh non-terminal while the sequence is
// compacted in place. Neighbour pairs destroyed by a replacement are
// decremented in the main table, and the neighbours of the new symbol
// are offered to the table as fresh candidates.
func (c *Compressor) turn(main frequencyTable, maxIdx int, minFreq uint32) error {
	pair := main.bigramAt(maxIdx)
	freq := main.freqAt(maxIdx)
	if c.maxChar >= maxSymbol {
		return ErrSymbolOverflow
	}
	c.maxChar++
	x := c.maxChar
	c.rules = append(c.rules, Rule{Nonterminal: x, Left: pair.first(), Right: pair.second()})
	tracer().Debugf("rule %d -> (%d,%d), frequency %d", x, pair.first(), pair.second(), freq)

	// The write index i trails the read index i+offset by one cell per
	// replacement so far. A replacement consumes two read cells but
	// advances i only once: the next iteration must see the freshly
	// written x as its left neighbour.
	text := c.arena.sequence(c.textLength)
	offset := 0
	i := 0
	for i+offset+1 < len(text) {
		r := i + offset
		text[i] = text[r]
		next := text[r+1]
		if makeBigram(text[i], next) == pair {
			if i > 0 {
				noteDestroyedLeft(main, text, i, maxIdx, minFreq)
			}
			if r+2 < len(text) {
				noteDestroyedRight(main, text, r+1, maxIdx, minFreq)
			}
			text[i] = x
			offset++
		}
		i++
	}
	if r := i + offset; r < len(text) {
		text[i] = text[r]
		i++
	}
	assert(offset == int(freq), "replacement count diverges from table frequency")
	main.clearEntry(maxIdx)
	c.textLength -= offset
	assert(i == c.textLength, "write index out of step with sequence length")

	c.seedNeighbours(main, x, offset)
	return nil
}

// noteDestroyedLeft decrements the pair ending at the replacement site,
// (text[i-1], text[i]). Within a run of equal symbols only every second
// pair carries a count; a vanishing pair that was never counted leaves
// its entry untouched. The pair under replacement itself is guarded by
// maxIdx, which also covers self-overlap when both halves are equal.
func noteDestroyedLeft(main frequencyTable, text []Symbol, i, maxIdx int, minFreq uint32) {
	idx := main.find(makeBigram(text[i-1], text[i]))
	if idx == none || idx == maxIdx {
		return
	}
	if text[i-1] == text[i] {
		k := 0
		for j := i - 1; j >= 0 && text[j] == text[i]; j-- {
			k++
		}
		if k%2 == 0 {
			return // pair was not counted: its left symbol belongs to the preceding pair
		}
	}
	main.decrement(idx)
	if main.freqAt(idx) < minFreq {
		main.clearEntry(idx) // vacate the slot for seeding
	}
}

// noteDestroyedRight is the mirror image for the pair starting at the
// consumed second half, (text[p], text[p+1]), with p still indexing the
// unrewritten part of the sequence.
func noteDestroyedRight(main frequencyTable, text []Symbol, p, maxIdx int, minFreq uint32) {
	idx := main.find(makeBigram(text[p], text[p+1]))
	if idx == none || idx == maxIdx {
		return
	}
	if text[p+1] == text[p] {
		k := 0
		for j := p + 1; j < len(text) && text[j] == text[p]; j++ {
			k++
		}
		if k%2 == 0 {
			return
		}
	}
	main.decrement(idx)
	if main.freqAt(idx) < minFreq {
		main.clearEntry(idx)
	}
}

// seedNeighbours offers new candidate bigrams formed around x to the
// main table. Each pass collects one flank of every occurrence of x
// into the D-buffer (the cells this turn just freed), sorts it, and
// offers one candidate per maximal run of equal neighbours, with the
// run length as its frequency.
func (c *Compressor) seedNeighbours(main frequencyTable, x Symbol, freed int) {
	if freed == 0 {
		return
	}
	text := c.arena.sequence(c.textLength)
	d := c.arena.dBuffer(c.textLength, freed)

	n := collectLeft(text, d, x)
	assert(n <= freed, "left neighbours overflow the D-buffer")
	sortSymbols(d[:n])
	forEachRun(d[:n], func(sym Symbol, count uint32) {
		offer(main, makeBigram(sym, x), count)
	})

	n = collectRight(text, d, x)
	assert(n <= freed, "right neighbours overflow the D-buffer")
	sortSymbols(d[:n])
	forEachRun(d[:n], func(sym Symbol, count uint32) {
		offer(main, makeBigram(x, sym), count)
	})
}

// collectLeft appends the left neighbour of every occurrence of x to d.
// Where x itself runs, only every second (x,x) pair contributes, so a
// seeded (x,x) frequency matches what estimation would count.
func collectLeft(text, d []Symbol, x Symbol) int {
	n := 0
	runStart := 0
	for i := 0; i < len(text); i++ {
		if i > 0 && text[i] != text[i-1] {
			runStart = i
		}
		if text[i] != x || i == 0 {
			continue
		}
		if text[i-1] == x && (i-1-runStart)%2 != 0 {
			continue
		}
		d[n] = text[i-1]
		n++
	}
	return n
}

func collectRight(text, d []Symbol, x Symbol) int {
	n := 0
	runStart := 0
	for i := 0; i+1 < len(text); i++ {
		if i > 0 && text[i] != text[i-1] {
			runStart = i
		}
		if text[i] != x {
			continue
		}
		if text[i+1] == x && (i-runStart)%2 != 0 {
			continue
		}
		d[n] = text[i+1]
		n++
	}
	return n
}

// offer gives a seeded candidate a table slot if it earns one: a free
// slot when available, otherwise the current minimum entry when the
// candidate is strictly more frequent. A bigram that is already present
// is left alone, keeping table keys unique.
func offer(main frequencyTable, b Bigram, count uint32) {
	if main.find(b) != none {
		return
	}
	if idx := main.insert(b); idx != none {
		main.set(idx, b, count)
		return
	}
	if idx := main.min(); idx != none && count > main.freqAt(idx) {
		main.set(idx, b, count)
	}
}

func sortSymbols(d []Symbol) {
	sort.Slice(d, func(i, j int) bool { return d[i] < d[j] })
}

func forEachRun(d []Symbol, fn func(Symbol, uint32)) {
	for i := 0; i < len(d); {
		j := i
		for j < len(d) && d[j] == d[i] {
			j++
		}
		fn(d[i], uint32(j-i))
		i = j
	}
}
