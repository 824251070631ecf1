package repair

// estimate populates the main table with (approximately) the most
// frequent bigrams of the current sequence. Discovery walks the
// sequence and records every unseen bigram in the helper table; when
// the helper fills up, or the walk is about to end, a spill recounts
// the helper entries exactly and promotes the busiest entries of the
// whole region into the main half. The walk then resumes where the
// spill triggered.
//
// On return, every valid main entry holds the true frequency of its
// bigram in the current sequence, under the run rule that a stretch of
// n equal symbols contains n/2 pairs.
func (c *Compressor) estimate() frequencyTable {
	region := c.arena.entryRegion(c.textLength)
	half := len(region) / 2
	main := tableOver(region[:half])
	helper := tableOver(region[half:])
	for i := range region {
		region[i] = 0
	}

	text := c.arena.sequence(c.textLength)
	for i := 0; i+1 < len(text); i++ {
		b := makeBigram(text[i], text[i+1])
		inserted := none
		if helper.find(b) == none && main.find(b) == none {
			inserted = helper.insert(b)
			assert(inserted != none, "helper table full during discovery")
		}
		if inserted == helper.length()-1 || i+2 == len(text) {
			c.spill(region, helper)
		}
	}
	return main
}

// spill turns the helper table's discovery marks into exact counts and
// promotes. One full pass over the sequence increments every
// helper-resident bigram at each counted occurrence; the +1 recorded at
// discovery is subtracted afterwards. Sorting the whole region by
// frequency then moves the top entries into the main (lower) half; the
// helper half is cleared for the next discovery stretch.
func (c *Compressor) spill(region []Symbol, helper frequencyTable) {
	text := c.arena.sequence(c.textLength)
	runStart := 0
	for j := 0; j+1 < len(text); j++ {
		if j > 0 && text[j] != text[j-1] {
			runStart = j
		}
		if text[j] == text[j+1] && (j-runStart)%2 != 0 {
			continue // count every second pair within a run
		}
		if pos := helper.find(makeBigram(text[j], text[j+1])); pos != none {
			helper.increment(pos)
		}
	}
	for i := 0; i < helper.length(); i++ {
		if helper.valid(i) {
			helper.decrement(i)
		}
	}
	sortEntriesByFreq(region)
	helper.clear()
	tracer().Debugf("spill: promoted helper entries, sequence length %d", len(text))
}
