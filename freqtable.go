package repair

import "sort"

// Entry layout inside the arena: two adjacent cells per entry, the
// bigram key followed by the frequency. A frequency of zero marks the
// slot as empty; there is no separate occupancy bit, so clearing the
// frequency is clearing the slot. The density of this layout (8 bytes
// per entry, no padding) is what the arena sizing arithmetic relies on.
const (
	entryBytes = 8
	entryCells = entryBytes / cellBytes

	minEntries = 3
)

// none is the not-found index returned by find, insert and min.
const none = -1

// frequencyTable is a bounded table of (bigram, frequency) entries over
// a borrowed window of arena cells. All operations are linear scans:
// the table is sized by the arena slack, not by the text, so scanning
// beats the constant factors of hashing. Key uniqueness is not enforced
// here; the estimator and the seeding pass guarantee it.
type frequencyTable struct {
	cells []Symbol // 2 cells per entry
}

func tableOver(cells []Symbol) frequencyTable {
	assert(len(cells)%entryCells == 0, "table window must hold whole entries")
	return frequencyTable{cells: cells}
}

func (t frequencyTable) length() int { return len(t.cells) / entryCells }

func (t frequencyTable) bigramAt(i int) Bigram { return Bigram(t.cells[entryCells*i]) }
func (t frequencyTable) freqAt(i int) uint32   { return uint32(t.cells[entryCells*i+1]) }
func (t frequencyTable) valid(i int) bool      { return t.cells[entryCells*i+1] != 0 }

func (t frequencyTable) set(i int, b Bigram, freq uint32) {
	t.cells[entryCells*i] = Symbol(b)
	t.cells[entryCells*i+1] = Symbol(freq)
}

func (t frequencyTable) increment(i int) {
	assert(t.valid(i), "increment on an empty entry")
	t.cells[entryCells*i+1]++
}

func (t frequencyTable) decrement(i int) {
	assert(t.valid(i), "decrement on an empty entry")
	t.cells[entryCells*i+1]--
}

func (t frequencyTable) clearEntry(i int) {
	t.cells[entryCells*i] = 0
	t.cells[entryCells*i+1] = 0
}

func (t frequencyTable) clear() {
	for i := range t.cells {
		t.cells[i] = 0
	}
}

// find returns the first index holding bigram in a non-empty slot.
func (t frequencyTable) find(b Bigram) int {
	for i := 0; i < t.length(); i++ {
		if t.bigramAt(i) == b && t.valid(i) {
			return i
		}
	}
	return none
}

// insert stores bigram with frequency 1 in the first empty slot. The
// discovery walk relies on the frequency starting at 1; the spill pass
// subtracts it again.
func (t frequencyTable) insert(b Bigram) int {
	for i := 0; i < t.length(); i++ {
		if !t.valid(i) {
			t.set(i, b, 1)
			return i
		}
	}
	return none
}

// max returns the index of an entry with maximum frequency, ties broken
// by lowest index. Empty slots have frequency 0 and never win over a
// valid entry.
func (t frequencyTable) max() int {
	maxel := 0
	for i := 1; i < t.length(); i++ {
		if t.freqAt(i) > t.freqAt(maxel) {
			maxel = i
		}
	}
	return maxel
}

// min returns the index of a valid entry with minimum frequency, or
// none if the table is empty. Skipping empty slots matters: otherwise
// eviction would always target the first free slot.
func (t frequencyTable) min() int {
	minel := none
	for i := 0; i < t.length(); i++ {
		if !t.valid(i) {
			continue
		}
		if minel == none || t.freqAt(i) < t.freqAt(minel) {
			minel = i
		}
	}
	return minel
}

// entriesByFreq sorts a table region in place, most frequent first.
// Empty slots sink to the end, which is what promotes the busiest
// entries into the lower (main) half of the region.
type entriesByFreq []Symbol

func (e entriesByFreq) Len() int { return len(e) / entryCells }

func (e entriesByFreq) Less(i, j int) bool {
	return e[entryCells*i+1] > e[entryCells*j+1]
}

func (e entriesByFreq) Swap(i, j int) {
	e[entryCells*i], e[entryCells*j] = e[entryCells*j], e[entryCells*i]
	e[entryCells*i+1], e[entryCells*j+1] = e[entryCells*j+1], e[entryCells*i+1]
}

func sortEntriesByFreq(region []Symbol) {
	sort.Sort(entriesByFreq(region))
}
