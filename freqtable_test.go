package repair

import "testing"

func newTestTable(entries int) frequencyTable {
	return tableOver(make([]Symbol, entries*entryCells))
}

func TestInsertStoresFrequencyOne(t *testing.T) {
	tbl := newTestTable(3)
	b := makeBigram('a', 'b')
	idx := tbl.insert(b)
	if idx != 0 {
		t.Fatalf("first insert should use slot 0, got %d", idx)
	}
	if tbl.freqAt(idx) != 1 {
		t.Fatalf("insert should store frequency 1, got %d", tbl.freqAt(idx))
	}
	if tbl.bigramAt(idx) != b {
		t.Fatalf("insert stored wrong bigram %v", tbl.bigramAt(idx))
	}
}

func TestInsertReturnsNoneWhenFull(t *testing.T) {
	tbl := newTestTable(2)
	tbl.insert(makeBigram('a', 'b'))
	tbl.insert(makeBigram('b', 'c'))
	if idx := tbl.insert(makeBigram('c', 'd')); idx != none {
		t.Fatalf("insert into a full table should fail, got slot %d", idx)
	}
}

func TestFindSkipsEmptySlots(t *testing.T) {
	tbl := newTestTable(3)
	b := makeBigram('a', 'b')
	idx := tbl.insert(b)
	tbl.clearEntry(idx)
	if got := tbl.find(b); got != none {
		t.Fatalf("find should not see a cleared entry, got %d", got)
	}
	// a zero-frequency slot matching the key is still invisible
	tbl.set(1, b, 0)
	if got := tbl.find(b); got != none {
		t.Fatalf("find should skip frequency-0 slots, got %d", got)
	}
}

func TestMaxBreaksTiesByLowestIndex(t *testing.T) {
	tbl := newTestTable(4)
	tbl.set(0, makeBigram('a', 'b'), 2)
	tbl.set(1, makeBigram('b', 'c'), 5)
	tbl.set(2, makeBigram('c', 'd'), 5)
	if got := tbl.max(); got != 1 {
		t.Fatalf("max should prefer the lowest index on ties, got %d", got)
	}
}

func TestMaxOnEmptyTable(t *testing.T) {
	tbl := newTestTable(3)
	idx := tbl.max()
	if idx != 0 || tbl.freqAt(idx) != 0 {
		t.Fatalf("max on an empty table should land on slot 0 with frequency 0, got %d/%d",
			idx, tbl.freqAt(idx))
	}
}

func TestMinIgnoresEmptySlots(t *testing.T) {
	tbl := newTestTable(4)
	tbl.set(1, makeBigram('a', 'b'), 7)
	tbl.set(3, makeBigram('b', 'c'), 4)
	if got := tbl.min(); got != 3 {
		t.Fatalf("min should skip empty slots, got %d", got)
	}
}

func TestMinOnEmptyTableReturnsNone(t *testing.T) {
	tbl := newTestTable(3)
	if got := tbl.min(); got != none {
		t.Fatalf("min on an empty table should be none, got %d", got)
	}
}

func TestIncrementDecrement(t *testing.T) {
	tbl := newTestTable(2)
	idx := tbl.insert(makeBigram('a', 'b'))
	tbl.increment(idx)
	tbl.increment(idx)
	if tbl.freqAt(idx) != 3 {
		t.Fatalf("expected frequency 3, got %d", tbl.freqAt(idx))
	}
	tbl.decrement(idx)
	if tbl.freqAt(idx) != 2 {
		t.Fatalf("expected frequency 2, got %d", tbl.freqAt(idx))
	}
}

func TestSortEntriesByFreq(t *testing.T) {
	region := make([]Symbol, 4*entryCells)
	tbl := tableOver(region)
	tbl.set(0, makeBigram('a', 'b'), 1)
	tbl.set(2, makeBigram('b', 'c'), 9)
	tbl.set(3, makeBigram('c', 'd'), 4)
	sortEntriesByFreq(region)
	freqs := []uint32{tbl.freqAt(0), tbl.freqAt(1), tbl.freqAt(2), tbl.freqAt(3)}
	want := []uint32{9, 4, 1, 0}
	for i := range want {
		if freqs[i] != want[i] {
			t.Fatalf("descending sort expected %v, got %v", want, freqs)
		}
	}
	if tbl.bigramAt(0) != makeBigram('b', 'c') {
		t.Fatalf("sort should carry bigrams along with frequencies")
	}
}
