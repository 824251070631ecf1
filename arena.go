package repair

// arena is the single backing buffer shared by all working state of a
// compression. The prefix cells[0:textLength] is the current sequence;
// at round start the slack region beyond the sequence is reinterpreted
// as an array of packed frequency-table entries; during a turn the
// cells freed by that turn's shrinkage are borrowed as the D-buffer.
//
// All three overlays are explicit sub-slice views of the one cell
// slice. Within any phase the views cover disjoint index ranges; they
// change meaning only at the phase boundaries of the round/turn loop.
type arena struct {
	cells []Symbol
	slack int // slack cells beyond the initial sequence
}

// newArena allocates textLength+slack cells once. The entry region
// carved from the slack must hold at least minEntries entries.
func newArena(textLength, slack int) *arena {
	assert(slack*cellBytes/entryBytes >= minEntries, "arena slack below the entry floor")
	return &arena{
		cells: make([]Symbol, textLength+slack),
		slack: slack,
	}
}

func (a *arena) capacity() int { return len(a.cells) }

// availableEntries is the number of packed entries the slack region can
// hold; an odd remainder cell stays unused.
func (a *arena) availableEntries() int {
	return a.slack * cellBytes / entryBytes
}

// sequence returns the symbols view of the current sequence prefix.
func (a *arena) sequence(textLength int) []Symbol {
	return a.cells[:textLength]
}

// entryRegion returns the cells of the 2L-entry table region starting
// at cell index base (the sequence length at round start). The region
// holds the main table in its lower half and the helper table in its
// upper half.
func (a *arena) entryRegion(base int) []Symbol {
	half := a.availableEntries() / 2
	return a.cells[base : base+2*half*entryCells]
}

// dBuffer borrows n freed cells starting at cell index base. The
// caller guarantees that the cells lie between the current sequence end
// and the entry region of the running round.
func (a *arena) dBuffer(base, n int) []Symbol {
	return a.cells[base : base+n]
}
