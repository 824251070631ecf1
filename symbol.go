package repair

// Symbol is a sequence element: a terminal from the input alphabet or a
// non-terminal introduced during compression. Symbols occupy one 32-bit
// arena cell but must fit into symbolWidth bits so that two of them
// pack into one Bigram key.
type Symbol uint32

const (
	symbolWidth = 16
	// maxSymbol is the largest value a Symbol may take; allocating a
	// non-terminal beyond it is a fatal capacity error.
	maxSymbol = Symbol(1)<<symbolWidth - 1

	cellBytes = 4 // sizeof one arena cell
)

// Bigram is an ordered pair of adjacent symbols, packed into a single
// integer key (first << symbolWidth | second). Keys are compared by
// equality only.
type Bigram uint32

func makeBigram(a, b Symbol) Bigram {
	assert(a <= maxSymbol, "bigram first symbol exceeds symbol width")
	assert(b <= maxSymbol, "bigram second symbol exceeds symbol width")
	return Bigram(a)<<symbolWidth | Bigram(b)
}

func (b Bigram) first() Symbol {
	return Symbol(b >> symbolWidth)
}

func (b Bigram) second() Symbol {
	return Symbol(b & Bigram(maxSymbol))
}
