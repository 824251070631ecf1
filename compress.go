package repair

import (
	"errors"
	"fmt"
)

// ErrSymbolOverflow is returned when the next non-terminal would exceed
// the symbol width. No partial grammar is returned in that case: the
// caller chose an alphabet/width combination too small for the input's
// compressibility.
var ErrSymbolOverflow = errors.New("repair: symbol width exhausted by non-terminal allocation")

const defaultSlackBytes = 200

// Compressor holds one compression in flight. It owns the arena for its
// lifetime and is consumed by Compress.
type Compressor struct {
	arena      *arena
	textLength int
	maxChar    Symbol // largest symbol value handed out so far
	rules      []Rule
	rounds     int
	consumed   bool
}

type options struct {
	slackBytes int
	prefix     int
	prefixSet  bool
}

// Option configures New.
type Option func(*options)

// WithSlack sets the arena slack in bytes (default 200). The value is
// coerced up so that the entry region holds at least three entries.
func WithSlack(bytes int) Option {
	return func(o *options) { o.slackBytes = bytes }
}

// WithPrefix limits compression to the first n input bytes.
func WithPrefix(n int) Option {
	return func(o *options) { o.prefix = n; o.prefixSet = true }
}

// New ingests text into a freshly allocated arena. The terminal
// alphabet is the full byte range, so the first non-terminal is 256
// regardless of which bytes actually occur.
func New(text []byte, opts ...Option) (*Compressor, error) {
	o := options{slackBytes: defaultSlackBytes}
	for _, opt := range opts {
		opt(&o)
	}
	if o.slackBytes <= 0 {
		return nil, fmt.Errorf("repair: slack must be positive, got %d", o.slackBytes)
	}
	if o.prefixSet {
		if o.prefix <= 0 {
			return nil, fmt.Errorf("repair: prefix length must be positive, got %d", o.prefix)
		}
		if o.prefix < len(text) {
			text = text[:o.prefix]
		}
	}
	slackCells := (o.slackBytes + cellBytes - 1) / cellBytes
	if floor := minEntries * entryBytes / cellBytes; slackCells < floor {
		slackCells = floor
	}
	a := newArena(len(text), slackCells)
	for i, b := range text {
		a.cells[i] = Symbol(b)
	}
	tracer().Debugf("arena: %d cells for %d input bytes, %d table entries",
		a.capacity(), len(text), a.availableEntries())
	return &Compressor{
		arena:      a,
		textLength: len(text),
		maxChar:    255,
	}, nil
}

// Compress runs estimation rounds and substitution turns until no
// bigram occurs twice, then returns the grammar. A Compressor can run
// only once.
func (c *Compressor) Compress() (*Grammar, error) {
	if c.consumed {
		return nil, errors.New("repair: compressor already consumed")
	}
	c.consumed = true

	for c.textLength >= 2 {
		main := c.estimate()
		if main.freqAt(main.max()) < 2 {
			break
		}
		c.rounds++
		minFreq := uint32(2)
		if m := main.min(); m != none && main.freqAt(m) > minFreq {
			minFreq = main.freqAt(m)
		}
		tracer().Infof("round %d: sequence length %d, turn threshold %d", c.rounds, c.textLength, minFreq)
		for {
			maxIdx := main.max()
			if main.freqAt(maxIdx) < minFreq {
				break
			}
			if err := c.turn(main, maxIdx, minFreq); err != nil {
				return nil, err
			}
		}
		if main.freqAt(main.max()) < 2 {
			break // no surviving candidate worth a re-estimation
		}
	}

	start := make([]Symbol, c.textLength)
	copy(start, c.arena.sequence(c.textLength))
	g := &Grammar{Rules: c.rules, Start: start, MaxSymbol: c.maxChar}
	tracer().Infof("grammar complete: %d rules, start length %d, %d rounds",
		len(g.Rules), len(g.Start), c.rounds)
	return g, nil
}

// Rounds reports the number of estimation rounds run so far.
func (c *Compressor) Rounds() int { return c.rounds }

// StartLength reports the current length of the sequence prefix; after
// Compress it is the size of the start symbol.
func (c *Compressor) StartLength() int { return c.textLength }
