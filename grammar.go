package repair

// Rule defines a non-terminal as the concatenation of two previously
// defined symbols. Rules are listed in introduction order, so every
// right-hand symbol is either a terminal or the non-terminal of an
// earlier rule.
type Rule struct {
	Nonterminal Symbol
	Left, Right Symbol
}

// Grammar is the result of a compression: the ordered rule list and the
// reduced start sequence. Together they define the input exactly.
type Grammar struct {
	Rules     []Rule
	Start     []Symbol
	MaxSymbol Symbol
}

// Expand rewrites the start sequence by substituting rules in reverse
// introduction order until only terminals remain, reproducing the
// original input.
func (g *Grammar) Expand() []byte {
	seq := make([]Symbol, len(g.Start))
	copy(seq, g.Start)
	for k := len(g.Rules) - 1; k >= 0; k-- {
		rule := g.Rules[k]
		expanded := make([]Symbol, 0, 2*len(seq))
		for _, s := range seq {
			if s == rule.Nonterminal {
				expanded = append(expanded, rule.Left, rule.Right)
			} else {
				expanded = append(expanded, s)
			}
		}
		seq = expanded
	}
	out := make([]byte, len(seq))
	for i, s := range seq {
		assert(s <= 255, "terminal outside the byte alphabet after expansion")
		out[i] = byte(s)
	}
	return out
}
