package automata

// Literal builds an NFA recognizing exactly the given string: one state
// per byte of s plus a final accepting state, connected by a straight
// line of single-byte edges.
func Literal(s string) (NFA, error) {
	n := WithCapacity(len(s)+1, len(s), 1)
	prev, err := n.PushState()
	if err != nil {
		return NFA{}, err
	}

	for i := 0; i < len(s); i++ {
		next, err := n.PushState()
		if err != nil {
			return NFA{}, err
		}
		if err := n.PushEdge(prev, next, s[i]); err != nil {
			return NFA{}, err
		}
		prev = next
	}

	n.PushEnd(prev)
	return n, nil
}
