package automata

// FollowedBy returns the concatenation of a and b: every accepting state
// of a gets an epsilon edge to b's start state, and a's accepting set is
// replaced by b's (shifted). FollowedBy with an empty operand returns the
// other operand unchanged.
//
// When a has exactly one accepting state, and that state is a's last
// state and has no outgoing byte edges (class 0, the canonical empty
// class) and no epsilon edges, b's states are spliced directly into that state's slot
// instead of adding an epsilon edge — a permitted optimization (the
// merged state simply becomes b's start state; nothing in a ever
// transitions out of it by byte, so nothing relies on its prior,
// edge-free identity).
func FollowedBy(a, b NFA) (NFA, error) {
	if b.IsEmpty() {
		return a, nil
	}
	if a.IsEmpty() {
		return b, nil
	}

	oldEnds := a.Ends()

	if len(oldEnds) == 1 && canSpliceDirectly(&a, oldEnds[0]) {
		offset := len(a.states) - 1
		_, otherEnds, err := a.extend(b, offset)
		if err != nil {
			return NFA{}, err
		}
		a.ends = make(map[StateID]struct{}, len(otherEnds))
		for _, e := range otherEnds {
			a.ends[e] = struct{}{}
		}
		return a, nil
	}

	offset := len(a.states)
	otherStart, otherEnds, err := a.extend(b, offset)
	if err != nil {
		return NFA{}, err
	}
	for _, oldEnd := range oldEnds {
		a.PushEpsilon(oldEnd, otherStart)
	}
	a.ends = make(map[StateID]struct{}, len(otherEnds))
	for _, e := range otherEnds {
		a.ends[e] = struct{}{}
	}
	return a, nil
}

func canSpliceDirectly(n *NFA, end StateID) bool {
	if int(end) != len(n.states)-1 {
		return false
	}
	s := &n.states[end]
	return s.class == 0 && len(s.epsilon) == 0
}
