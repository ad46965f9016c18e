package automata

// Union builds an NFA accepting the language of a or b: a fresh start
// state with epsilon edges to both operands' starts. The accepting set
// is the union of both operands' accepting sets; the new start state's
// association set is the union of both operands' start-state association
// sets, so a command associated with either branch remains associated
// with the merged start state (invariant 5: association monotonicity).
//
// Unioning with an empty NFA is a no-op: the non-empty operand is
// returned unchanged.
func Union(a, b NFA) (NFA, error) {
	if b.IsEmpty() {
		return a, nil
	}
	if a.IsEmpty() {
		return b, nil
	}

	n := WithCapacity(len(a.states)+len(b.states)+1, a.classes.len()+b.classes.len(), len(a.ends)+len(b.ends))

	start, err := n.PushState()
	if err != nil {
		return NFA{}, err
	}

	aStart, aEnds, err := n.extend(a, len(n.states))
	if err != nil {
		return NFA{}, err
	}
	n.PushEpsilon(start, aStart)

	bStart, bEnds, err := n.extend(b, len(n.states))
	if err != nil {
		return NFA{}, err
	}
	n.PushEpsilon(start, bStart)

	for _, e := range aEnds {
		n.PushEnd(e)
	}
	for _, e := range bEnds {
		n.PushEnd(e)
	}

	aAssoc := n.Assoc(aStart).Clone()
	bAssoc := n.Assoc(bStart).Clone()
	merged := n.Assoc(start)
	merged.UnionWith(&aAssoc)
	merged.UnionWith(&bAssoc)

	return n, nil
}
