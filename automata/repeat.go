package automata

// Repeat builds the Kleene closure of a: zero or more repetitions.
// Thompson's classic construction: a fresh start state s and a fresh
// done state d, with
//
//	s --eps--> d            (zero repetitions)
//	s --eps--> a.Start()     (enter the body)
//	each end of a --eps--> a.Start()   (loop back)
//	each end of a --eps--> d           (stop after k >= 1 repetitions)
//
// d is the sole accepting state of the result, and inherits the union of
// every old end state's association set so that dispatch can still tell
// which command a zero-repetition (empty) match belongs to.
func Repeat(a NFA) (NFA, error) {
	if a.IsEmpty() {
		return Empty(), nil
	}

	n := WithCapacity(len(a.states)+2, a.classes.len(), 1)

	s, err := n.PushState()
	if err != nil {
		return NFA{}, err
	}

	bodyStart, bodyEnds, err := n.extend(a, len(n.states))
	if err != nil {
		return NFA{}, err
	}

	d, err := n.PushState()
	if err != nil {
		return NFA{}, err
	}

	n.PushEpsilon(s, d)
	n.PushEpsilon(s, bodyStart)
	for _, e := range bodyEnds {
		n.PushEpsilon(e, bodyStart)
		n.PushEpsilon(e, d)
	}

	n.PushEnd(d)

	dAssoc := n.Assoc(d)
	for _, e := range bodyEnds {
		ea := n.Assoc(e).Clone()
		dAssoc.UnionWith(&ea)
	}

	bodyStartAssoc := n.Assoc(bodyStart).Clone()
	n.Assoc(s).UnionWith(&bodyStartAssoc)

	return n, nil
}
