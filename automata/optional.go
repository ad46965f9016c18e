package automata

// Optional builds the zero-or-one repetition of a: every end state
// becomes reachable directly from the start state by an epsilon edge, so
// the empty input is accepted in addition to whatever a itself accepts.
// Unlike Repeat this needs no new states: a already has everything it
// needs, it is only missing the "skip entirely" edge.
func Optional(a NFA) (NFA, error) {
	if a.IsEmpty() {
		return Empty(), nil
	}

	start := a.Start()
	startAssoc := a.Assoc(start)
	for _, e := range a.Ends() {
		a.PushEpsilon(start, e)
		ea := a.Assoc(e).Clone()
		startAssoc.UnionWith(&ea)
	}

	return a, nil
}
