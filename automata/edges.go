package automata

// PushEdge adds a transition from -> to on the single byte b. If from
// already has an outgoing edge on b to a *different* state, a fresh
// "stopgap" state is inserted, reached from `from` by an epsilon edge,
// and the edge is added there instead — this preserves NFA semantics
// (both destinations remain reachable on b) without ever needing a
// neighbour slot that maps to more than one target.
func (n *NFA) PushEdge(from, to StateID, b byte) error {
	return n.pushEdgesRange(from, to, b, b)
}

// PushEdges adds transitions from -> to for every byte in [lo, hi],
// routing any byte already assigned to a different neighbour through a
// single shared stopgap state.
func (n *NFA) PushEdges(from, to StateID, lo, hi byte) error {
	return n.pushEdgesRange(from, to, lo, hi)
}

func (n *NFA) pushEdgesRange(from, to StateID, lo, hi byte) error {
	n.ensureClasses()
	state := &n.states[from]
	existing := n.classes.get(state.class)
	newClass := existing

	var conflicted []byte
	for b := int(lo); b <= int(hi); b++ {
		byt := byte(b)
		if existing[byt] != 0 {
			// Byte already routed somewhere. If it already goes to `to`,
			// nothing to do; otherwise it must be rerouted via a stopgap.
			slot := existing[byt]
			if state.table[slot-1] == to {
				continue
			}
			conflicted = append(conflicted, byt)
			continue
		}

		slot := neighbourSlot(state, to)
		if slot > 255 {
			return buildErr("pushEdges", ErrTooManyStates)
		}
		newClass[byt] = uint8(slot)
	}

	state.class = n.classes.intern(newClass)

	if len(conflicted) > 0 {
		stopgap, err := n.PushState()
		if err != nil {
			return err
		}
		n.PushEpsilon(from, stopgap)
		for _, b := range conflicted {
			if err := n.pushEdgesRange(stopgap, to, b, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// neighbourSlot returns the 1-based slot for `to` in state's neighbour
// table, appending a new entry if `to` is not already a neighbour.
func neighbourSlot(state *nfaState, to StateID) int {
	for i, existing := range state.table {
		if existing == to {
			return i + 1
		}
	}
	state.table = append(state.table, to)
	return len(state.table)
}

// extend splices other's states into n, shifting every state id in other
// by offset. It returns other's (shifted) start state and its (shifted)
// end state set. Byte classes are re-interned since they are value-equal
// across NFAs but may not share ids.
//
// offset need not equal len(n.states): when it is smaller, the states at
// [offset, len(n.states)) are overwritten rather than appended after.
// FollowedBy uses this to merge a single, edge-free accepting state of
// the left operand directly into the right operand's start state,
// avoiding an epsilon indirection at the splice point (see concat.go).
func (n *NFA) extend(other NFA, offset int) (StateID, []StateID, error) {
	n.ensureClasses()

	remap := make(map[ByteClassID]ByteClassID, other.classes.len())
	for id, class := range other.classes.classes {
		remap[ByteClassID(id)] = n.classes.intern(class)
	}

	start := StateID(offset)
	for i, s := range other.states {
		shiftedTable := make([]StateID, len(s.table))
		for j, t := range s.table {
			shiftedTable[j] = t.add(offset)
		}
		shiftedEps := make([]StateID, len(s.epsilon))
		for j, e := range s.epsilon {
			shiftedEps[j] = e.add(offset)
		}
		shifted := nfaState{
			table:   shiftedTable,
			class:   remap[s.class],
			epsilon: shiftedEps,
			assoc:   s.assoc.Clone(),
		}
		target := offset + i
		if target < len(n.states) {
			n.states[target] = shifted
		} else {
			n.states = append(n.states, shifted)
		}
	}

	ends := make([]StateID, 0, len(other.ends))
	for id := range other.ends {
		ends = append(ends, id.add(offset))
	}
	return start, ends, nil
}
