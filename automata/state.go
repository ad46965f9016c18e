package automata

// StateID uniquely identifies an NFA state. It is a dense 32-bit index
// into the owning NFA's state array; adding an offset to every id of a
// sub-NFA is the primitive used to splice it into a larger one.
type StateID uint32

// InvalidState is returned where no valid state exists (e.g. a
// no-transition lookup).
const InvalidState StateID = ^StateID(0)

func (id StateID) add(offset int) StateID {
	return StateID(int(id) + offset)
}

// nfaState is a single automaton state: an ordered neighbour table
// indexed (1-based) via its byte class, an ordered de-duplicated epsilon
// list, and the set of commands whose grammar can reach this state.
type nfaState struct {
	table   []StateID
	class   ByteClassID
	epsilon []StateID
	assoc   AssocSet
}

// hasEpsilonTo reports whether an epsilon edge to target already exists,
// preserving invariant 4 (no duplicate epsilons) when callers add one.
func (s *nfaState) hasEpsilonTo(target StateID) bool {
	for _, e := range s.epsilon {
		if e == target {
			return true
		}
	}
	return false
}
